package styles

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// AnnotationColor maps an annotation color name to a palette color. The
// "default" color and unknown names are drawn gray.
func AnnotationColor(name string) color.Color {
	switch name {
	case "red":
		return ColorError
	case "green":
		return ColorSuccess
	case "orange":
		return ColorAccent
	case "yellow":
		return ColorWarning
	case "blue":
		return ColorPrimary
	default:
		return ColorMuted
	}
}

// ScoreColor returns a color for a 0-100 score, blending from the error
// color through warning to success in CIE-L*C*h space.
func ScoreColor(score int) color.Color {
	t := math.Min(math.Max(float64(score)/100, 0), 1)

	bad, ok1 := colorful.MakeColor(ColorError)
	mid, ok2 := colorful.MakeColor(ColorWarning)
	good, ok3 := colorful.MakeColor(ColorSuccess)
	if !ok1 || !ok2 || !ok3 {
		return ColorPrimary
	}

	var c colorful.Color
	if t < 0.5 {
		c = bad.BlendHcl(mid, t*2)
	} else {
		c = mid.BlendHcl(good, (t-0.5)*2)
	}
	return c.Clamped()
}

// Hex returns the #rrggbb form of c, or an empty string when c cannot be
// converted.
func Hex(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cc.Hex()
}
