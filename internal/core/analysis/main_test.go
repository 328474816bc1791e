package analysis

import (
	"testing"

	"go.uber.org/goleak"
)

// Analyzer timers and cancelled analyses must not outlive their tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
