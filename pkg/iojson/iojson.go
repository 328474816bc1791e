// iojson are utilities for writing JSON IO from a command line interface
// perspective.
package iojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func jsonError(msg string, jsonErr error) string {
	// Use json.Marshal to properly escape strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// encode marshals obj as indented JSON without HTML escaping, so labels
// like "Tub/Shower & <rails>" print as written.
func encode(obj any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// as a JSON error on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := encode(obj)
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling json output", err))
		return err
	}

	_, err = w.Write(bits)
	return err
}
