package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith_NoHTMLEscaping(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]string{"label": "Tub/Shower & <rails>"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"label\": \"Tub/Shower & <rails>\"\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"fn": func() {}})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}
