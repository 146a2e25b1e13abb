package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/five82/zcalc/internal/sampler"
)

func sampleDoc(t *testing.T) Document {
	t.Helper()
	res := sampler.Sample("1/z", sampler.Grid{Min: -1, Max: 1, Step: 1}, sampler.MaxHeight)
	require.NoError(t, res.Err)
	return NewDocument(res, 2, sampler.MaxHeight)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"csv": FormatCSV, "JSON": FormatJSON, " yml ": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestCSV(t *testing.T) {
	doc := sampleDoc(t)
	var b bytes.Buffer
	require.NoError(t, Write(&b, doc, FormatCSV, false))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 9, "header plus 8 points; the pole is dropped")
	assert.Equal(t, "x,y,height", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "-1,-1,0.70710678"), lines[1])
}

func TestJSON(t *testing.T) {
	doc := sampleDoc(t)
	var b bytes.Buffer
	require.NoError(t, Write(&b, doc, FormatJSON, false))

	var got Document
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "1/z", got.Equation)
	assert.Equal(t, 1, got.Dropped)
	assert.Equal(t, doc.Points, got.Points)
	assert.Contains(t, b.String(), `"max_height": 5`)
}

func TestYAML(t *testing.T) {
	doc := sampleDoc(t)
	var b bytes.Buffer
	require.NoError(t, Write(&b, doc, FormatYAML, false))

	var got Document
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, doc.Grid, got.Grid)
	assert.Len(t, got.Points, 8)
	assert.Contains(t, b.String(), "equation: 1/z")
}

func TestEmptyResultEncodesEmptyList(t *testing.T) {
	doc := NewDocument(sampler.Result{Equation: "z +"}, 2, 5)
	data, err := jsonFormatter{}.Format(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"points": []`)
}

func TestWriteCompressed(t *testing.T) {
	doc := sampleDoc(t)
	var plain, packed bytes.Buffer
	require.NoError(t, Write(&plain, doc, FormatJSON, false))
	require.NoError(t, Write(&packed, doc, FormatJSON, true))

	out, err := Decompress(packed.Bytes())
	require.NoError(t, err)
	assert.Equal(t, plain.Bytes(), out)

	_, err = Decompress([]byte("not zstd"))
	assert.Error(t, err)

	out, err = Decompress(nil)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	doc := sampleDoc(t)
	assert.Error(t, Write(&bytes.Buffer{}, doc, Format("xml"), false))
	err := Write(failingWriter{}, doc, FormatCSV, false)
	assert.ErrorContains(t, err, "disk full")
}
