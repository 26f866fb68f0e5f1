package api

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestEncodeMultipart(t *testing.T) {
	f := &File{Name: `my "best" photo.png`, Data: pngHeader}

	buf, contentType, err := encodeMultipart("photo", f, map[string]string{"z": "last", "a": "first"})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(buf, params["boundary"])

	part, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "a", part.FormName(), "fields are sorted")
	value, _ := io.ReadAll(part)
	assert.Equal(t, "first", string(value))

	part, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "z", part.FormName())

	part, err = r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "photo", part.FormName())
	assert.Equal(t, `my "best" photo.png`, part.FileName())
	assert.Equal(t, "image/png", part.Header.Get("Content-Type"), "sniffed from content")
	data, _ := io.ReadAll(part)
	assert.Equal(t, pngHeader, data)

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncodeMultipart_KeepsExplicitContentType(t *testing.T) {
	f := &File{Name: "notes.txt", Data: []byte("hello"), ContentType: "text/markdown"}

	buf, contentType, err := encodeMultipart("evidence", f, nil)
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	part, err := multipart.NewReader(buf, params["boundary"]).NextPart()
	require.NoError(t, err)
	assert.Equal(t, "text/markdown", part.Header.Get("Content-Type"))
}

func TestEncodeMultipart_RejectsMissingFile(t *testing.T) {
	_, _, err := encodeMultipart("cv", nil, nil)
	assert.Error(t, err)

	_, _, err = encodeMultipart("cv", &File{Name: "cv.pdf"}, nil)
	assert.ErrorContains(t, err, "empty")

	_, _, err = encodeMultipart("cv", &File{Data: []byte("x")}, nil)
	assert.ErrorContains(t, err, "name")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n"), 0600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", f.Name)
	assert.Equal(t, "application/pdf", f.ContentType)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
