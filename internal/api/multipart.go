package api

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is a document or image to upload.
type File struct {
	Name string
	Data []byte
	// ContentType is sniffed from Data when empty.
	ContentType string
}

// LoadFile reads the file at path for upload.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        filepath.Base(path),
		Data:        data,
		ContentType: mimetype.Detect(data).String(),
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart builds a form with the plain-text fields followed by one file part.
func encodeMultipart(fileField string, f *File, fields map[string]string) (*bytes.Buffer, string, error) {
	if f == nil {
		return nil, "", errors.New("no file provided")
	}
	if f.Name == "" {
		return nil, "", errors.New("file name is required")
	}
	if len(f.Data) == 0 {
		return nil, "", fmt.Errorf("file %s is empty", f.Name)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// Deterministic field order keeps requests reproducible.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err
		}
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(f.Data).String()
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fileField), quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(f.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
