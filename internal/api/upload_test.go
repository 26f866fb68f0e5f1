package api_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigshift/gigshift/internal/api"
	"github.com/gigshift/gigshift/internal/apitest"
)

func TestUploadVerificationDocument(t *testing.T) {
	client, srv, store := newClient(t)
	signIn(t, store)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	srv.Handle("POST /api/users/me/verification", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			apitest.Error(http.StatusBadRequest, err.Error())(w, r)
			return
		}
		if r.FormValue("document_type") != "passport" {
			apitest.Error(http.StatusBadRequest, "document_type missing")(w, r)
			return
		}
		file, header, err := r.FormFile("document")
		if err != nil {
			apitest.Error(http.StatusBadRequest, "document missing")(w, r)
			return
		}
		defer file.Close()
		if data, _ := io.ReadAll(file); len(data) != len(png) {
			apitest.Error(http.StatusBadRequest, "document truncated")(w, r)
			return
		}

		apitest.JSON(http.StatusOK, map[string]any{
			"url":      "https://cdn.example.com/" + header.Filename,
			"filename": header.Filename,
			"status":   header.Header.Get("Content-Type"),
		})(w, r)
	})

	res, err := client.UploadVerificationDocument(context.Background(), &api.File{Name: "passport.png", Data: png}, "passport")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/passport.png", res.URL)
	assert.Equal(t, "passport.png", res.Filename)
	assert.Equal(t, "image/png", res.Status)

	req := srv.Last(t)
	assert.Equal(t, "Bearer tok123", req.Header.Get("Authorization"))
	assert.Contains(t, req.Header.Get("Content-Type"), "multipart/form-data; boundary=")
}

func TestUploadVerificationDocument_RequiresType(t *testing.T) {
	client, srv, _ := newClient(t)

	_, err := client.UploadVerificationDocument(context.Background(), &api.File{Name: "id.png", Data: []byte("x")}, "")
	requireKind(t, err, api.KindInvalidRequest)
	assert.Empty(t, srv.Requests())
}

func TestUploadCV_NoFileIsInvalidRequest(t *testing.T) {
	client, srv, store := newClient(t)
	signIn(t, store)

	_, err := client.UploadCV(context.Background(), nil)
	apiErr := requireKind(t, err, api.KindInvalidRequest)
	assert.Contains(t, apiErr.Message, "no file provided")
	assert.Empty(t, srv.Requests())
}
