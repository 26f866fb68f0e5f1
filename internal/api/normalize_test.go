package api

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// jsonString returns a JSON string literal of exactly size bytes.
func jsonString(size int) []byte {
	return append(append([]byte{'"'}, bytes.Repeat([]byte{'a'}, size-2)...), '"')
}

func TestNormalize_BodySizeLimit(t *testing.T) {
	c := &Client{baseURL: "https://api.example.com"}

	t.Run("at the limit", func(t *testing.T) {
		raw, err := c.normalize(epGetReferralCode, jsonResponse(http.StatusOK, jsonString(maxBodySize)))
		require.NoError(t, err)
		assert.Len(t, raw, maxBodySize)
	})

	t.Run("over the limit", func(t *testing.T) {
		_, err := c.normalize(epGetReferralCode, jsonResponse(http.StatusOK, jsonString(maxBodySize+1)))
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindMalformedResponse, apiErr.Kind)
		assert.Equal(t, MessageResponseTooLarge, apiErr.Message)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	})
}
