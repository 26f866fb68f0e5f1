package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// normalize turns a response into the raw success body or an *Error.
func (c *Client) normalize(ep Endpoint, resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: ep.Name, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}
	if len(data) > maxBodySize {
		return nil, &Error{Kind: KindMalformedResponse, Op: ep.Name, StatusCode: resp.StatusCode, Message: MessageResponseTooLarge}
	}

	// A misrouted or down backend typically answers with a proxy or error page.
	if looksLikeHTML(resp.Header.Get("Content-Type"), data) {
		return nil, &Error{
			Kind:       KindBackendUnavailable,
			Op:         ep.Name,
			StatusCode: resp.StatusCode,
			Message:    backendUnavailableMessage(c.baseURL),
		}
	}

	if !ep.Succeeded(resp.StatusCode) {
		return nil, failure(ep, resp.StatusCode, data)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, &Error{Kind: KindMalformedResponse, Op: ep.Name, StatusCode: resp.StatusCode, Message: MessageMalformedResponse}
	}
	return json.RawMessage(trimmed), nil
}

func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(body), []byte("<"))
}

func failure(ep Endpoint, status int, body []byte) *Error {
	if status == http.StatusUnauthorized && ep.Auth {
		return &Error{Kind: KindUnauthorized, Op: ep.Name, StatusCode: status, Message: MessageUnauthorized}
	}

	msg := extractMessage(body)
	if msg == "" {
		msg = ep.fallback(status)
	}
	return &Error{Kind: KindApplication, Op: ep.Name, StatusCode: status, Message: msg}
}

// messageFields lists the error body fields checked, in order of preference.
var messageFields = []string{"error", "message", "msg"}

// extractMessage returns the first non-empty message field of a JSON error body.
// A field may also hold an object with its own "message", e.g. {"error":{"message":"..."}}.
func extractMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	for _, key := range messageFields {
		raw, ok := fields[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}

		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil {
			if s = strings.TrimSpace(nested.Message); s != "" {
				return s
			}
		}
	}
	return ""
}
