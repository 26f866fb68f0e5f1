package api

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jtacoma/uritemplates"
)

// Endpoint describes one backend operation.
type Endpoint struct {
	Name   string
	Method string
	// Path is an RFC 6570 URI template relative to the base URL. Query
	// variables use form-style expansion ({?a,b}) so unset ones are dropped.
	Path string
	// Auth attaches the session token when one is stored.
	Auth bool
	// Success lists the status codes that count as success.
	Success []int
	// PayloadKey names the response field holding the result; "" means the
	// whole body.
	PayloadKey string
	// FileField switches the request to multipart/form-data with the file
	// sent under this form field name.
	FileField string
	// Fallback is the failure message used when the body carries none.
	Fallback string
}

// Request carries the per-call inputs for an Endpoint.
type Request struct {
	// Params holds path and query template variables. Omit a key to leave
	// the variable unset.
	Params map[string]string
	// Body is serialized as JSON. Ignored for multipart endpoints.
	Body any
	// File and Fields make up a multipart request.
	File   *File
	Fields map[string]string
}

// pathVariable matches simple (non-operator) template expressions.
var pathVariable = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Succeeded reports whether code is in the endpoint's success set.
func (e Endpoint) Succeeded(code int) bool {
	return slices.Contains(e.Success, code)
}

// clone copies e so the success set is not shared with the catalog.
func (e Endpoint) clone() Endpoint {
	e.Success = slices.Clone(e.Success)
	return e
}

// Multipart reports whether the endpoint uploads a file.
func (e Endpoint) Multipart() bool {
	return e.FileField != ""
}

// PathParams lists the variables that must be supplied to build the path.
func (e Endpoint) PathParams() []string {
	var names []string
	for _, m := range pathVariable.FindAllStringSubmatch(e.Path, -1) {
		names = append(names, m[1])
	}
	return names
}

func (e Endpoint) fallback(status int) string {
	if e.Fallback != "" {
		return e.Fallback
	}
	return fmt.Sprintf("Request failed (%d %s)", status, http.StatusText(status))
}

// expand resolves the template against params and joins it to baseURL.
func (e Endpoint) expand(baseURL string, params map[string]string) (string, error) {
	for _, name := range e.PathParams() {
		if strings.TrimSpace(params[name]) == "" {
			return "", fmt.Errorf("missing path parameter %s", name)
		}
	}

	tmpl, err := uritemplates.Parse(e.Path)
	if err != nil {
		return "", fmt.Errorf("parsing path template %q: %w", e.Path, err)
	}

	vars := make(map[string]interface{}, len(params))
	for k, v := range params {
		vars[k] = v
	}

	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return "", fmt.Errorf("expanding path template %q: %w", e.Path, err)
	}

	return baseURL + expanded, nil
}

// Query parameter formatting helpers. They render values the way the backend
// parses them.

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// formatFloat always keeps a decimal point so 15 is sent as "15.0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}
