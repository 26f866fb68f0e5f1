package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigshift/gigshift/internal/apitest"
)

type harness struct {
	srv       *apitest.Server
	tokenPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	// Keep the developer's own config and .env out of the way.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return &harness{
		srv:       apitest.New(t),
		tokenPath: filepath.Join(t.TempDir(), "token"),
	}
}

func (h *harness) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(h.tokenPath, []byte("tok123"), 0600))
}

// run executes gigshift with the harness backend and file token storage.
func (h *harness) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)

	argv := append([]string{
		"gigshift",
		"--api--base-url", h.srv.URL,
		"--auth--storage", "file",
		"--auth--file", h.tokenPath,
	}, args...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := root.Run(ctx, argv)
	return stdout.String(), stderr.String(), err
}

func TestLoginAndWhoami(t *testing.T) {
	h := newHarness(t)
	h.srv.Handle("POST /api/auth/login", apitest.JSON(http.StatusOK, map[string]any{
		"access_token": "tok123",
		"user":         map[string]any{"id": 1, "name": "Robin"},
	}))
	h.srv.Handle("GET /api/users/me", apitest.JSON(http.StatusOK, map[string]any{
		"user": map[string]any{"id": 1, "name": "Robin", "email": "robin@example.com", "role": "worker"},
	}))

	stdout, _, err := h.run(t, "s3cret\n", "login", "--email", "robin@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Robin.")

	login := h.srv.Last(t).JSONBody(t)
	assert.Equal(t, "s3cret", login["password"], "password read from stdin")

	token, err := os.ReadFile(h.tokenPath)
	require.NoError(t, err)
	assert.Equal(t, "tok123", strings.TrimSpace(string(token)))

	stdout, _, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Robin")
	assert.Contains(t, stdout, "robin@example.com")
	assert.Equal(t, "Bearer tok123", h.srv.Last(t).Header.Get("Authorization"))

	_, _, err = h.run(t, "", "logout")
	require.NoError(t, err)
	_, err = os.Stat(h.tokenPath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = h.run(t, "", "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestAPIErrorsPrintTheirMessage(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("GET /api/shifts/7", apitest.Error(http.StatusUnauthorized, "token revoked"))

	_, _, err := h.run(t, "", "shifts", "show", "7")
	require.Error(t, err)

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Contains(t, buf.String(), "Authentication failed. Please login again.")
	assert.Contains(t, buf.String(), "gigshift login")
	assert.NotContains(t, buf.String(), "token revoked")
}

func TestShiftsSearch(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("GET /api/shifts/search", apitest.JSON(http.StatusOK, map[string]any{
		"shifts": []map[string]any{{"id": 1, "role": "bartender", "venue_name": "The Anchor", "hourly_rate": 15.5}},
	}))

	stdout, _, err := h.run(t, "", "shifts", "search", "--role", "bartender", "--min-rate", "15", "--start-date", "2026-11-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "The Anchor")
	assert.Contains(t, stdout, "15.50/h")
	assert.Equal(t, "role=bartender&min_rate=15.0&start_date=2026-11-01", h.srv.Last(t).RawQuery)

	_, _, err = h.run(t, "", "shifts", "search", "--start-date", "next week")
	assert.ErrorContains(t, err, "want YYYY-MM-DD")
}

func TestJSONOutput(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("GET /api/applications", apitest.JSON(http.StatusOK, map[string]any{
		"applications": []map[string]any{{"id": 20, "shift_id": 5, "status": "pending"}},
	}))

	stdout, _, err := h.run(t, "", "--output", "json", "applications", "list", "--status", "pending")
	require.NoError(t, err)

	var apps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "pending", apps[0]["status"])
	assert.Equal(t, "status=pending", h.srv.Last(t).RawQuery)
}

func TestCallPrintsRawBody(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	body := `{"shift":{"id":3,"role":"chef","custom":{"a":1}}}`
	h.srv.Handle("GET /api/shifts/3", apitest.Raw(http.StatusOK, "application/json", body))
	h.srv.Handle("POST /api/ratings", apitest.JSON(http.StatusCreated, map[string]any{"id": 1}))

	stdout, _, err := h.run(t, "", "call", "getShift", "-p", "shift_id=3")
	require.NoError(t, err)
	assert.Equal(t, body+"\n", stdout)

	_, _, err = h.run(t, "", "call", "submitRating", "--data", `{"shift_id":3,"ratee_id":2,"score":5}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"shift_id": float64(3), "ratee_id": float64(2), "score": float64(5)}, h.srv.Last(t).JSONBody(t))

	_, _, err = h.run(t, "", "call", "nope")
	assert.ErrorContains(t, err, `unknown endpoint "nope"`)

	_, _, err = h.run(t, "", "call", "getShift", "--data", "{broken")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestNotificationsRead(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("POST /api/notifications/read-all", apitest.JSON(http.StatusNoContent, nil))
	h.srv.Handle("POST /api/notifications/9/read", apitest.JSON(http.StatusNoContent, nil))

	stdout, _, err := h.run(t, "", "notifications", "read", "--all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "All notifications marked as read.")

	stdout, _, err = h.run(t, "", "notifications", "read", "9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Notification 9 marked as read.")

	_, _, err = h.run(t, "", "notifications", "read")
	assert.ErrorContains(t, err, "missing notification ID")
}

func TestDashboardCommand(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("GET /api/users/me", apitest.JSON(http.StatusOK, map[string]any{"user": map[string]any{"id": 1, "name": "Kit"}}))
	h.srv.Handle("GET /api/shifts/mine", apitest.JSON(http.StatusOK, map[string]any{"shifts": []map[string]any{{"id": 10, "role": "barista"}, {"id": 11, "role": "host"}}}))
	h.srv.Handle("GET /api/applications", apitest.JSON(http.StatusOK, map[string]any{"applications": []any{}}))
	h.srv.Handle("GET /api/notifications", apitest.JSON(http.StatusOK, map[string]any{"notifications": []map[string]any{
		{"id": 1, "title": "Shift confirmed", "read": false},
		{"id": 2, "title": "Old news", "read": true},
	}}))

	stdout, _, err := h.run(t, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Hi, Kit")
	assert.Contains(t, stdout, "Upcoming shifts (2)")
	assert.Contains(t, stdout, "barista")
	assert.Contains(t, stdout, "No pending applications.")
	assert.Contains(t, stdout, "Unread notifications (1)")
	assert.NotContains(t, stdout, "Old news")
}

func TestUploadCommand(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("POST /api/users/me/cv", func(w http.ResponseWriter, r *http.Request) {
		if _, header, err := r.FormFile("cv"); err != nil || header.Filename != "cv.pdf" {
			apitest.Error(http.StatusBadRequest, "cv missing")(w, r)
			return
		}
		apitest.JSON(http.StatusOK, map[string]any{"url": "https://cdn.example.com/cv.pdf"})(w, r)
	})

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0600))

	stdout, _, err := h.run(t, "", "upload", "cv", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Uploaded cv.pdf.")
	assert.Contains(t, stdout, "https://cdn.example.com/cv.pdf")

	_, _, err = h.run(t, "", "upload", "cv", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestEndpointsCommand(t *testing.T) {
	h := newHarness(t)

	stdout, _, err := h.run(t, "", "endpoints", "--json")
	require.NoError(t, err)

	var eps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &eps))
	assert.Len(t, eps, 44)
	assert.Empty(t, h.srv.Requests(), "listing endpoints makes no calls")
}

func TestPrintMetrics(t *testing.T) {
	h := newHarness(t)
	h.signIn(t)
	h.srv.Handle("GET /api/venues", apitest.JSON(http.StatusOK, map[string]any{"venues": []any{}}))

	_, stderr, err := h.run(t, "", "--print-metrics", "venues", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, `gigshift_api_requests_total{endpoint="getVenues",outcome="success"} 1`)
}

func TestParseSlot(t *testing.T) {
	slot, err := parseSlot("2026-11-06")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-06", slot.Date.Format("2006-01-02"))
	assert.True(t, slot.Available)
	assert.Empty(t, slot.Start)

	slot, err = parseSlot("2026-11-06@18:00-23:30")
	require.NoError(t, err)
	assert.Equal(t, "18:00", slot.Start)
	assert.Equal(t, "23:30", slot.End)

	_, err = parseSlot("06/11/2026")
	assert.Error(t, err)
	_, err = parseSlot("2026-11-06@evening")
	assert.Error(t, err)
}

func TestKeyValues(t *testing.T) {
	m, err := keyValues([]string{"shift_id=3", "status=open", "q=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"shift_id": "3", "status": "open", "q": "a=b"}, m)

	_, err = keyValues([]string{"novalue"})
	assert.Error(t, err)
	_, err = keyValues([]string{"=x"})
	assert.Error(t, err)
}
