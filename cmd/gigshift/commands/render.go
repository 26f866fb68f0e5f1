package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gigshift/gigshift/internal/api"
	"github.com/gigshift/gigshift/internal/app"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f87171"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
)

// printer writes command results as styled text or JSON.
type printer struct {
	w      io.Writer
	format app.OutputFormat
}

func (p *printer) jsonOutput() bool {
	return p.format == app.OutputJSON
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// result prints v as JSON, or calls text to render it.
func (p *printer) result(v any, text func()) error {
	if p.jsonOutput() {
		return p.json(v)
	}
	text()
	return nil
}

func (p *printer) title(s string) {
	fmt.Fprintln(p.w, titleStyle.Render(s))
}

func (p *printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, okStyle.Render(fmt.Sprintf(format, args...)))
}

// fields prints label/value pairs, skipping empty values.
func (p *printer) fields(pairs ...string) {
	width := 0
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			width = max(width, len(pairs[i]))
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		label := fmt.Sprintf("%-*s", width, pairs[i])
		fmt.Fprintf(p.w, "%s  %s\n", labelStyle.Render(label), pairs[i+1])
	}
}

func (p *printer) table(empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(p.w, labelStyle.Render(empty))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(p.w, t.String())
}

// PrintError writes err to w. API failures show only their user-facing message.
func PrintError(w io.Writer, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintln(w, bannerStyle.Render(apiErr.Message))
		if apiErr.Kind == api.KindUnauthorized {
			fmt.Fprintln(w, labelStyle.Render("Run `gigshift login` to sign in."))
		}
		return
	}
	fmt.Fprintln(w, bannerStyle.Render("gigshift: "+err.Error()))
}

func id(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func money(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f/h", v)
}

func when(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Mon 02 Jan 15:04")
}

func span(start, end time.Time) string {
	switch {
	case start.IsZero():
		return ""
	case end.IsZero():
		return when(start)
	case start.YearDay() == end.YearDay() && start.Year() == end.Year():
		return when(start) + "-" + end.Local().Format("15:04")
	default:
		return when(start) + " → " + when(end)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}

func shiftRows(shifts []api.Shift) [][]string {
	rows := make([][]string, 0, len(shifts))
	for _, s := range shifts {
		venue := s.VenueName
		if venue == "" {
			venue = id(s.VenueID)
		}
		rows = append(rows, []string{id(s.ID), s.Role, venue, span(s.StartTime, s.EndTime), money(s.HourlyRate), s.Status})
	}
	return rows
}

var shiftHeaders = []string{"ID", "Role", "Venue", "When", "Rate", "Status"}

func applicationRows(apps []api.Application) [][]string {
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		var role, period string
		if a.Shift != nil {
			role = a.Shift.Role
			period = span(a.Shift.StartTime, a.Shift.EndTime)
		}
		worker := ""
		if a.Worker != nil {
			worker = a.Worker.Name
		}
		rows = append(rows, []string{id(a.ID), id(a.ShiftID), role, period, worker, a.Status})
	}
	return rows
}

var applicationHeaders = []string{"ID", "Shift", "Role", "When", "Worker", "Status"}

func notificationRows(notes []api.Notification) [][]string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		mark := ""
		if !n.Read {
			mark = "•"
		}
		rows = append(rows, []string{id(n.ID), mark, n.Title, truncate(n.Body, 60), when(n.CreatedAt)})
	}
	return rows
}

var notificationHeaders = []string{"ID", "", "Title", "Message", "Received"}
