package api

import (
	"context"

	"github.com/oapi-codegen/runtime/types"
)

// SearchShiftsParams filters a shift search. Zero values are left out of the query.
type SearchShiftsParams struct {
	Role      string
	MinRate   *float64
	MaxRate   *float64
	StartDate *types.Date
	EndDate   *types.Date
	Location  string
	VenueID   int64
}

func (p SearchShiftsParams) params() map[string]string {
	m := make(map[string]string)
	if p.Role != "" {
		m["role"] = p.Role
	}
	if p.MinRate != nil {
		m["min_rate"] = formatFloat(*p.MinRate)
	}
	if p.MaxRate != nil {
		m["max_rate"] = formatFloat(*p.MaxRate)
	}
	if p.StartDate != nil {
		m["start_date"] = p.StartDate.Format(types.DateFormat)
	}
	if p.EndDate != nil {
		m["end_date"] = p.EndDate.Format(types.DateFormat)
	}
	if p.Location != "" {
		m["location"] = p.Location
	}
	if p.VenueID != 0 {
		m["venue_id"] = formatID(p.VenueID)
	}
	return m
}

func (c *Client) SearchShifts(ctx context.Context, p SearchShiftsParams) ([]Shift, error) {
	return call[[]Shift](ctx, c, epSearchShifts, Request{Params: p.params()})
}

func (c *Client) GetShift(ctx context.Context, shiftID int64) (*Shift, error) {
	return callPtr[Shift](ctx, c, epGetShift, Request{Params: shiftParams(shiftID)})
}

func (c *Client) CreateShift(ctx context.Context, in ShiftInput) (*Shift, error) {
	return callPtr[Shift](ctx, c, epCreateShift, Request{Body: in})
}

func (c *Client) UpdateShift(ctx context.Context, shiftID int64, update ShiftUpdate) (*Shift, error) {
	return callPtr[Shift](ctx, c, epUpdateShift, Request{Params: shiftParams(shiftID), Body: update})
}

type cancelShiftBody struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelShift cancels a posted shift. reason may be nil.
func (c *Client) CancelShift(ctx context.Context, shiftID int64, reason *string) (*Shift, error) {
	return callPtr[Shift](ctx, c, epCancelShift, Request{Params: shiftParams(shiftID), Body: cancelShiftBody{Reason: reason}})
}

// GetMyShifts lists the current worker's shifts, optionally filtered by status.
func (c *Client) GetMyShifts(ctx context.Context, status string) ([]Shift, error) {
	return call[[]Shift](ctx, c, epGetMyShifts, Request{Params: statusParams(nil, status)})
}

func (c *Client) GetVenueShifts(ctx context.Context, venueID int64, status string) ([]Shift, error) {
	params := statusParams(map[string]string{"venue_id": formatID(venueID)}, status)
	return call[[]Shift](ctx, c, epGetVenueShifts, Request{Params: params})
}

type applyBody struct {
	Note *string `json:"note,omitempty"`
}

// ApplyToShift applies the current worker to a shift. note may be nil.
func (c *Client) ApplyToShift(ctx context.Context, shiftID int64, note *string) (*Application, error) {
	return callPtr[Application](ctx, c, epApplyToShift, Request{Params: shiftParams(shiftID), Body: applyBody{Note: note}})
}

type attendanceBody struct {
	Location *Location `json:"location,omitempty"`
}

// CheckIn records arrival at a shift. loc may be nil.
func (c *Client) CheckIn(ctx context.Context, shiftID int64, loc *Location) (*Attendance, error) {
	return callPtr[Attendance](ctx, c, epCheckinShift, Request{Params: shiftParams(shiftID), Body: attendanceBody{Location: loc}})
}

// CheckOut records departure from a shift. loc may be nil.
func (c *Client) CheckOut(ctx context.Context, shiftID int64, loc *Location) (*Attendance, error) {
	return callPtr[Attendance](ctx, c, epCheckoutShift, Request{Params: shiftParams(shiftID), Body: attendanceBody{Location: loc}})
}

func shiftParams(shiftID int64) map[string]string {
	return map[string]string{"shift_id": formatID(shiftID)}
}

func statusParams(m map[string]string, status string) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	if status != "" {
		m["status"] = status
	}
	return m
}
