package api

import "context"

// GetMyApplications lists the current worker's applications, optionally filtered by status.
func (c *Client) GetMyApplications(ctx context.Context, status string) ([]Application, error) {
	return call[[]Application](ctx, c, epGetMyApplications, Request{Params: statusParams(nil, status)})
}

// GetShiftApplications lists applicants for a venue's shift.
func (c *Client) GetShiftApplications(ctx context.Context, shiftID int64) ([]Application, error) {
	return call[[]Application](ctx, c, epGetShiftApplications, Request{Params: shiftParams(shiftID)})
}

func (c *Client) AcceptApplication(ctx context.Context, applicationID int64) (*Application, error) {
	return callPtr[Application](ctx, c, epAcceptApplication, Request{Params: applicationParams(applicationID)})
}

type rejectBody struct {
	Reason *string `json:"reason,omitempty"`
}

// RejectApplication declines an applicant. reason may be nil.
func (c *Client) RejectApplication(ctx context.Context, applicationID int64, reason *string) (*Application, error) {
	return callPtr[Application](ctx, c, epRejectApplication, Request{
		Params: applicationParams(applicationID),
		Body:   rejectBody{Reason: reason},
	})
}

func (c *Client) WithdrawApplication(ctx context.Context, applicationID int64) (*Application, error) {
	return callPtr[Application](ctx, c, epWithdrawApplication, Request{Params: applicationParams(applicationID)})
}

func applicationParams(id int64) map[string]string {
	return map[string]string{"application_id": formatID(id)}
}
