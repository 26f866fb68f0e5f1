package api

import "context"

// Ratings.

func (c *Client) SubmitRating(ctx context.Context, in RatingInput) (*Rating, error) {
	return callPtr[Rating](ctx, c, epSubmitRating, Request{Body: in})
}

func (c *Client) GetUserRatings(ctx context.Context, userID int64) ([]Rating, error) {
	return call[[]Rating](ctx, c, epGetUserRatings, Request{Params: map[string]string{"user_id": formatID(userID)}})
}

// Referrals.

func (c *Client) GetReferrals(ctx context.Context) ([]Referral, error) {
	return call[[]Referral](ctx, c, epGetReferrals, Request{})
}

func (c *Client) GetReferralCode(ctx context.Context) (*ReferralCode, error) {
	return callPtr[ReferralCode](ctx, c, epGetReferralCode, Request{})
}

type redeemBody struct {
	Code string `json:"code" validate:"required"`
}

func (c *Client) RedeemReferralCode(ctx context.Context, code string) (*Referral, error) {
	return callPtr[Referral](ctx, c, epRedeemReferralCode, Request{Body: redeemBody{Code: code}})
}

// Disputes.

func (c *Client) GetDisputes(ctx context.Context) ([]Dispute, error) {
	return call[[]Dispute](ctx, c, epGetDisputes, Request{})
}

func (c *Client) CreateDispute(ctx context.Context, in DisputeInput) (*Dispute, error) {
	return callPtr[Dispute](ctx, c, epCreateDispute, Request{Body: in})
}

// UploadDisputeEvidence attaches a file to a dispute. description may be empty.
func (c *Client) UploadDisputeEvidence(ctx context.Context, disputeID int64, f *File, description string) (*UploadResult, error) {
	var fields map[string]string
	if description != "" {
		fields = map[string]string{"description": description}
	}
	return callPtr[UploadResult](ctx, c, epUploadDisputeEvidence, Request{
		Params: map[string]string{"dispute_id": formatID(disputeID)},
		File:   f,
		Fields: fields,
	})
}
