package api

import "context"

func (c *Client) GetVenues(ctx context.Context) ([]Venue, error) {
	return call[[]Venue](ctx, c, epGetVenues, Request{})
}

func (c *Client) CreateVenue(ctx context.Context, in VenueInput) (*Venue, error) {
	return callPtr[Venue](ctx, c, epCreateVenue, Request{Body: in})
}

func (c *Client) GetTeamMembers(ctx context.Context, venueID int64) ([]TeamMember, error) {
	return call[[]TeamMember](ctx, c, epGetTeamMembers, Request{Params: venueParams(venueID)})
}

func (c *Client) AddTeamMember(ctx context.Context, venueID int64, in TeamMemberInput) (*TeamMember, error) {
	return callPtr[TeamMember](ctx, c, epAddTeamMember, Request{Params: venueParams(venueID), Body: in})
}

func (c *Client) RemoveTeamMember(ctx context.Context, venueID, userID int64) error {
	params := venueParams(venueID)
	params["user_id"] = formatID(userID)
	return exec(ctx, c, epRemoveTeamMember, Request{Params: params})
}

func venueParams(venueID int64) map[string]string {
	return map[string]string{"venue_id": formatID(venueID)}
}
