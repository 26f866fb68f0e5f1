package api

import "net/http"

var (
	successOK          = []int{http.StatusOK}
	successCreated     = []int{http.StatusCreated}
	successOKOrCreated = []int{http.StatusOK, http.StatusCreated}
	successNoContent   = []int{http.StatusOK, http.StatusNoContent}
)

// Auth and profile.
var (
	epRegister = Endpoint{
		Name: "register", Method: http.MethodPost, Path: "/api/auth/register",
		Success: successOKOrCreated, Fallback: "Registration failed",
	}
	epLogin = Endpoint{
		Name: "login", Method: http.MethodPost, Path: "/api/auth/login",
		Success: successOK, Fallback: "Login failed",
	}
	epGetProfile = Endpoint{
		Name: "getProfile", Method: http.MethodGet, Path: "/api/users/me",
		Auth: true, Success: successOK, PayloadKey: "user", Fallback: "Failed to load profile",
	}
	epUpdateProfile = Endpoint{
		Name: "updateProfile", Method: http.MethodPut, Path: "/api/users/me",
		Auth: true, Success: successOK, PayloadKey: "user", Fallback: "Failed to update profile",
	}
	epGetUser = Endpoint{
		Name: "getUser", Method: http.MethodGet, Path: "/api/users/{user_id}",
		Auth: true, Success: successOK, PayloadKey: "user", Fallback: "Failed to load user",
	}
)

// Shifts.
var (
	epSearchShifts = Endpoint{
		Name: "searchShifts", Method: http.MethodGet,
		Path: "/api/shifts/search{?role,min_rate,max_rate,start_date,end_date,location,venue_id}",
		Auth: true, Success: successOK, PayloadKey: "shifts", Fallback: "Failed to search shifts",
	}
	epGetShift = Endpoint{
		Name: "getShift", Method: http.MethodGet, Path: "/api/shifts/{shift_id}",
		Auth: true, Success: successOK, PayloadKey: "shift", Fallback: "Failed to load shift",
	}
	epCreateShift = Endpoint{
		Name: "createShift", Method: http.MethodPost, Path: "/api/shifts",
		Auth: true, Success: successCreated, Fallback: "Failed to create shift",
	}
	epUpdateShift = Endpoint{
		Name: "updateShift", Method: http.MethodPut, Path: "/api/shifts/{shift_id}",
		Auth: true, Success: successOK, Fallback: "Failed to update shift",
	}
	epCancelShift = Endpoint{
		Name: "cancelShift", Method: http.MethodPost, Path: "/api/shifts/{shift_id}/cancel",
		Auth: true, Success: successOK, Fallback: "Failed to cancel shift",
	}
	epGetMyShifts = Endpoint{
		Name: "getMyShifts", Method: http.MethodGet, Path: "/api/shifts/mine{?status}",
		Auth: true, Success: successOK, PayloadKey: "shifts", Fallback: "Failed to load your shifts",
	}
	epGetVenueShifts = Endpoint{
		Name: "getVenueShifts", Method: http.MethodGet, Path: "/api/venues/{venue_id}/shifts{?status}",
		Auth: true, Success: successOK, PayloadKey: "shifts", Fallback: "Failed to load venue shifts",
	}
	epApplyToShift = Endpoint{
		Name: "applyToShift", Method: http.MethodPost, Path: "/api/shifts/{shift_id}/apply",
		Auth: true, Success: successCreated, Fallback: "Failed to apply for shift",
	}
	epCheckinShift = Endpoint{
		Name: "checkinShift", Method: http.MethodPost, Path: "/api/shifts/{shift_id}/checkin",
		Auth: true, Success: successOK, Fallback: "Failed to check in",
	}
	epCheckoutShift = Endpoint{
		Name: "checkoutShift", Method: http.MethodPost, Path: "/api/shifts/{shift_id}/checkout",
		Auth: true, Success: successOK, Fallback: "Failed to check out",
	}
)

// Applications.
var (
	epGetMyApplications = Endpoint{
		Name: "getMyApplications", Method: http.MethodGet, Path: "/api/applications{?status}",
		Auth: true, Success: successOK, PayloadKey: "applications", Fallback: "Failed to load applications",
	}
	epGetShiftApplications = Endpoint{
		Name: "getShiftApplications", Method: http.MethodGet, Path: "/api/shifts/{shift_id}/applications",
		Auth: true, Success: successOK, PayloadKey: "applications", Fallback: "Failed to load applications",
	}
	epAcceptApplication = Endpoint{
		Name: "acceptApplication", Method: http.MethodPost, Path: "/api/applications/{application_id}/accept",
		Auth: true, Success: successOK, Fallback: "Failed to accept application",
	}
	epRejectApplication = Endpoint{
		Name: "rejectApplication", Method: http.MethodPost, Path: "/api/applications/{application_id}/reject",
		Auth: true, Success: successOK, Fallback: "Failed to reject application",
	}
	epWithdrawApplication = Endpoint{
		Name: "withdrawApplication", Method: http.MethodPost, Path: "/api/applications/{application_id}/withdraw",
		Auth: true, Success: successOK, Fallback: "Failed to withdraw application",
	}
)

// Chat and notifications.
var (
	epGetChatMessages = Endpoint{
		Name: "getChatMessages", Method: http.MethodGet, Path: "/api/shifts/{shift_id}/messages",
		Auth: true, Success: successOK, PayloadKey: "messages", Fallback: "Failed to load messages",
	}
	epSendChatMessage = Endpoint{
		Name: "sendChatMessage", Method: http.MethodPost, Path: "/api/shifts/{shift_id}/messages",
		Auth: true, Success: successCreated, Fallback: "Failed to send message",
	}
	epGetNotifications = Endpoint{
		Name: "getNotifications", Method: http.MethodGet, Path: "/api/notifications{?unread_only}",
		Auth: true, Success: successOK, PayloadKey: "notifications", Fallback: "Failed to load notifications",
	}
	epMarkNotificationRead = Endpoint{
		Name: "markNotificationRead", Method: http.MethodPost, Path: "/api/notifications/{notification_id}/read",
		Auth: true, Success: successNoContent, Fallback: "Failed to mark notification as read",
	}
	epMarkAllNotificationsRead = Endpoint{
		Name: "markAllNotificationsRead", Method: http.MethodPost, Path: "/api/notifications/read-all",
		Auth: true, Success: successNoContent, Fallback: "Failed to mark notifications as read",
	}
)

// Ratings, referrals and disputes.
var (
	epSubmitRating = Endpoint{
		Name: "submitRating", Method: http.MethodPost, Path: "/api/ratings",
		Auth: true, Success: successCreated, Fallback: "Failed to submit rating",
	}
	epGetUserRatings = Endpoint{
		Name: "getUserRatings", Method: http.MethodGet, Path: "/api/users/{user_id}/ratings",
		Auth: true, Success: successOK, PayloadKey: "ratings", Fallback: "Failed to load ratings",
	}
	epGetReferrals = Endpoint{
		Name: "getReferrals", Method: http.MethodGet, Path: "/api/referrals",
		Auth: true, Success: successOK, PayloadKey: "referrals", Fallback: "Failed to load referrals",
	}
	epGetReferralCode = Endpoint{
		Name: "getReferralCode", Method: http.MethodGet, Path: "/api/referrals/code",
		Auth: true, Success: successOK, Fallback: "Failed to load referral code",
	}
	epRedeemReferralCode = Endpoint{
		Name: "redeemReferralCode", Method: http.MethodPost, Path: "/api/referrals/redeem",
		Auth: true, Success: successOK, Fallback: "Failed to redeem referral code",
	}
	epGetDisputes = Endpoint{
		Name: "getDisputes", Method: http.MethodGet, Path: "/api/disputes",
		Auth: true, Success: successOK, PayloadKey: "disputes", Fallback: "Failed to load disputes",
	}
	epCreateDispute = Endpoint{
		Name: "createDispute", Method: http.MethodPost, Path: "/api/disputes",
		Auth: true, Success: successCreated, Fallback: "Failed to open dispute",
	}
	epUploadDisputeEvidence = Endpoint{
		Name: "uploadDisputeEvidence", Method: http.MethodPost, Path: "/api/disputes/{dispute_id}/evidence",
		Auth: true, Success: successOK, FileField: "evidence", Fallback: "Failed to upload evidence",
	}
)

// Venues and teams.
var (
	epGetVenues = Endpoint{
		Name: "getVenues", Method: http.MethodGet, Path: "/api/venues",
		Auth: true, Success: successOK, PayloadKey: "venues", Fallback: "Failed to load venues",
	}
	epCreateVenue = Endpoint{
		Name: "createVenue", Method: http.MethodPost, Path: "/api/venues",
		Auth: true, Success: successCreated, Fallback: "Failed to create venue",
	}
	epGetTeamMembers = Endpoint{
		Name: "getTeamMembers", Method: http.MethodGet, Path: "/api/venues/{venue_id}/team",
		Auth: true, Success: successOK, PayloadKey: "team_members", Fallback: "Failed to load team",
	}
	epAddTeamMember = Endpoint{
		Name: "addTeamMember", Method: http.MethodPost, Path: "/api/venues/{venue_id}/team",
		Auth: true, Success: successCreated, Fallback: "Failed to add team member",
	}
	epRemoveTeamMember = Endpoint{
		Name: "removeTeamMember", Method: http.MethodDelete, Path: "/api/venues/{venue_id}/team/{user_id}",
		Auth: true, Success: successNoContent, Fallback: "Failed to remove team member",
	}
)

// Matching, availability and uploads.
var (
	epGetMatches = Endpoint{
		Name: "getMatches", Method: http.MethodGet, Path: "/api/matches{?limit}",
		Auth: true, Success: successOK, PayloadKey: "matches", Fallback: "Failed to load matches",
	}
	epGetAvailability = Endpoint{
		Name: "getAvailability", Method: http.MethodGet, Path: "/api/availability",
		Auth: true, Success: successOK, PayloadKey: "availability", Fallback: "Failed to load availability",
	}
	epSetAvailability = Endpoint{
		Name: "setAvailability", Method: http.MethodPut, Path: "/api/availability",
		Auth: true, Success: successOK, PayloadKey: "availability", Fallback: "Failed to save availability",
	}
	epUploadCV = Endpoint{
		Name: "uploadCV", Method: http.MethodPost, Path: "/api/users/me/cv",
		Auth: true, Success: successOK, FileField: "cv", Fallback: "Failed to upload CV",
	}
	epUploadProfilePhoto = Endpoint{
		Name: "uploadProfilePhoto", Method: http.MethodPost, Path: "/api/users/me/photo",
		Auth: true, Success: successOK, FileField: "photo", Fallback: "Failed to upload photo",
	}
	epUploadVerificationDocument = Endpoint{
		Name: "uploadVerificationDocument", Method: http.MethodPost, Path: "/api/users/me/verification",
		Auth: true, Success: successOK, FileField: "document", Fallback: "Failed to upload verification document",
	}
)

var catalog = []Endpoint{
	epRegister, epLogin, epGetProfile, epUpdateProfile, epGetUser,
	epSearchShifts, epGetShift, epCreateShift, epUpdateShift, epCancelShift,
	epGetMyShifts, epGetVenueShifts, epApplyToShift, epCheckinShift, epCheckoutShift,
	epGetMyApplications, epGetShiftApplications, epAcceptApplication, epRejectApplication, epWithdrawApplication,
	epGetChatMessages, epSendChatMessage, epGetNotifications, epMarkNotificationRead, epMarkAllNotificationsRead,
	epSubmitRating, epGetUserRatings, epGetReferrals, epGetReferralCode, epRedeemReferralCode,
	epGetDisputes, epCreateDispute, epUploadDisputeEvidence,
	epGetVenues, epCreateVenue, epGetTeamMembers, epAddTeamMember, epRemoveTeamMember,
	epGetMatches, epGetAvailability, epSetAvailability,
	epUploadCV, epUploadProfilePhoto, epUploadVerificationDocument,
}

// Endpoints returns a copy of the full endpoint manifest.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(catalog))
	for i, ep := range catalog {
		out[i] = ep.clone()
	}
	return out
}

// Lookup finds an endpoint by name. The result is a copy.
func Lookup(name string) (Endpoint, bool) {
	for _, ep := range catalog {
		if ep.Name == name {
			return ep.clone(), true
		}
	}
	return Endpoint{}, false
}
