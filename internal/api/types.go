package api

import (
	"encoding/json"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// User is a worker or venue account.
type User struct {
	ID        int64     `json:"id" validate:"required"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	Verified  bool      `json:"verified,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type,omitempty"`
	User        *User  `json:"user,omitempty"`

	// Raw is the full response body as received.
	Raw json.RawMessage `json:"-"`
}

// Shift is a posted block of work at a venue.
type Shift struct {
	ID              int64     `json:"id" validate:"required"`
	VenueID         int64     `json:"venue_id,omitempty"`
	VenueName       string    `json:"venue_name,omitempty"`
	Role            string    `json:"role,omitempty"`
	HourlyRate      float64   `json:"hourly_rate,omitempty"`
	StartTime       time.Time `json:"start_time,omitzero"`
	EndTime         time.Time `json:"end_time,omitzero"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status,omitempty"`
	Positions       int       `json:"positions,omitempty"`
	FilledPositions int       `json:"filled_positions,omitempty"`
}

// Application is a worker's request to take a shift.
type Application struct {
	ID        int64     `json:"id" validate:"required"`
	ShiftID   int64     `json:"shift_id,omitempty"`
	WorkerID  int64     `json:"worker_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	Shift     *Shift    `json:"shift,omitempty"`
	Worker    *User     `json:"worker,omitempty"`
}

// Attendance records a check-in or check-out.
type Attendance struct {
	ShiftID      int64     `json:"shift_id" validate:"required"`
	Status       string    `json:"status,omitempty"`
	CheckedInAt  time.Time `json:"checked_in_at,omitzero"`
	CheckedOutAt time.Time `json:"checked_out_at,omitzero"`
	HoursWorked  float64   `json:"hours_worked,omitempty"`
}

// Message is a chat message on a shift thread.
type Message struct {
	ID         int64     `json:"id" validate:"required"`
	ShiftID    int64     `json:"shift_id,omitempty"`
	SenderID   int64     `json:"sender_id,omitempty"`
	SenderName string    `json:"sender_name,omitempty"`
	Text       string    `json:"text,omitempty"`
	SentAt     time.Time `json:"sent_at,omitzero"`
}

type Notification struct {
	ID        int64     `json:"id" validate:"required"`
	Type      string    `json:"type,omitempty"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Rating struct {
	ID        int64     `json:"id" validate:"required"`
	ShiftID   int64     `json:"shift_id,omitempty"`
	RaterID   int64     `json:"rater_id,omitempty"`
	RateeID   int64     `json:"ratee_id,omitempty"`
	Score     int       `json:"score,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Referral struct {
	ID             int64     `json:"id" validate:"required"`
	ReferredUserID int64     `json:"referred_user_id,omitempty"`
	ReferredName   string    `json:"referred_name,omitempty"`
	Status         string    `json:"status,omitempty"`
	RewardAmount   float64   `json:"reward_amount,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

type ReferralCode struct {
	Code string `json:"code" validate:"required"`
	URL  string `json:"url,omitempty"`
	Uses int    `json:"uses,omitempty"`
}

// Dispute is a contested shift outcome (hours, pay, conduct).
type Dispute struct {
	ID          int64     `json:"id" validate:"required"`
	ShiftID     int64     `json:"shift_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type Venue struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
}

type TeamMember struct {
	UserID int64  `json:"user_id" validate:"required"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Match is a recommended shift for the current worker.
type Match struct {
	Shift   Shift    `json:"shift"`
	Score   float64  `json:"score,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

// AvailabilitySlot is a window on a given day when a worker can take shifts.
// Start and End are wall-clock times in HH:MM.
type AvailabilitySlot struct {
	Date      types.Date `json:"date" validate:"required"`
	Start     string     `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	End       string     `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Available bool       `json:"available"`
}

// UploadResult describes a stored upload.
type UploadResult struct {
	URL      string `json:"url" validate:"required"`
	Filename string `json:"filename,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Request bodies. Optional fields are pointers so unset values are omitted.

type RegisterRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Role         string  `json:"role" validate:"required,oneof=worker venue"`
	Phone        *string `json:"phone,omitempty"`
	ReferralCode *string `json:"referral_code,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdate struct {
	Name   *string  `json:"name,omitempty"`
	Phone  *string  `json:"phone,omitempty"`
	Bio    *string  `json:"bio,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

// ShiftInput creates a shift.
type ShiftInput struct {
	VenueID     int64     `json:"venue_id" validate:"required"`
	Role        string    `json:"role" validate:"required"`
	HourlyRate  float64   `json:"hourly_rate" validate:"gt=0"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	Positions   *int      `json:"positions,omitempty" validate:"omitempty,min=1"`
}

// ShiftUpdate changes the set fields of a shift.
type ShiftUpdate struct {
	Role        *string    `json:"role,omitempty"`
	HourlyRate  *float64   `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Description *string    `json:"description,omitempty"`
	Positions   *int       `json:"positions,omitempty" validate:"omitempty,min=1"`
}

type RatingInput struct {
	ShiftID int64   `json:"shift_id" validate:"required"`
	RateeID int64   `json:"ratee_id" validate:"required"`
	Score   int     `json:"score" validate:"min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

type DisputeInput struct {
	ShiftID     int64   `json:"shift_id" validate:"required"`
	Reason      string  `json:"reason" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type VenueInput struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	City        *string `json:"city,omitempty"`
	Description *string `json:"description,omitempty"`
}

type TeamMemberInput struct {
	Email string  `json:"email" validate:"required,email"`
	Role  *string `json:"role,omitempty"`
}

// Location is an optional position sent with check-in and check-out.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}
