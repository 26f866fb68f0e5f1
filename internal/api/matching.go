package api

import (
	"context"
	"strconv"
)

// GetMatches returns recommended shifts. A limit of zero leaves the count to the server.
func (c *Client) GetMatches(ctx context.Context, limit int) ([]Match, error) {
	params := map[string]string{}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return call[[]Match](ctx, c, epGetMatches, Request{Params: params})
}

func (c *Client) GetAvailability(ctx context.Context) ([]AvailabilitySlot, error) {
	return call[[]AvailabilitySlot](ctx, c, epGetAvailability, Request{})
}

type availabilityBody struct {
	Slots []AvailabilitySlot `json:"availability" validate:"dive"`
}

// SetAvailability replaces the worker's availability and returns what the server stored.
func (c *Client) SetAvailability(ctx context.Context, slots []AvailabilitySlot) ([]AvailabilitySlot, error) {
	if slots == nil {
		slots = []AvailabilitySlot{}
	}
	return call[[]AvailabilitySlot](ctx, c, epSetAvailability, Request{Body: availabilityBody{Slots: slots}})
}

// Uploads.

func (c *Client) UploadCV(ctx context.Context, f *File) (*UploadResult, error) {
	return callPtr[UploadResult](ctx, c, epUploadCV, Request{File: f})
}

func (c *Client) UploadProfilePhoto(ctx context.Context, f *File) (*UploadResult, error) {
	return callPtr[UploadResult](ctx, c, epUploadProfilePhoto, Request{File: f})
}

// UploadVerificationDocument submits an identity or right-to-work document of the given type.
func (c *Client) UploadVerificationDocument(ctx context.Context, f *File, documentType string) (*UploadResult, error) {
	if documentType == "" {
		return nil, &Error{Kind: KindInvalidRequest, Op: epUploadVerificationDocument.Name, Message: "Invalid request: document type is required"}
	}
	return callPtr[UploadResult](ctx, c, epUploadVerificationDocument, Request{
		File:   f,
		Fields: map[string]string{"document_type": documentType},
	})
}
