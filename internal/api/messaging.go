package api

import "context"

func (c *Client) GetChatMessages(ctx context.Context, shiftID int64) ([]Message, error) {
	return call[[]Message](ctx, c, epGetChatMessages, Request{Params: shiftParams(shiftID)})
}

type sendMessageBody struct {
	Text string `json:"text" validate:"required"`
}

// SendChatMessage posts text to a shift's chat thread.
func (c *Client) SendChatMessage(ctx context.Context, shiftID int64, text string) (*Message, error) {
	return callPtr[Message](ctx, c, epSendChatMessage, Request{
		Params: shiftParams(shiftID),
		Body:   sendMessageBody{Text: text},
	})
}

// GetNotifications lists notifications. With unreadOnly the server filters to unread ones.
func (c *Client) GetNotifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	params := map[string]string{}
	if unreadOnly {
		params["unread_only"] = formatBool(true)
	}
	return call[[]Notification](ctx, c, epGetNotifications, Request{Params: params})
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return exec(ctx, c, epMarkNotificationRead, Request{
		Params: map[string]string{"notification_id": formatID(notificationID)},
	})
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return exec(ctx, c, epMarkAllNotificationsRead, Request{})
}
