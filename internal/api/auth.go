package api

import (
	"context"
	"encoding/json"
	"strings"
)

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, epLogin, LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	return c.authenticate(ctx, epRegister, req)
}

func (c *Client) authenticate(ctx context.Context, ep Endpoint, body any) (*AuthResponse, error) {
	var resp AuthResponse
	_, err := c.instrument(ctx, ep, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := c.invoke(ctx, ep, Request{Body: body})
		if err != nil {
			return nil, err
		}
		if err := c.decode(ep, raw, &resp); err != nil {
			return nil, asMalformed(ep.Name, err)
		}
		resp.Raw = raw

		if err := c.tokens.Store().Write(ctx, resp.AccessToken); err != nil {
			return nil, &Error{Kind: KindTokenStore, Op: ep.Name, Message: "Could not save session token: " + err.Error(), Err: err}
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout forgets the stored session token. Logging out twice is not an error.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.tokens.Store().Delete(ctx); err != nil {
		return &Error{Kind: KindTokenStore, Op: "logout", Message: "Could not remove session token: " + err.Error(), Err: err}
	}
	return nil
}

// LoggedIn reports whether a session token is stored.
func (c *Client) LoggedIn(ctx context.Context) (bool, error) {
	tok, err := c.tokens.Store().Read(ctx)
	if err != nil {
		return false, &Error{Kind: KindTokenStore, Op: "loggedIn", Message: "Could not read session token: " + err.Error(), Err: err}
	}
	return tok != "", nil
}

func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	return callPtr[User](ctx, c, epGetProfile, Request{})
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	return callPtr[User](ctx, c, epUpdateProfile, Request{Body: update})
}

func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	return callPtr[User](ctx, c, epGetUser, Request{Params: map[string]string{"user_id": formatID(userID)}})
}
