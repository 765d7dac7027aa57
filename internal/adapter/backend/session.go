package backend

import (
	"context"
	"net/http"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

// Login establishes the backend session cookie.
func (c *Client) Login(ctx context.Context, email, password string) error {
	err := c.do(ctx, call{
		operation: "login",
		method:    http.MethodPost,
		path:      "/login",
		body:      loginRequest{Email: email, Password: password},
	}, nil)
	if err != nil {
		return err
	}

	c.logger.WithField("email", email).Info("signed in to backend")
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var resp meResponse
	err := c.do(ctx, call{
		operation: "current_user",
		method:    http.MethodGet,
		path:      "/me",
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.User == nil || resp.User.ID.IsZero() {
		return nil, domain.ErrUnauthenticated
	}

	return resp.User, nil
}
