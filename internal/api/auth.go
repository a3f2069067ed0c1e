package api

import "context"

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email and password for an access token. The caller is
// responsible for storing the token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new account. It does not log the user in; a follow-up
// Login is required to obtain a token.
func (c *Client) Register(ctx context.Context, email, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.post(ctx, "/auth/register", credentials{Email: email, Password: password}, &resp)
	return resp, err
}
