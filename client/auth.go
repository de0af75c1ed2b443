package client

import (
	"context"
	"net/http"

	"hotel-portal/models"
)

type authPayload struct {
	Token  string      `json:"token"`
	Token2 string      `json:"accessToken"`
	User   models.User `json:"user"`
}

func (p authPayload) token() string {
	return firstNonEmpty(p.Token, p.Token2)
}

func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	req := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/login", "", nil, req, &payload); err != nil {
		return "", models.User{}, err
	}
	return payload.token(), payload.User, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, models.User, error) {
	req := map[string]string{"name": name, "email": email, "password": password}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/register", "", nil, req, &payload); err != nil {
		return "", models.User{}, err
	}
	return payload.token(), payload.User, nil
}

func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/auth/me", token, nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
