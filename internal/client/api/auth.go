package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dmitrijs2005/mentorly-admin/internal/common"
)

// AuthClient calls the auth endpoints. It implements session.Authenticator.
type AuthClient struct {
	rest
}

// NewAuthClient returns an AuthClient for baseURL. hc must not route through
// a session.Transport.
func NewAuthClient(baseURL string, hc *http.Client) *AuthClient {
	return &AuthClient{rest: newRest(baseURL, hc)}
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if _, err := a.do(ctx, http.MethodPost, common.LoginPath, nil, models.Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if _, err := a.do(ctx, http.MethodPost, common.RegisterPath, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshResponse accepts the pair inside the envelope's data field or at
// the top level of the body; the refresh endpoint has answered both ways.
type refreshResponse struct {
	Data *models.TokenPair `json:"data"`
	models.TokenPair
}

func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	req, err := a.newRequest(ctx, http.MethodPost, common.RefreshTokenPath, nil, refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	data, err := a.send(req)
	if err != nil {
		return nil, err
	}

	var resp refreshResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.Data != nil && resp.Data.AccessToken != "" {
		return resp.Data, nil
	}
	return &resp.TokenPair, nil
}

// Logout revokes the session of accessToken on the server.
func (a *AuthClient) Logout(ctx context.Context, accessToken string) error {
	req, err := a.newRequest(ctx, http.MethodPost, common.LogoutPath, nil, nil)
	if err != nil {
		return err
	}
	if accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(accessToken))
	}
	_, err = a.send(req)
	return err
}
