package services

import (
	"context"
	"time"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/models"
)

const loginPath = "/api/Login/userauthentication"

// AuthService authenticates against the backend login endpoint.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
}

type authService struct {
	gw Gateway
}

func NewAuthService(gw Gateway) AuthService {
	return &authService{gw: gw}
}

type loginRequest struct {
	UserName    string `json:"UserName"`
	Password    string `json:"Password"`
	CompanyCode string `json:"CompanyCode,omitempty"`
}

// loginResponse covers both response shapes the backend is known to produce:
// the bare {Token, UserDetail} and the wrapped
// {IsSuccess, Message, Token?, UserDetail?}. IsSuccess being nil identifies
// the bare shape. The union is normalized here and never leaks upward.
type loginResponse struct {
	IsSuccess  *bool           `json:"IsSuccess"`
	Message    string          `json:"Message"`
	Token      string          `json:"Token"`
	UserDetail *models.Profile `json:"UserDetail"`
	ExpiresAt  string          `json:"ExpiresAt"`
}

// Login posts the credentials and normalizes either response shape into a
// LoginResult. A wrapped response with IsSuccess=false becomes a uniform
// error carrying the server's message.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	req := loginRequest{
		UserName:    creds.UserName,
		Password:    creds.Password,
		CompanyCode: creds.CompanyCode,
	}

	var resp loginResponse
	if err := s.gw.Post(ctx, loginPath, req, &resp); err != nil {
		return nil, err
	}

	if resp.IsSuccess != nil && !*resp.IsSuccess {
		msg := resp.Message
		if msg == "" {
			msg = api.FallbackMessage
		}
		return nil, &api.Error{Message: msg}
	}

	if resp.Token == "" || resp.UserDetail == nil {
		return nil, &api.Error{Message: api.FallbackMessage}
	}

	result := &models.LoginResult{
		Token: resp.Token,
		User:  *resp.UserDetail,
	}
	if resp.ExpiresAt != "" {
		if exp, err := time.Parse(time.RFC3339, resp.ExpiresAt); err == nil {
			result.ExpiresAt = exp
		}
	}
	return result, nil
}
