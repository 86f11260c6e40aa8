package api

import (
	"context"
	"errors"
)

// UsersService covers authentication endpoints and the backend profile.
type UsersService struct {
	gateway *Gateway
}

// NewUsersService describes the newusersservice operation and its observable behavior.
func NewUsersService(g *Gateway) *UsersService {
	return &UsersService{gateway: g}
}

// LoginRequest defines a public type used by the booking client APIs.
//
// LoginRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest defines a public type used by the booking client APIs.
//
// RegisterRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse defines a public type used by the booking client APIs.
//
// RegisterResponse instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegisterResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest defines a public type used by the booking client APIs.
//
// ChangePasswordRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login posts credentials and returns the issued bearer token. Claims
// embedded in the token carry the subject id and role. The endpoint is
// public: an expired credential still held locally is ignored, so a
// re-login after mid-session expiry goes straight through.
func (s *UsersService) Login(ctx context.Context, req LoginRequest) (string, error) {
	var resp struct {
		Token   string `json:"token"`
		Message string `json:"message,omitempty"`
	}
	if err := s.gateway.postPublicJSON(ctx, "/users/login", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return resp.Token, nil
}

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or upstream responses fail.
func (s *UsersService) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	if err := s.gateway.postPublicJSON(ctx, "/users/register", req, &resp); err != nil {
		return RegisterResponse{}, err
	}
	if resp.Token == "" {
		return RegisterResponse{}, errors.New("register response carried no token")
	}
	return resp, nil
}

// Profile describes the profile operation and its observable behavior.
//
// Profile may return an error when input validation, dependency calls, or upstream responses fail.
func (s *UsersService) Profile(ctx context.Context) (User, error) {
	var u User
	err := s.gateway.getJSON(ctx, "/users/profile", &u)
	return u, err
}

// UpdateProfile describes the updateprofile operation and its observable behavior.
//
// UpdateProfile may return an error when input validation, dependency calls, or upstream responses fail.
func (s *UsersService) UpdateProfile(ctx context.Context, u User) (User, error) {
	var out User
	err := s.gateway.putJSON(ctx, "/users/profile", u, &out)
	return out, err
}

// ChangePassword describes the changepassword operation and its observable behavior.
//
// ChangePassword may return an error when input validation, dependency calls, or upstream responses fail.
func (s *UsersService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.gateway.postJSON(ctx, "/users/change-password", req, nil)
}
