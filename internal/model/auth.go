package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest is the admin login request body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ChangePasswordRequest is the admin password change request body.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// JWTCustomClaims is the token payload; sub carries the admin user ID.
type JWTCustomClaims struct {
	jwt.RegisteredClaims
}

type ContextKey string

const (
	AdminUserIDKey ContextKey = "adminUserID"
)
