package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/site-generator/internal/config"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries a signed bearer token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthHandler exchanges the shared admin password for API tokens.
type AuthHandler struct {
	passwords  *config.PasswordConfig
	jwtService *JWTService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(passwords *config.PasswordConfig, jwtService *JWTService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		passwords:  passwords,
		jwtService: jwtService,
		validator:  validator.New(),
		logger:     logger,
	}
}

// Login handles login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, h.logger, extractValidationError(err))
		return
	}

	if !h.passwords.VerifyAdmin(req.Password) {
		h.logger.Warn("rejected login", zap.String("remote_addr", r.RemoteAddr))
		writeError(w, h.logger, &ErrInvalidCredentials{})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(AdminSubject)
	if err != nil {
		writeError(w, h.logger, fmt.Errorf("failed to generate token: %w", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// extractValidationError converts the first validator failure into an ErrValidation.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid"}
}
