package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: p
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// Unknown emails and wrong passwords get the same 401 body.
// @Summary User login
// @Description Authenticate user and return a JWT carrying the user id
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.MessageResponse "Missing fields"
// @Failure 401 {object} handlers.MessageResponse "Invalid credentials"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if req.Email == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeMessage(w, http.StatusUnauthorized, msgInvalidCreds)
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
