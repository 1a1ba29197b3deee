package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/services"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) error
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Name
	// required: true
	// default: A
	Name string `json:"name"`

	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: p
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. Password is hashed with bcrypt before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User registered successfully"
// @Failure 400 {object} handlers.MessageResponse "Missing fields or email already registered"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, msgUserExists)
			default:
				logger.Log.Errorw("signup failed", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeMessage(w, http.StatusCreated, msgUserRegistered)
	}
}
