package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Jane Doe
	Name string `json:"name"`

	// Email, unique per user
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role: STUDENT or ADMIN
	// required: true
	// default: STUDENT
	Role string `json:"role"`

	// College
	// default: MIT
	College *string `json:"college"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Registered user
	User *models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		name := strings.TrimSpace(req.Name)
		email := services.NormalizeEmail(req.Email)
		if name == "" || email == "" || req.Password == "" || strings.TrimSpace(req.Role) == "" {
			writeError(w, http.StatusBadRequest, "name, email, password, and role are required")
			return
		}

		role, ok := models.ParseRole(req.Role)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid role. Allowed values: STUDENT, ADMIN")
			return
		}

		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			writeError(w, http.StatusBadRequest, "Invalid email address")
			return
		}

		user, err := svc.Register(r.Context(), models.RegisterInput{
			Name:     name,
			Email:    email,
			Password: req.Password,
			Role:     role,
			College:  optionalString(req.College),
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "User already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			User:    user,
		})
	}
}
