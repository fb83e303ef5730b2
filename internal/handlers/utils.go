package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/jwt"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/middlewares"
)

// Messages shared by several handlers
const (
	msgInvalidBody   = "Invalid request body"
	msgUnauthorized  = "Unauthorized"
	msgInternalError = "Internal server error"
)

// ErrorResponse is the body of every error reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	// default: Internal server error
	Message string `json:"message"`
}

// MessageResponse is a reply that only carries a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeInternalError logs err and answers 500 without exposing it.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// decodeJSON decodes a request body into dst, rejecting unknown fields and
// trailing data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// requireClaims returns the authenticated identity or answers 401.
func requireClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return nil, false
	}
	return claims, true
}

// uuidParam parses a chi URL parameter as a UUID or answers 400 with message.
func uuidParam(w http.ResponseWriter, r *http.Request, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}

// positiveIntOr parses s as an integer >= 1, falling back to def.
// Positive values beyond the int range saturate to math.MaxInt.
func positiveIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return def
	}
	return n
}

// dateLayouts lists the accepted date formats, tried in order.
var dateLayouts = []string{time.RFC3339, time.DateOnly}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("expected RFC 3339 timestamp or YYYY-MM-DD date")
}

// optionalString trims s and maps blank values to nil.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
