package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelections          = errors.New("no selections to save")
	ErrSaveInProgress        = errors.New("ticket save already in progress")
	ErrProposalFinalized     = errors.New("ticket proposal already accepted or declined")
	ErrInvalidTicketStatus   = errors.New("invalid ticket status")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidContentType    = errors.New("invalid content type")
	ErrKeyNotFound           = errors.New("key not found")
)

// Kind classifies a failure for the caller. The string values match the
// error codes used by the remote API.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindInsufficientCredits Kind = "INSUFFICIENT_CREDITS"
	KindTierRequired        Kind = "TIER_REQUIRED"
	KindNetwork             Kind = "NETWORK_ERROR"
	KindTimeout             Kind = "TIMEOUT"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindServer              Kind = "SERVER_ERROR"
	KindBadRequest          Kind = "BAD_REQUEST"
	KindForbidden           Kind = "FORBIDDEN"
	KindNotFound            Kind = "NOT_FOUND"
	KindConflict            Kind = "CONFLICT"
	KindRateLimit           Kind = "RATE_LIMIT"
	KindUnknown             Kind = "UNKNOWN_ERROR"
)

// Sentinels matched by errors.Is against an *APIError of the same kind.
var (
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrTierRequired        = errors.New("subscription tier required")
	ErrNetwork             = errors.New("network error")
	ErrTimeout             = errors.New("request timeout")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrServer              = errors.New("server error")
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimit           = errors.New("too many requests")
	ErrUnknown             = errors.New("unknown error")
)

var kindSentinels = map[Kind]error{
	KindValidation:          ErrValidation,
	KindInsufficientCredits: ErrInsufficientCredits,
	KindTierRequired:        ErrTierRequired,
	KindNetwork:             ErrNetwork,
	KindTimeout:             ErrTimeout,
	KindUnauthorized:        ErrUnauthorized,
	KindServer:              ErrServer,
	KindBadRequest:          ErrBadRequest,
	KindForbidden:           ErrForbidden,
	KindNotFound:            ErrNotFound,
	KindConflict:            ErrConflict,
	KindRateLimit:           ErrRateLimit,
	KindUnknown:             ErrUnknown,
}

// APIError is a failed remote call translated into the client taxonomy.
type APIError struct {
	Kind      Kind
	Code      string
	Status    int
	Message   string
	Required  int
	Available int
	Fields    map[string][]string
	Err       error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the transport cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewInsufficientCredits builds the error returned when a spend cannot be covered.
func NewInsufficientCredits(required, available int) *APIError {
	return &APIError{
		Kind:      KindInsufficientCredits,
		Code:      string(KindInsufficientCredits),
		Message:   "Insufficient credits",
		Required:  required,
		Available: available,
	}
}

// KindOf returns the taxonomy kind of err. Local precondition failures are VALIDATION.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrNoSelections),
		errors.Is(err, ErrSaveInProgress),
		errors.Is(err, ErrProposalFinalized),
		errors.Is(err, ErrInvalidContentType):
		return KindValidation
	}
	return KindUnknown
}

// Retryable reports whether offering the user a plain retry makes sense.
// Nothing in this module retries on its own.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindTimeout, KindServer, KindRateLimit, KindConflict:
		return true
	}
	return false
}
