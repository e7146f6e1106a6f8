package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"ticket-engine/internal/model"
)

const codeExpertRequired = "EXPERT_REQUIRED"

// errorFromResponse translates a non-2xx response into the client taxonomy.
func errorFromResponse(status int, body []byte) *model.APIError {
	var data model.ErrorResponse
	_ = json.Unmarshal(body, &data)

	apiErr := &model.APIError{Status: status, Fields: data.Errors}
	message := func(fallback string) string {
		if data.Message != "" {
			return data.Message
		}
		return fallback
	}

	switch {
	case status == http.StatusBadRequest:
		apiErr.Kind, apiErr.Message = model.KindBadRequest, message("Bad request")
	case status == http.StatusUnauthorized:
		apiErr.Kind, apiErr.Message = model.KindUnauthorized, message("Unauthorized")
	case status == http.StatusPaymentRequired:
		apiErr.Kind, apiErr.Message = model.KindInsufficientCredits, message("Insufficient credits")
		if data.Required != nil {
			apiErr.Required = *data.Required
		}
		if data.Available != nil {
			apiErr.Available = *data.Available
		}
	case status == http.StatusForbidden && data.Code == codeExpertRequired:
		apiErr.Kind, apiErr.Message = model.KindTierRequired, message("Expert subscription required")
	case status == http.StatusForbidden:
		apiErr.Kind, apiErr.Message = model.KindForbidden, message("Forbidden")
	case status == http.StatusNotFound:
		apiErr.Kind, apiErr.Message = model.KindNotFound, message("Not found")
	case status == http.StatusConflict:
		apiErr.Kind, apiErr.Message = model.KindConflict, message("Conflict")
	case status == http.StatusUnprocessableEntity:
		apiErr.Kind, apiErr.Message = model.KindValidation, message("Validation failed")
	case status == http.StatusTooManyRequests:
		apiErr.Kind, apiErr.Message = model.KindRateLimit, message("Too many requests")
	case status == http.StatusInternalServerError, status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		apiErr.Kind, apiErr.Message = model.KindServer, message("Server error")
	default:
		apiErr.Kind, apiErr.Message = model.KindUnknown, message("Request failed")
	}

	apiErr.Code = data.Code
	if apiErr.Code == "" {
		apiErr.Code = string(apiErr.Kind)
	}
	return apiErr
}

// errorFromTransport translates a failure to get any response at all.
func errorFromTransport(err error) *model.APIError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &model.APIError{
			Kind:    model.KindTimeout,
			Code:    string(model.KindTimeout),
			Message: "Request timeout",
			Err:     err,
		}
	}
	return &model.APIError{
		Kind:    model.KindNetwork,
		Code:    string(model.KindNetwork),
		Message: "Network error - please check your connection",
		Err:     err,
	}
}

// tripsBreaker reports whether err says the remote side is unhealthy, as
// opposed to a well-formed rejection of this particular request.
func tripsBreaker(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch model.KindOf(err) {
	case model.KindNetwork, model.KindTimeout, model.KindServer:
		return true
	}
	return false
}
