package backend

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

const (
	codeSeatsExhausted  = "SEATS_EXHAUSTED"
	codeAlreadyReserved = "ALREADY_RESERVED"
)

// Capacity wording is matched on word boundaries: "places" alone also
// appears in duplicate messages and "full" inside "successfully".
var capacityPattern = regexp.MustCompile(`\b(complet|plus de places?|aucune place|no (more )?seats|seats? left|capacity|sold out|full)\b`)

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// decodeError turns a non-2xx response into a BackendError. The message is
// kept verbatim; the kind is derived from the machine code when the backend
// sends one, otherwise from the status and message.
func decodeError(status int, body []byte, notFound error) *domain.BackendError {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		payload.Message = strings.TrimSpace(string(body))
	}

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	return &domain.BackendError{
		StatusCode: status,
		Message:    message,
		Kind:       classify(status, payload.Code, message, notFound),
	}
}

func classify(status int, code, message string, notFound error) error {
	switch strings.ToUpper(code) {
	case codeSeatsExhausted:
		return domain.ErrSeatsExhausted
	case codeAlreadyReserved:
		return domain.ErrAlreadyReserved
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		if notFound != nil {
			return notFound
		}
		return domain.ErrTransport
	case http.StatusConflict:
		if !mentionsDuplicate(message) && mentionsCapacity(message) {
			return domain.ErrSeatsExhausted
		}
		return domain.ErrAlreadyReserved
	case http.StatusBadRequest:
		if mentionsDuplicate(message) {
			return domain.ErrAlreadyReserved
		}
		if mentionsCapacity(message) {
			return domain.ErrSeatsExhausted
		}
	}

	return domain.ErrTransport
}

func mentionsCapacity(message string) bool {
	return capacityPattern.MatchString(strings.ToLower(message))
}

func mentionsDuplicate(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "déjà") || strings.Contains(lower, "already")
}
