package backend

import (
	"encoding/json"

	"github.com/YusovID/review-dashboard/internal/apperrors"
)

// Envelope is the wrapper every business response of the backend uses.
// Status 0 means success.
type Envelope[T any] struct {
	Status apperrors.Status `json:"status"`
	Info   string           `json:"info,omitempty"`
	Data   T                `json:"data"`
}

// Result returns the payload, or a *apperrors.BusinessError for a non-zero
// status.
func (e Envelope[T]) Result() (T, error) {
	if e.Status != apperrors.StatusOK {
		var zero T
		return zero, &apperrors.BusinessError{Status: e.Status, Info: e.Info}
	}

	return e.Data, nil
}

// Empty is the payload of envelopes that carry no data.
type Empty = json.RawMessage
