package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrIdempotencyKeyExists is returned when an idempotency key was already
// recorded by another committed transaction.
var ErrIdempotencyKeyExists = errors.New("idempotency key already recorded")

// IdempotencyLog stores the response of a transfer keyed by the caller's
// idempotency key so retries replay it instead of moving money twice.
type IdempotencyLog struct {
	Key          string    `json:"key"`
	TransferID   uuid.UUID `json:"transfer_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}
