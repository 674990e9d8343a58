package usecase

import "time"

const (
	// DefaultConversionTimeout bounds a single call to the currency service.
	DefaultConversionTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long statement responses are kept for replay.
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyProcessing is stored under a reserved idempotency key
	// until the response is known.
	IdempotencyProcessing = "processing"
)
