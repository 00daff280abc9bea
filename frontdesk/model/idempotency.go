package model

import (
	"encoding/json"
	"time"
)

// IdempotencyStatus tracks where an idempotent request is in its lifecycle.
type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyKey identifies one idempotent request. Keys are scoped per
// tenant and location so two properties reusing the same client-generated
// key never collide.
type IdempotencyKey struct {
	TenantID   int64
	LocationID int64
	Resource   string
	Key        string
}

// IdempotencyCacheEntry is the cached outcome of an idempotent request.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
