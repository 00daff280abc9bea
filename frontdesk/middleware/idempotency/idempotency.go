package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/frontdesk/model"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
)

// IdempotencyMiddleware makes the tagged write endpoints safe to retry.
// The first request under a key claims it; retries with the same body get
// the cached response back, retries with a different body are rejected.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	payload := req.Data().Payload
	bodyHash := hashRequestBody(payload)
	tenantID, locationID := scopeFromPayload(payload)

	cacheKey := model.IdempotencyKey{
		TenantID:   tenantID,
		LocationID: locationID,
		Resource:   req.Data().Path,
		Key:        idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		// Cache miss means this key has not been seen: claim it and run
		if errors.Is(cacheErr, cache.Miss) {
			if err := claimKey(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				releaseKey(req.Context(), cacheKey)
			} else {
				storeResponse(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"},
		}
	}

	return replayExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		if headerVal := strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER)); headerVal != "" {
			idempotencyKey = headerVal
		}
	}

	if len(idempotencyKey) == 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// scopeFromPayload pulls the tenant and location identifiers out of the
// request payload so keys from different properties never collide. The
// tagged endpoints (create reservation, record payment, add charge) all
// carry TenantID and LocationID; a payload without them lands in the zero
// scope.
func scopeFromPayload(payload any) (tenantID, locationID int64) {
	v := reflect.ValueOf(payload)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return 0, 0
	}
	if f := v.FieldByName("TenantID"); f.IsValid() && f.Kind() == reflect.Int64 {
		tenantID = f.Int()
	}
	if f := v.FieldByName("LocationID"); f.IsValid() && f.Kind() == reflect.Int64 {
		locationID = f.Int()
	}
	return tenantID, locationID
}

// hashRequestBody fingerprints the request body for conflict detection
func hashRequestBody(payload any) string {
	if payload == nil {
		return ""
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("Failed to marshal request body", "error", err)
		return ""
	}
	return hashing(bodyBytes)
}

// replayExistingEntry handles a key that has been seen before
func replayExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		return rejectConcurrentRequest(idempotencyKey)
	case model.IdempotencyCompleted:
		return replayCachedResponse(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("Unknown cache entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// rejectConcurrentRequest handles a key whose first request is still in flight
func rejectConcurrentRequest(idempotencyKey string) middleware.Response {
	rlog.Info("Concurrent request detected", "key", idempotencyKey)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."},
	}
}

// replayCachedResponse returns the stored response for a completed key
func replayCachedResponse(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("Returning cached response", "key", idempotencyKey)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()

			err := json.Unmarshal(entry.Response, responseValue)
			if err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("Failed to unmarshal cached response into correct type", "error", err, "key", idempotencyKey)
		}
	}

	// Fallback: if cached response is corrupted, treat as new request
	return next(req)
}

// claimKey marks a key as taken by an in-flight request
func claimKey(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := IdempotencyCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    model.IdempotencyProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("Failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"}
	}
	return nil
}

// releaseKey frees a key after a failed request so the client can retry
func releaseKey(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, deleteErr := IdempotencyCache.Delete(ctx, cacheKey); deleteErr != nil {
		rlog.Error("Failed to clear failed request from cache", "error", deleteErr)
	}
}

// storeResponse caches the successful response for replay
func storeResponse(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	// Only cache the payload as JSON, not the entire middleware.Response
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("Failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if setErr := IdempotencyCache.Set(ctx, cacheKey, completedEntry); setErr != nil {
		rlog.Error("Failed to cache successful response", "error", setErr)
	}

	rlog.Debug("Request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable fingerprint of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
