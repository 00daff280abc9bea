package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/frontdesk/model"
)

// IdempotencyCluster is the cache cluster backing the idempotency middleware
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache stores one entry per (tenant, location, resource, key).
// A day is long enough to absorb client retries of create-reservation,
// record-payment and add-charge requests; after that the reservation row
// itself rejects duplicates through its idempotency_key column.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:TenantID/:LocationID/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
