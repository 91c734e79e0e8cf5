package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/cardex/internal/model"
)

// Records stores parsed contact records in a Cache
type Records struct {
	cache Cache
	ttl   time.Duration
}

// NewRecords wraps c. A nil cache makes every lookup miss and every store a
// no-op.
func NewRecords(c Cache, ttl time.Duration) *Records {
	return &Records{cache: c, ttl: ttl}
}

// Get returns the cached record for key. Undecodable entries are dropped.
func (r *Records) Get(key string) (*model.ContactRecord, bool) {
	if r == nil || r.cache == nil {
		return nil, false
	}
	raw, ok := r.cache.Get(key)
	if !ok {
		return nil, false
	}
	var rec model.ContactRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		_ = r.cache.Delete(key)
		return nil, false
	}
	return &rec, true
}

// Put stores rec under key
func (r *Records) Put(key string, rec *model.ContactRecord) error {
	if r == nil || r.cache == nil || rec == nil {
		return nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := r.cache.Set(key, raw, r.ttl); err != nil {
		return fmt.Errorf("store record: %w", err)
	}
	return nil
}
