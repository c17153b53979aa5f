package out

import (
	"context"
	"encoding/json"
	"fmt"

	"roadmap/internal/modules/tracking/domain"
	trackingout "roadmap/internal/modules/tracking/port/out"
	"roadmap/internal/platform/clock"
	"roadmap/internal/platform/kv"
)

// document is the persisted shape. analytics is written for readers of the
// raw value and ignored on load.
type document struct {
	domain.State
	Analytics *domain.Analytics `json:"analytics,omitempty"`
}

type KVStateStore struct {
	kv    kv.Store
	clock clock.Clock
}

func NewKVStateStore(store kv.Store, clk clock.Clock) trackingout.StateStore {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &KVStateStore{kv: store, clock: clk}
}

func (s *KVStateStore) Load(ctx context.Context) (domain.State, error) {
	payload, ok, err := s.kv.Get(ctx, domain.StorageKey)
	if err != nil {
		return domain.State{}, err
	}
	if !ok {
		return domain.NewState(), nil
	}
	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.State{}, fmt.Errorf("decode %s: %w", domain.StorageKey, err)
	}
	return doc.State.Normalize(), nil
}

func (s *KVStateStore) Save(ctx context.Context, state domain.State) error {
	analytics := state.Analytics(s.clock.Now())
	payload, err := json.Marshal(document{State: state.Normalize(), Analytics: &analytics})
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.StorageKey, err)
	}
	return s.kv.Set(ctx, domain.StorageKey, payload)
}
