package out

import (
	"context"
	"encoding/json"
	"fmt"

	"roadmap/internal/modules/progress/domain"
	progressout "roadmap/internal/modules/progress/port/out"
	"roadmap/internal/platform/kv"
)

type KVProgressStore struct {
	kv kv.Store
}

func NewKVProgressStore(store kv.Store) progressout.ProgressStore {
	return &KVProgressStore{kv: store}
}

func (s *KVProgressStore) Load(ctx context.Context) (domain.Completions, error) {
	payload, ok, err := s.kv.Get(ctx, domain.StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.Completions{}, nil
	}
	out := domain.Completions{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", domain.StorageKey, err)
	}
	return out, nil
}

func (s *KVProgressStore) Save(ctx context.Context, completions domain.Completions) error {
	if completions == nil {
		completions = domain.Completions{}
	}
	payload, err := json.Marshal(completions)
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.StorageKey, err)
	}
	return s.kv.Set(ctx, domain.StorageKey, payload)
}

func (s *KVProgressStore) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, domain.StorageKey)
}
