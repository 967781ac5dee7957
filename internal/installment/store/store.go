// Package store persists the installment collection as a single JSON blob
// in a key-value store, migrating older storage keys on first load.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/kv"
)

// CurrentKey is where the collection lives today. Bump it when the record
// shape changes and add the old key to legacyKeys.
const CurrentKey = "installments-v4"

// legacyKeys are read newest-first when CurrentKey is absent. v1..v3 blobs
// predate the note field, which Record defaults to "" on decode.
var legacyKeys = []string{"installments-v3", "installments-v2", "installments-v1"}

type Store struct {
	kv kv.Store
}

func New(kvStore kv.Store) *Store {
	return &Store{kv: kvStore}
}

// Load reads the collection: the current key first, then legacy keys, and
// finally the built-in sample dataset. A malformed blob is logged and
// treated as absent; startup never fails on bad state.
func (s *Store) Load(ctx context.Context) ([]installment.Record, error) {
	for _, key := range append([]string{CurrentKey}, legacyKeys...) {
		data, err := s.kv.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}

		var records []installment.Record
		if err := json.Unmarshal(data, &records); err != nil {
			slog.Warn("discarding malformed installment blob", "key", key, "error", err)
			continue
		}

		return records, nil
	}

	return SampleRecords(), nil
}

// Save overwrites the whole collection under the current key. There is no
// partial persistence; the blob is always the full list.
func (s *Store) Save(ctx context.Context, records []installment.Record) error {
	if records == nil {
		records = []installment.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding installments: %w", err)
	}

	if err := s.kv.Set(ctx, CurrentKey, data); err != nil {
		return fmt.Errorf("persisting installments: %w", err)
	}

	return nil
}
