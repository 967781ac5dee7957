package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/installment/store"
	"github.com/MrJamesThe3rd/angsur/internal/kv"
)

// memoryKV is a map-backed kv.Store for tests.
type memoryKV struct {
	entries map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{entries: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.entries[key]
	if !ok {
		return nil, kv.ErrNotFound
	}

	return value, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte) error {
	m.entries[key] = value
	return nil
}

func TestStore_LoadCurrentKey(t *testing.T) {
	backend := newMemoryKV()
	backend.entries[store.CurrentKey] = []byte(`[{"id":"x","bank":"BRI","transaction":"TOKOPEDIA","monthlyPayment":100,"monthsPaid":1,"totalMonths":12,"note":"n"}]`)

	records, err := store.New(backend).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x", records[0].ID)
	assert.Equal(t, "n", records[0].Note)
}

func TestStore_LoadFallsBackToLegacyKeys(t *testing.T) {
	backend := newMemoryKV()
	// v2 blob from before the note field existed.
	backend.entries["installments-v2"] = []byte(`[{"id":"old","bank":"Mandiri","transaction":"SHOPEE","monthlyPayment":50,"monthsPaid":0,"totalMonths":2}]`)

	records, err := store.New(backend).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "old", records[0].ID)
	assert.Empty(t, records[0].Note)
}

func TestStore_LoadPrefersNewerLegacyKey(t *testing.T) {
	backend := newMemoryKV()
	backend.entries["installments-v3"] = []byte(`[{"id":"v3"}]`)
	backend.entries["installments-v1"] = []byte(`[{"id":"v1"}]`)

	records, err := store.New(backend).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "v3", records[0].ID)
}

func TestStore_LoadMalformedBlobFallsThrough(t *testing.T) {
	backend := newMemoryKV()
	backend.entries[store.CurrentKey] = []byte(`{not json`)
	backend.entries["installments-v1"] = []byte(`[{"id":"v1"}]`)

	records, err := store.New(backend).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "v1", records[0].ID)
}

func TestStore_LoadSeedsSampleWhenEmpty(t *testing.T) {
	records, err := store.New(newMemoryKV()).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, store.SampleRecords(), records)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	backend := newMemoryKV()
	s := store.New(backend)

	want := []installment.Record{{ID: "a", Bank: "BRI", MonthlyPayment: 100, MonthsPaid: 2, TotalMonths: 12}}
	require.NoError(t, s.Save(context.Background(), want))

	var persisted []installment.Record
	require.NoError(t, json.Unmarshal(backend.entries[store.CurrentKey], &persisted))
	assert.Equal(t, want, persisted)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveNilWritesEmptyArray(t *testing.T) {
	backend := newMemoryKV()

	require.NoError(t, store.New(backend).Save(context.Background(), nil))
	assert.Equal(t, []byte(`[]`), backend.entries[store.CurrentKey])
}
