package installment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

var ErrNotFound = errors.New("installment not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=installment
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Service owns the canonical installment collection. All mutations go
// through it and persist the full collection before the in-memory state
// is replaced, so a failed save leaves no state change behind.
type Service struct {
	repo Repository

	mu      sync.Mutex
	records []Record
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Init loads the persisted collection. Call once at startup.
func (s *Service) Init(ctx context.Context) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading installments: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	return nil
}

// List returns a copy of the collection; callers never see the canonical
// slice and cannot mutate it in place.
func (s *Service) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// CreateParams carries the writable fields of a new installment.
type CreateParams struct {
	Bank           string
	Transaction    string
	MonthlyPayment float64
	MonthsPaid     float64
	TotalMonths    float64
	Note           string
}

// Add appends a new record with a fresh ID. MonthsPaid is clamped to
// TotalMonths on write rather than rejected.
func (s *Service) Add(ctx context.Context, params CreateParams) (Record, error) {
	record := Record{
		ID:             uuid.NewString(),
		Bank:           params.Bank,
		Transaction:    params.Transaction,
		MonthlyPayment: money.Parse(params.MonthlyPayment),
		MonthsPaid:     money.Parse(params.MonthsPaid),
		TotalMonths:    money.Parse(params.TotalMonths),
		Note:           params.Note,
	}
	clampMonthsPaid(&record)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.copyLocked(), record)
	if err := s.persist(ctx, next); err != nil {
		return Record{}, err
	}

	return record, nil
}

// Patch carries partial updates; nil fields are left untouched.
type Patch struct {
	Bank           *string
	Transaction    *string
	MonthlyPayment *float64
	MonthsPaid     *float64
	TotalMonths    *float64
	Note           *string
}

// Update merges a patch into the record with the given id and re-clamps
// MonthsPaid against the (possibly new) TotalMonths.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, id, func(r *Record) {
		if patch.Bank != nil {
			r.Bank = *patch.Bank
		}

		if patch.Transaction != nil {
			r.Transaction = *patch.Transaction
		}

		if patch.MonthlyPayment != nil {
			r.MonthlyPayment = money.Parse(*patch.MonthlyPayment)
		}

		if patch.MonthsPaid != nil {
			r.MonthsPaid = money.Parse(*patch.MonthsPaid)
		}

		if patch.TotalMonths != nil {
			r.TotalMonths = money.Parse(*patch.TotalMonths)
		}

		if patch.Note != nil {
			r.Note = *patch.Note
		}

		clampMonthsPaid(r)
	})
}

// PayOneMonth records one paid month, clamped at the full term. Calling
// it on a completed installment is a persisted no-op.
func (s *Service) PayOneMonth(ctx context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, id, func(r *Record) {
		r.MonthsPaid = money.Parse(r.MonthsPaid) + 1
		clampMonthsPaid(r)
	})
}

// SetNote replaces the record's note.
func (s *Service) SetNote(ctx context.Context, id, note string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, id, func(r *Record) {
		r.Note = note
	})
}

// Delete removes the record with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()

	for i, r := range next {
		if r.ID == id {
			next = append(next[:i], next[i+1:]...)
			return s.persist(ctx, next)
		}
	}

	return ErrNotFound
}

// Replace swaps the entire collection, assigning fresh IDs. CSV import
// uses this: a successful import is a replacement, not a merge. An empty
// params list is a no-op so a bad file cannot wipe the collection.
func (s *Service) Replace(ctx context.Context, params []CreateParams) ([]Record, error) {
	if len(params) == 0 {
		return nil, nil
	}

	next := make([]Record, len(params))

	for i, p := range params {
		next[i] = Record{
			ID:             uuid.NewString(),
			Bank:           p.Bank,
			Transaction:    p.Transaction,
			MonthlyPayment: money.Parse(p.MonthlyPayment),
			MonthsPaid:     money.Parse(p.MonthsPaid),
			TotalMonths:    money.Parse(p.TotalMonths),
			Note:           p.Note,
		}
		clampMonthsPaid(&next[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	return s.copyLocked(), nil
}

// mutate applies fn to a copy of the record with the given id, persists,
// and returns the updated record. Callers hold s.mu.
func (s *Service) mutate(ctx context.Context, id string, fn func(*Record)) (Record, error) {
	next := s.copyLocked()

	for i := range next {
		if next[i].ID != id {
			continue
		}

		fn(&next[i])

		if err := s.persist(ctx, next); err != nil {
			return Record{}, err
		}

		return next[i], nil
	}

	return Record{}, ErrNotFound
}

func (s *Service) copyLocked() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

func (s *Service) persist(ctx context.Context, next []Record) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("saving installments: %w", err)
	}

	s.records = next

	return nil
}

func clampMonthsPaid(r *Record) {
	if r.MonthsPaid > r.TotalMonths {
		r.MonthsPaid = r.TotalMonths
	}
}
