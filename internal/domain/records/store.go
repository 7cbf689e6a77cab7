package records

import (
	"fmt"
	"maps"
	"math/rand"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// Record is one schemaless catalog entry. The "id" field is always a
// string-encoded integer assigned by the store.
type Record = map[string]any

// Mirror is the durable side of a collection. Load reports found=false when
// no durable state exists yet; Save overwrites the whole collection.
type Mirror interface {
	Load() ([]Record, bool, error)
	Save(records []Record) error
}

// Store holds one collection in memory and mirrors it after every mutation.
// Scan, mutate and persist run as one critical section per operation.
type Store struct {
	mu      sync.Mutex
	mirror  Mirror
	seed    func() []Record
	trlRand *rand.Rand
	logger  zerolog.Logger
	records []Record
}

type Option func(*Store)

// WithTRLDefaults enables technology readiness level handling: inserts and
// updates default a missing trl to 1, and records loaded from the mirror
// without a trl are backfilled with a random level drawn from r.
func WithTRLDefaults(r *rand.Rand) Option {
	return func(s *Store) {
		s.trlRand = r
	}
}

func NewStore(mirror Mirror, seed func() []Record, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		mirror: mirror,
		seed:   seed,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the collection from the mirror. An absent or unreadable mirror
// is replaced by freshly seeded data; records missing a defaulted trl are
// backfilled and persisted once.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, found, err := s.mirror.Load()
	if err != nil || !found {
		if err != nil {
			s.logger.Warn().Err(err).Msg("data file unreadable, regenerating seed data")
		}
		s.records = s.seed()
		if err := s.persistLocked(); err != nil {
			return fmt.Errorf("persist seed data: %w", err)
		}
		return nil
	}

	s.records = loaded
	if s.trlRand == nil {
		return nil
	}

	backfilled := false
	for _, rec := range s.records {
		if rec["trl"] == nil {
			rec["trl"] = s.trlRand.Intn(9) + 1
			backfilled = true
		}
	}
	if backfilled {
		if err := s.persistLocked(); err != nil {
			return fmt.Errorf("persist trl backfill: %w", err)
		}
	}
	return nil
}

// List returns the full collection in insertion order.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		out[i] = maps.Clone(rec)
	}
	return out
}

func (s *Store) Get(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if recordID(rec) == id {
			return maps.Clone(rec), nil
		}
	}
	return nil, ErrNotFound
}

// Insert creates a record from the client-supplied fields. Any client id is
// discarded; the new id is max(existing numeric ids)+1, or "0" on an empty
// collection. Empty strings, empty sequences and nulls are dropped.
func (s *Store) Insert(partial Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{"id": s.nextIDLocked()}
	for key, value := range partial {
		if key == "id" {
			continue
		}
		if clean, keep := sanitizeValue(value); keep {
			rec[key] = clean
		}
	}
	s.applyTRLDefault(rec)

	s.records = append(s.records, rec)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return maps.Clone(rec), nil
}

// Update shallow-merges partial over the stored record: later keys win and
// nested values are replaced wholesale. The id field is immutable.
func (s *Store) Update(id string, partial Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	merged := maps.Clone(s.records[idx])
	for key, value := range partial {
		if key == "id" {
			continue
		}
		merged[key] = value
	}
	s.applyTRLDefault(merged)

	s.records[idx] = merged
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return maps.Clone(merged), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return s.persistLocked()
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) applyTRLDefault(rec Record) {
	if s.trlRand != nil && rec["trl"] == nil {
		rec["trl"] = 1
	}
}

func (s *Store) indexLocked(id string) int {
	for i, rec := range s.records {
		if recordID(rec) == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextIDLocked() string {
	next := 0
	for _, rec := range s.records {
		if n, err := strconv.Atoi(recordID(rec)); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return strconv.Itoa(next)
}

func (s *Store) persistLocked() error {
	return s.mirror.Save(s.records)
}

func recordID(rec Record) string {
	id, _ := rec["id"].(string)
	return id
}
