package custdb

import (
	"context"

	"github.com/denismitr/custdb/internal/lru"
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
	"go.uber.org/zap"
)

const castPanic = "how could primary keys item not be of type *entry"

type entry struct {
	id  ID
	rec Record
}

func byIDs(a, b interface{}) bool {
	i1, i2 := a.(*entry), b.(*entry)
	return i1.id.Less(i2.id)
}

type renderCache interface {
	Add(key, value string) bool
	Get(key string) (string, bool)
}

// Store holds customer records by ID. It is filled once by New or Open and
// never written to afterwards, so any number of goroutines may read from it.
type Store struct {
	cfg   *Config
	log   *zap.Logger
	pks   *btree.BTree
	cache renderCache
}

// New indexes ds. The dataset is copied, later changes to ds are not seen.
func New(ds Dataset, opts ...Option) (*Store, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newStore(ds, cfg)
}

// Open builds a store from the configured seed file, or from SeedDataset
// when no seed file is set.
func Open(opts ...Option) (*Store, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	ds := SeedDataset()
	if cfg.SeedFile != "" {
		ds, err = LoadDataset(cfg.SeedFile)
		if err != nil {
			return nil, err
		}

		cfg.Logger.Info("seed file loaded", zap.String("path", cfg.SeedFile), zap.Int("records", len(ds)))
	}

	return newStore(ds, cfg)
}

func newStore(ds Dataset, cfg *Config) (*Store, error) {
	s := &Store{
		cfg:   cfg,
		log:   cfg.Logger,
		pks:   btree.NewNonConcurrent(byIDs),
		cache: lru.NullCache{},
	}

	for id, rec := range ds {
		if id.IsZero() {
			return nil, errors.Wrap(ErrEmptyID, "dataset")
		}

		s.pks.Set(&entry{id: id, rec: rec})
	}

	if !cfg.DisableRenderCache {
		c, err := lru.NewCache(cfg.RenderCacheShards, cfg.RenderCacheMaxBytes, func(k, _ string) {
			s.log.Debug("render cache eviction", zap.String("key", k))
		})
		if err != nil {
			return nil, errors.Wrap(err, "could not create render cache")
		}

		s.cache = c
	}

	s.log.Info("customer store ready",
		zap.Int("records", s.pks.Len()),
		zap.Bool("render_cache", !cfg.DisableRenderCache),
	)

	return s, nil
}

func (s *Store) fetchRecord(id ID) (Record, error) {
	found := s.pks.Get(&entry{id: id})
	if found == nil {
		s.log.Debug("customer not found", zap.String("id", id.String()))
		return Record{}, &RecordNotFoundError{ID: id}
	}

	ent, ok := found.(*entry)
	if !ok {
		panic(castPanic)
	}

	return ent.rec, nil
}

// Record returns the whole record stored under id.
func (s *Store) Record(id ID) (Record, error) {
	return s.fetchRecord(id)
}

func (s *Store) Value(id ID, f Field) (Value, error) {
	rec, err := s.fetchRecord(id)
	if err != nil {
		return Value{}, err
	}

	v, ok := rec.Value(f)
	if !ok {
		return Value{}, errors.Wrapf(ErrFieldNotFound, "customer %s has no field %s", id, f)
	}

	return v, nil
}

func (s *Store) Datatype(id ID, f Field) (Datatype, error) {
	v, err := s.Value(id, f)
	if err != nil {
		return invalidDatatype, err
	}

	return v.Datatype(), nil
}

func (s *Store) stringValue(id ID, f Field) (string, error) {
	v, err := s.Value(id, f)
	if err != nil {
		return "", err
	}

	str, ok := v.Str()
	if !ok {
		return "", errors.Wrapf(ErrDatatypeMismatch, "field %s of customer %s is %s", f, id, v.Datatype())
	}

	return str, nil
}

func (s *Store) intValue(id ID, f Field) (int, error) {
	v, err := s.Value(id, f)
	if err != nil {
		return 0, err
	}

	n, ok := v.Int()
	if !ok {
		return 0, errors.Wrapf(ErrDatatypeMismatch, "field %s of customer %s is %s", f, id, v.Datatype())
	}

	return n, nil
}

func (s *Store) FirstValue(id ID) (string, error) {
	return s.stringValue(id, First)
}

func (s *Store) FirstDatatype(id ID) (Datatype, error) {
	return s.Datatype(id, First)
}

func (s *Store) LastValue(id ID) (string, error) {
	return s.stringValue(id, Last)
}

func (s *Store) LastDatatype(id ID) (Datatype, error) {
	return s.Datatype(id, Last)
}

func (s *Store) EmailValue(id ID) (string, error) {
	return s.stringValue(id, Email)
}

func (s *Store) EmailDatatype(id ID) (Datatype, error) {
	return s.Datatype(id, Email)
}

func (s *Store) AgeValue(id ID) (int, error) {
	return s.intValue(id, Age)
}

func (s *Store) AgeDatatype(id ID) (Datatype, error) {
	return s.Datatype(id, Age)
}

func (s *Store) Has(id ID) bool {
	return s.pks.Get(&entry{id: id}) != nil
}

func (s *Store) Count() int {
	return s.pks.Len()
}

// IDs returns every stored id in ascending order.
func (s *Store) IDs() []ID {
	ids := make([]ID, 0, s.pks.Len())
	s.pks.Ascend(nil, func(i interface{}) bool {
		ids = append(ids, i.(*entry).id)
		return true
	})

	return ids
}

// Scan walks the records in ascending id order until fn returns false
// or ctx is done.
func (s *Store) Scan(ctx context.Context, fn func(id ID, rec Record) bool) error {
	s.pks.Ascend(nil, func(i interface{}) bool {
		if ctx.Err() != nil {
			return false
		}

		ent, ok := i.(*entry)
		if !ok {
			panic(castPanic)
		}

		return fn(ent.id, ent.rec)
	})

	return ctx.Err()
}
