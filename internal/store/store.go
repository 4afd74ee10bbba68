// Package store persists partition-search results between runs of the
// offline table generator, keyed by (fractional width, interval count).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/silagokth/NACU/internal/pwlgen"
)

// ErrNotFound reports that no record exists for the requested key.
var ErrNotFound = errors.New("store: record not found")

// Record is one persisted search result.
type Record struct {
	Frac      int       `json:"frac"`
	Intervals int       `json:"intervals"`
	Metric    string    `json:"metric"`
	Points    []int64   `json:"points"`
	Slopes    []int64   `json:"slopes"`
	Offsets   []int64   `json:"offsets"`
	SumAbsErr float64   `json:"sum_abs_err"`
	MaxAbsErr float64   `json:"max_abs_err"`
	CreatedAt time.Time `json:"created_at"`
}

// FromResult converts a finished search into a storable record.
func FromResult(res *pwlgen.Result, metric pwlgen.Metric) *Record {
	rec := &Record{
		Frac:      res.Partition.Frac,
		Intervals: res.Partition.Intervals(),
		Metric:    metricName(metric),
		Points:    res.Partition.Points,
		SumAbsErr: res.SumAbsErr,
		MaxAbsErr: res.MaxAbsErr,
		CreatedAt: time.Now(),
	}
	for _, s := range res.Segments {
		rec.Slopes = append(rec.Slopes, s.Slope)
		rec.Offsets = append(rec.Offsets, s.Offset)
	}
	return rec
}

// Result rebuilds the search result the record was created from.
func (r *Record) Result() *pwlgen.Result {
	res := &pwlgen.Result{
		Partition: pwlgen.Partition{Frac: r.Frac, Points: r.Points},
		SumAbsErr: r.SumAbsErr,
		MaxAbsErr: r.MaxAbsErr,
	}
	for i := range r.Slopes {
		res.Segments = append(res.Segments, pwlgen.Segment{Slope: r.Slopes[i], Offset: r.Offsets[i]})
	}
	return res
}

func metricName(m pwlgen.Metric) string {
	if m == pwlgen.MetricMax {
		return "max"
	}
	return "sum"
}

func key(frac, intervals int) []byte {
	return []byte(fmt.Sprintf("pwl/%02d/%04d", frac, intervals))
}

// Store wraps BadgerDB for persistent table storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put saves a record under its (frac, intervals) key, replacing any
// previous result for that key.
func (s *Store) Put(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.Frac, rec.Intervals), data)
	})
}

// Get loads the record for (frac, intervals), or ErrNotFound.
func (s *Store) Get(frac, intervals int) (*Record, error) {
	rec := &Record{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(frac, intervals))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every stored record, in key order.
func (s *Store) List() ([]*Record, error) {
	var recs []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			rec := &Record{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
