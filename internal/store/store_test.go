package store

import (
	"errors"
	"testing"

	"github.com/silagokth/NACU/internal/pwlgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	res, err := pwlgen.Search(pwlgen.Options{Frac: 6, Intervals: 4, Metric: pwlgen.MetricSum})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if err := s.Put(FromResult(res, pwlgen.MetricSum)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rec, err := s.Get(6, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Frac != 6 || rec.Intervals != 4 || rec.Metric != "sum" {
		t.Errorf("record header = %+v", rec)
	}

	back := rec.Result()
	if err := back.Partition.Validate(); err != nil {
		t.Errorf("restored partition invalid: %v", err)
	}
	if len(back.Segments) != len(res.Segments) {
		t.Fatalf("restored %d segments, want %d", len(back.Segments), len(res.Segments))
	}
	for i := range res.Segments {
		if back.Segments[i] != res.Segments[i] {
			t.Errorf("segment %d = %+v, want %+v", i, back.Segments[i], res.Segments[i])
		}
	}
}

func TestStoreNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(11, 32); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty store = %v, want ErrNotFound", err)
	}
}

func TestStoreList(t *testing.T) {
	s := openTestStore(t)

	for _, n := range []int{4, 8} {
		res, err := pwlgen.Search(pwlgen.Options{Frac: 6, Intervals: n, Metric: pwlgen.MetricSum})
		if err != nil {
			t.Fatalf("Search(N=%d): %v", n, err)
		}
		if err := s.Put(FromResult(res, pwlgen.MetricSum)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	recs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("listed %d records, want 2", len(recs))
	}
	if recs[0].Intervals != 4 || recs[1].Intervals != 8 {
		t.Errorf("key order wrong: %d, %d", recs[0].Intervals, recs[1].Intervals)
	}
}
