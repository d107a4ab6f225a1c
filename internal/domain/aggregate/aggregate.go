// Package aggregate maintains the three reporting indexes as a materialized
// view of the job table.
//
// Each index is a range-queryable map from a composite key to an amount:
//   - job stats: one entry per job, keyed by status and completion-or-creation time
//   - service performance: one entry per (completed job, item), keyed by service and completion time
//   - technician performance: one entry per (completed job, technician), keyed by technician and completion time
//
// Diff computes the exact puts and deletes a job mutation requires; the
// repository commits them in the same transaction as the job write, so the
// indexes always equal what a full re-scan of the job table would produce.
package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/domain/entities"
)

const (
	IndexJobStats              = "jobstats"
	IndexServicePerformance    = "serviceperf"
	IndexTechnicianPerformance = "techperf"
	sortTimestampDigits        = 20
)

var ErrInvalidSnapshot = errors.New("invalid aggregate snapshot")

// Entry is one index row. Partition groups entries that answer a single
// range query; Sort orders them by time and makes them unique per job
// (and per item or technician where applicable).
type Entry struct {
	Partition string
	Sort      string
	JobID     string
	At        time.Time
	Amount    float64
}

// Key addresses one index row for deletion.
type Key struct {
	Partition string
	Sort      string
}

// Delta is the set of index writes one job mutation produces.
type Delta struct {
	Puts    []Entry
	Deletes []Key
}

// Partition builds the partition component for an index and its sub-id
// (status, service id or technician id).
func Partition(index, sub string) string {
	return index + "#" + sub
}

// SortKey encodes a timestamp plus discriminator parts into a
// lexicographically ordered sort component. Nanoseconds are zero-padded so
// byte order equals time order.
func SortKey(t time.Time, parts ...string) string {
	elems := append([]string{fmt.Sprintf("%0*d", sortTimestampDigits, t.UTC().UnixNano())}, parts...)
	return strings.Join(elems, "#")
}

// SortRange returns the inclusive sort bounds covering [from, to] regardless
// of the discriminator suffixes entries carry.
func SortRange(from, to time.Time) (string, string) {
	return SortKey(from), SortKey(to) + "#\xff"
}

// Diff computes the index delta for a job transition from old to new.
// A nil old snapshot is a creation, a nil new snapshot is a removal.
// Editing an already-completed job deletes the old entries by the old
// completion date and re-inserts by the new one, so values are replaced,
// never accumulated.
//
// Puts and Deletes never address the same key: when an old entry is
// re-written in place the put overwrites it, and the redundant delete is
// dropped. Backends that commit the delta in one transaction rely on this;
// DynamoDB rejects a transaction with two operations on one item.
func Diff(old, new *entities.Job) (Delta, error) {
	if old == nil && new == nil {
		return Delta{}, errors.Wrap(ErrInvalidSnapshot, "both snapshots nil")
	}

	var d Delta

	if old != nil {
		if old.ID == "" {
			return Delta{}, errors.Wrap(ErrInvalidSnapshot, "old snapshot missing id")
		}
		keys, err := entryKeys(*old)
		if err != nil {
			return Delta{}, err
		}
		d.Deletes = keys
	}

	if new != nil {
		if new.ID == "" {
			return Delta{}, errors.Wrap(ErrInvalidSnapshot, "new snapshot missing id")
		}
		if old != nil && old.ID != new.ID {
			return Delta{}, errors.Wrapf(ErrInvalidSnapshot, "snapshot id mismatch: %s vs %s", old.ID, new.ID)
		}
		puts, err := entries(*new)
		if err != nil {
			return Delta{}, err
		}
		d.Puts = puts
	}

	if len(d.Deletes) > 0 && len(d.Puts) > 0 {
		overwritten := make(map[Key]struct{}, len(d.Puts))
		for _, e := range d.Puts {
			overwritten[Key{Partition: e.Partition, Sort: e.Sort}] = struct{}{}
		}
		kept := d.Deletes[:0]
		for _, k := range d.Deletes {
			if _, ok := overwritten[k]; !ok {
				kept = append(kept, k)
			}
		}
		d.Deletes = kept
	}

	return d, nil
}

// entries materializes the index rows one job snapshot contributes.
func entries(j entities.Job) ([]Entry, error) {
	completed := j.Status == entities.JobStatusCompleted
	if completed && j.CompletionDate == nil {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "completed job %s has no completion date", j.ID)
	}

	statsAmount := 0.0
	if completed {
		statsAmount = j.TotalAmount
	}
	statsTime := j.StatsTime()

	out := []Entry{{
		Partition: Partition(IndexJobStats, string(j.Status)),
		Sort:      SortKey(statsTime, j.ID),
		JobID:     j.ID,
		At:        statsTime,
		Amount:    statsAmount,
	}}

	if !completed {
		return out, nil
	}

	done := *j.CompletionDate
	for _, it := range j.JobItems {
		out = append(out, Entry{
			Partition: Partition(IndexServicePerformance, it.ServiceID),
			Sort:      SortKey(done, j.ID, it.ID),
			JobID:     j.ID,
			At:        done,
			Amount:    it.Total,
		})
	}

	split := j.TotalAmount / float64(max(len(j.AssignedTechnicianIDs), 1))
	for _, techID := range j.AssignedTechnicianIDs {
		out = append(out, Entry{
			Partition: Partition(IndexTechnicianPerformance, techID),
			Sort:      SortKey(done, j.ID),
			JobID:     j.ID,
			At:        done,
			Amount:    split,
		})
	}

	return out, nil
}

func entryKeys(j entities.Job) ([]Key, error) {
	es, err := entries(j)
	if err != nil {
		return nil, err
	}
	keys := make([]Key, 0, len(es))
	for _, e := range es {
		keys = append(keys, Key{Partition: e.Partition, Sort: e.Sort})
	}
	return keys, nil
}
