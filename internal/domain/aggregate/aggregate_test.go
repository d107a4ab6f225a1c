package aggregate

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"slick_jobs/internal/domain/entities"
)

func completedJob(id string, total float64, done time.Time, techs ...string) entities.Job {
	return entities.Job{
		ID:     id,
		Status: entities.JobStatusCompleted,
		JobItems: []entities.JobItem{
			{ID: id + "-item-1", ServiceID: "svc-wash", Total: total},
		},
		TotalAmount:           total,
		CompletionDate:        &done,
		AssignedTechnicianIDs: techs,
		CreatedAt:             done.Add(-time.Hour),
	}
}

func TestDiff(t *testing.T) {
	done := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("both snapshots nil", func(t *testing.T) {
		if _, err := Diff(nil, nil); !errors.Is(err, ErrInvalidSnapshot) {
			t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
		}
	})

	t.Run("creation of estimate contributes stats only", func(t *testing.T) {
		j := entities.Job{ID: "job-1", Status: entities.JobStatusEstimate, CreatedAt: done}
		d, err := Diff(nil, &j)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Deletes) != 0 {
			t.Fatalf("expected no deletes, got %d", len(d.Deletes))
		}
		if len(d.Puts) != 1 {
			t.Fatalf("expected 1 put, got %d", len(d.Puts))
		}
		e := d.Puts[0]
		if e.Partition != "jobstats#estimate" || e.Amount != 0 || e.JobID != "job-1" {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("completed job contributes all three indexes", func(t *testing.T) {
		j := completedJob("job-2", 300, done, "tech-a", "tech-b")
		d, err := Diff(nil, &j)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1 stats + 1 service + 2 technicians
		if len(d.Puts) != 4 {
			t.Fatalf("expected 4 puts, got %d", len(d.Puts))
		}
		if d.Puts[0].Partition != "jobstats#completed" || d.Puts[0].Amount != 300 {
			t.Fatalf("unexpected stats entry: %+v", d.Puts[0])
		}
		if d.Puts[1].Partition != "serviceperf#svc-wash" || d.Puts[1].Amount != 300 {
			t.Fatalf("unexpected service entry: %+v", d.Puts[1])
		}
		for _, e := range d.Puts[2:] {
			if e.Amount != 150 {
				t.Fatalf("expected even split of 150, got %+v", e)
			}
		}
	})

	t.Run("single technician gets full amount", func(t *testing.T) {
		j := completedJob("job-3", 200, done, "tech-a")
		d, err := Diff(nil, &j)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := d.Puts[len(d.Puts)-1]
		if last.Partition != "techperf#tech-a" || last.Amount != 200 {
			t.Fatalf("unexpected technician entry: %+v", last)
		}
	})

	t.Run("edit while completed overwrites entries in place", func(t *testing.T) {
		old := completedJob("job-4", 100, done, "tech-a")
		updated := completedJob("job-4", 100, done, "tech-a")
		updated.Notes = "polished"

		d, err := Diff(&old, &updated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Same completion date: every old key is re-written by a put, so no
		// deletes survive.
		if len(d.Puts) != 3 || len(d.Deletes) != 0 {
			t.Fatalf("expected 3 puts and no deletes, got %d puts %d deletes", len(d.Puts), len(d.Deletes))
		}
	})

	t.Run("changed completion date moves entries", func(t *testing.T) {
		old := completedJob("job-4", 100, done, "tech-a")
		updated := completedJob("job-4", 100, done.Add(time.Hour), "tech-a")

		d, err := Diff(&old, &updated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Deletes) != 3 || len(d.Puts) != 3 {
			t.Fatalf("expected 3 deletes and 3 puts, got %d deletes %d puts", len(d.Deletes), len(d.Puts))
		}
	})

	t.Run("status change moves stats partition", func(t *testing.T) {
		old := entities.Job{ID: "job-5", Status: entities.JobStatusEstimate, CreatedAt: done}
		updated := entities.Job{ID: "job-5", Status: entities.JobStatusWorkOrder, CreatedAt: done}
		d, err := Diff(&old, &updated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Deletes[0].Partition != "jobstats#estimate" {
			t.Fatalf("unexpected delete: %+v", d.Deletes[0])
		}
		if d.Puts[0].Partition != "jobstats#workOrder" {
			t.Fatalf("unexpected put: %+v", d.Puts[0])
		}
	})

	t.Run("removal produces deletes only", func(t *testing.T) {
		old := completedJob("job-6", 100, done, "tech-a")
		d, err := Diff(&old, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Puts) != 0 || len(d.Deletes) != 3 {
			t.Fatalf("expected 3 deletes and no puts, got %+v", d)
		}
	})

	t.Run("completed snapshot without completion date fails", func(t *testing.T) {
		j := entities.Job{ID: "job-7", Status: entities.JobStatusCompleted}
		if _, err := Diff(nil, &j); !errors.Is(err, ErrInvalidSnapshot) {
			t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
		}
	})

	t.Run("snapshot id mismatch fails", func(t *testing.T) {
		a := entities.Job{ID: "job-a", Status: entities.JobStatusEstimate}
		b := entities.Job{ID: "job-b", Status: entities.JobStatusEstimate}
		if _, err := Diff(&a, &b); !errors.Is(err, ErrInvalidSnapshot) {
			t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
		}
	})
}

// Every delta must be committable as a single transaction that touches each
// index row at most once, so a delete key may never also appear as a put key.
func TestDiffDeleteAndPutKeysDisjoint(t *testing.T) {
	done := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	estimate := entities.Job{ID: "job-1", Status: entities.JobStatusEstimate, CreatedAt: done}
	notesEdit := estimate
	notesEdit.Notes = "customer prefers morning slot"

	invoice := entities.Job{ID: "job-1", Status: entities.JobStatusInvoice, CreatedAt: done, TotalAmount: 100}
	partialPayment := invoice
	partialPayment.PaymentReceived = 40
	partialPayment.PaymentStatus = entities.PaymentStatusPartial

	completed := completedJob("job-1", 100, done, "tech-a")
	completedEdit := completed
	completedEdit.Notes = "polished"
	rescheduled := completedJob("job-1", 100, done.Add(time.Hour), "tech-a")

	workOrder := entities.Job{ID: "job-1", Status: entities.JobStatusWorkOrder, CreatedAt: done}

	cases := []struct {
		name     string
		old, new *entities.Job
	}{
		{"notes-only edit of estimate", &estimate, &notesEdit},
		{"partial payment keeps invoice status", &invoice, &partialPayment},
		{"edit while completed", &completed, &completedEdit},
		{"completion date change", &completed, &rescheduled},
		{"status transition", &estimate, &workOrder},
		{"removal", &completed, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Diff(tc.old, tc.new)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			puts := make(map[Key]struct{}, len(d.Puts))
			for _, e := range d.Puts {
				puts[Key{Partition: e.Partition, Sort: e.Sort}] = struct{}{}
			}
			for _, k := range d.Deletes {
				if _, ok := puts[k]; ok {
					t.Fatalf("delete and put share key partition=%q sort=%q", k.Partition, k.Sort)
				}
			}
		})
	}
}

func TestSortKeyOrdering(t *testing.T) {
	earlier := SortKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "job-1")
	later := SortKey(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "job-1")
	if earlier >= later {
		t.Fatalf("sort keys not time-ordered: %q >= %q", earlier, later)
	}

	from, to := SortRange(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	if earlier < from || later > to {
		t.Fatalf("range [%q, %q] does not cover entries %q and %q", from, to, earlier, later)
	}
}
