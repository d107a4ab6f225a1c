package interfaces

import (
	"context"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
)

// JobTransaction is one atomic unit of work: the job write plus the aggregate
// index delta it produced. The repository must commit everything or nothing;
// aggregates are never observable in a state inconsistent with the job table.
//
// Exactly one of Put/DeleteID is set. IndexPuts and IndexDeletes never
// address the same (partition, sort) key, so a backend may commit them in
// any order, or as a single transaction that touches each row once.
type JobTransaction struct {
	Put      *entities.Job
	DeleteID string

	IndexPuts    []aggregate.Entry
	IndexDeletes []aggregate.Key
}

// IJobRepository abstracts persistence for Job plus its aggregate indexes.
//
// Lookup methods return a zero-ID Job (not an error) when nothing matches,
// matching the repository convention used across this service.
type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByPublicKey(ctx context.Context, key string) (entities.Job, error)
	Commit(ctx context.Context, txn JobTransaction) error
}

// IAggregateIndex exposes bounded range scans over the maintained indexes.
// Entries come back in ascending sort order.
type IAggregateIndex interface {
	Range(ctx context.Context, partition, fromSort, toSort string) ([]aggregate.Entry, error)
}
