// Package badgerstore persists jobs and aggregate index entries in an
// embedded BadgerDB. Badger keys iterate in byte order, which gives the
// aggregate indexes their bounded range scans, and a single read-write
// transaction carries the job write together with its index delta.
package badgerstore

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	badger "github.com/dgraph-io/badger/v4"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"
)

const (
	jobKeyPrefix    = "job|"
	publicKeyPrefix = "pub|"
	aggKeyPrefix    = "agg|"
)

// Store implements IJobRepository and IAggregateIndex on one badger DB.
type Store struct {
	db *badger.DB
}

var (
	_ interfaces.IJobRepository  = (*Store)(nil)
	_ interfaces.IAggregateIndex = (*Store)(nil)
)

// Open opens (or creates) a badger store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger store at %s", path)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store. Used in tests and demos.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory badger store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func jobKey(id string) []byte     { return []byte(jobKeyPrefix + id) }
func publicKey(key string) []byte { return []byte(publicKeyPrefix + key) }

func aggKey(partition, sort string) []byte {
	return []byte(aggKeyPrefix + partition + "|" + sort)
}

func (s *Store) GetByID(ctx context.Context, id string) (entities.Job, error) {
	var job entities.Job
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(jobKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &job)
		})
	})
	if err != nil {
		return entities.Job{}, errors.Wrapf(err, "loading job %s", id)
	}
	return job, nil
}

func (s *Store) GetByPublicKey(ctx context.Context, key string) (entities.Job, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(publicKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return entities.Job{}, errors.Wrap(err, "resolving public link key")
	}
	if id == "" {
		return entities.Job{}, nil
	}
	return s.GetByID(ctx, id)
}

// Commit writes the job mutation and its aggregate delta in one badger
// transaction: either everything becomes visible or nothing does.
func (s *Store) Commit(ctx context.Context, txn interfaces.JobTransaction) error {
	err := s.db.Update(func(btxn *badger.Txn) error {
		if txn.Put != nil {
			payload, err := json.Marshal(txn.Put)
			if err != nil {
				return err
			}
			if err := btxn.Set(jobKey(txn.Put.ID), payload); err != nil {
				return err
			}
			if txn.Put.PublicLinkKey != "" {
				if err := btxn.Set(publicKey(txn.Put.PublicLinkKey), []byte(txn.Put.ID)); err != nil {
					return err
				}
			}
		}

		if txn.DeleteID != "" {
			item, err := btxn.Get(jobKey(txn.DeleteID))
			if err == nil {
				var job entities.Job
				if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &job) }); err == nil && job.PublicLinkKey != "" {
					if err := btxn.Delete(publicKey(job.PublicLinkKey)); err != nil {
						return err
					}
				}
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err := btxn.Delete(jobKey(txn.DeleteID)); err != nil {
				return err
			}
		}

		for _, k := range txn.IndexDeletes {
			if err := btxn.Delete(aggKey(k.Partition, k.Sort)); err != nil {
				return err
			}
		}
		for _, e := range txn.IndexPuts {
			payload, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := btxn.Set(aggKey(e.Partition, e.Sort), payload); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "committing job transaction")
	}
	return nil
}

// Range scans one index partition between the inclusive sort bounds, in
// ascending key order.
func (s *Store) Range(ctx context.Context, partition, fromSort, toSort string) ([]aggregate.Entry, error) {
	prefix := []byte(aggKeyPrefix + partition + "|")
	start := append(append([]byte{}, prefix...), []byte(fromSort)...)
	end := append(append([]byte{}, prefix...), []byte(toSort)...)

	var out []aggregate.Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(start); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if bytes.Compare(item.Key(), end) > 0 {
				break
			}
			var e aggregate.Entry
			if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &e) }); err != nil {
				return err
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning partition %s", partition)
	}
	return out, nil
}
