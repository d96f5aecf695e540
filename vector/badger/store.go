package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/poiesic/vectis/vector"
)

const vectorPrefix = "vec"

// makeVectorKey generates the key for a vector by object identifier.
func makeVectorKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", vectorPrefix, id))
}

// Store implements vector.Store (and vector.Iterable) on BadgerDB.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var (
	_ vector.Store    = (*Store)(nil)
	_ vector.Iterable = (*Store)(nil)
)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a vector store at the given path, creating the directory
// if needed. With inMemory set, the path is ignored and nothing is
// persisted.
func Open(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx executes fn within a transaction, discarding it on error.
func (s *Store) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := s.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// Add stores a vector under id, replacing any previous value.
func (s *Store) Add(ctx context.Context, id string, v vector.Vector) error {
	return s.withTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeVectorKey(id), marshalVector(v)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves the vector for id. An absent identifier is reported
// by the bool, never by an error.
func (s *Store) Get(ctx context.Context, id string) (vector.Vector, bool, error) {
	var out vector.Vector
	found := false

	err := s.withTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out, err = unmarshalVector(val)
			if err != nil {
				return err
			}
			found = true
			return nil
		})
	}, false)

	if err != nil {
		return nil, false, err
	}
	return out, found, nil
}

// Remove deletes the vector for id. Removing an absent identifier is
// a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.withTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeVectorKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ForEach invokes fn for every stored (id, vector) pair. Iteration
// stops at the first error, which is returned.
func (s *Store) ForEach(ctx context.Context, fn func(id string, v vector.Vector) error) error {
	prefix := []byte(vectorPrefix + ":")

	return s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := iter.Item()
			id := string(item.Key()[len(prefix):])

			var v vector.Vector
			err := item.Value(func(val []byte) error {
				var err error
				v, err = unmarshalVector(val)
				return err
			})
			if err != nil {
				return err
			}

			if err := fn(id, v); err != nil {
				return err
			}
		}
		return nil
	}, false)
}
