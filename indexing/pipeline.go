// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package indexing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/vectis/core"
	"github.com/poiesic/vectis/traverse"
	"github.com/poiesic/vectis/vector"
)

// Filter selects which objects get vectorized. A nil Filter indexes
// everything the traversal reaches.
type Filter func(core.Object) bool

// Pipeline walks hierarchies and writes object vectors to a store.
// Vectorization runs concurrently on a worker pool.
type Pipeline struct {
	store      vector.Store
	vectorizer vector.Vectorizer
	traverser  *traverse.Traverser
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent vectorization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithTraverser sets the traverser that decides which objects the
// pipeline reaches. Default follows containment children only.
func WithTraverser(traverser *traverse.Traverser) Option {
	return func(p *Pipeline) error {
		if traverser == nil {
			traverser = traverse.New(traverse.WithChildren(traverse.Children))
		}
		p.traverser = traverser
		return nil
	}
}

// NewPipeline creates an indexing pipeline over the given store and
// vectorizer.
func NewPipeline(store vector.Store, vectorizer vector.Vectorizer, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if vectorizer == nil {
		return nil, ErrVectorizerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store:      store,
		vectorizer: vectorizer,
		traverser:  traverse.New(traverse.WithChildren(traverse.Children)),
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Index walks the hierarchy rooted at start, vectorizes every object
// the filter accepts, and writes the vectors keyed by object ID.
// Objects are processed concurrently; the call returns after all
// submitted work finishes, with per-object failures joined into the
// returned error.
func (p *Pipeline) Index(ctx context.Context, start core.Object, filter Filter) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	indexed := 0
	for obj := range p.traverser.Traverse(start) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if filter != nil && !filter(obj) {
			continue
		}

		indexed++
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.indexObject(ctx, obj); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			errs = append(errs, submitErr)
			break
		}
	}

	wg.Wait()
	p.logger.Debug("indexing pass complete", "objects", indexed, "failures", len(errs))
	return errors.Join(errs...)
}

func (p *Pipeline) indexObject(ctx context.Context, obj core.Object) error {
	v, err := p.vectorizer.Vectorize(ctx, obj)
	if err != nil {
		p.logger.Error("failed to vectorize object", "id", obj.ID(), "kind", obj.Kind(), "err", err)
		return fmt.Errorf("vectorize %s: %w", obj.ID(), err)
	}

	if err := p.store.Add(ctx, obj.ID(), v); err != nil {
		p.logger.Error("failed to store vector", "id", obj.ID(), "err", err)
		return fmt.Errorf("store %s: %w", obj.ID(), err)
	}
	return nil
}

// Remove deletes the vectors of the hierarchy rooted at start. Useful
// after Decompose to keep the store aligned with the hierarchy.
func (p *Pipeline) Remove(ctx context.Context, start core.Object) error {
	var errs []error
	for obj := range p.traverser.Traverse(start) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := p.store.Remove(ctx, obj.ID()); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", obj.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
