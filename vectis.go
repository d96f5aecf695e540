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


// Package vectis assembles the hierarchy, traversal, hunting, and
// vector packages into a ready-to-use system. Construct hierarchies
// with core, then use a System to persist vectors and run searches.
package vectis

import (
	"context"
	"log/slog"

	"github.com/poiesic/vectis/embed"
	"github.com/poiesic/vectis/hunt"
	"github.com/poiesic/vectis/indexing"
	"github.com/poiesic/vectis/traverse"
	"github.com/poiesic/vectis/vector"
	badgerstore "github.com/poiesic/vectis/vector/badger"
	"github.com/poiesic/vectis/vector/flat"
)

// System bundles a persistent vector store with a vectorizer.
type System struct {
	store      *badgerstore.Store
	vectorizer vector.Vectorizer
	logger     *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	embedConfig *embed.Config
	vectorizer  vector.Vectorizer
	inMemory    bool
}

// WithEmbedConfig sets the embedding service configuration used to
// build the default vectorizer.
func WithEmbedConfig(config *embed.Config) SystemOption {
	return func(o *systemOptions) { o.embedConfig = config }
}

// WithVectorizer replaces the default embedding-backed vectorizer.
func WithVectorizer(vectorizer vector.Vectorizer) SystemOption {
	return func(o *systemOptions) { o.vectorizer = vectorizer }
}

// WithInMemory keeps the vector store in memory. The file path is
// ignored. Intended for tests and short-lived sessions.
func WithInMemory() SystemOption {
	return func(o *systemOptions) { o.inMemory = true }
}

// NewSystem opens the vector store at filePath and builds the
// vectorizer. Callers own the returned System and must Close it.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		embedConfig: embed.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := badgerstore.Open(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	vectorizer := options.vectorizer
	if vectorizer == nil {
		vectorizer, err = embed.NewVectorizer(options.embedConfig)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	return &System{
		store:      store,
		vectorizer: vectorizer,
		logger:     slog.Default(),
	}, nil
}

// Close releases the vector store.
func (s *System) Close() error {
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing vector store", "err", err)
		return err
	}
	return nil
}

// Store returns the system's vector store.
func (s *System) Store() vector.Store {
	return s.store
}

// Vectorizer returns the system's vectorizer.
func (s *System) Vectorizer() vector.Vectorizer {
	return s.vectorizer
}

// NewPipeline creates an indexing pipeline over the system's store and
// vectorizer.
func (s *System) NewPipeline(opts ...indexing.Option) (*indexing.Pipeline, error) {
	return indexing.NewPipeline(s.store, s.vectorizer, opts...)
}

// NewIndex builds a similarity index over the store's current contents.
// Rebuild after indexing passes to pick up new vectors.
func (s *System) NewIndex(ctx context.Context) (*flat.Index, error) {
	ix := flat.New()
	if err := ix.Build(ctx, s.store); err != nil {
		return nil, err
	}
	return ix, nil
}

// NewEngine creates a hunt engine over the given traverser and hunters.
func (s *System) NewEngine(traverser *traverse.Traverser, hunters ...*hunt.Hunter) (*hunt.Engine, error) {
	return hunt.NewEngine(traverser, hunters...)
}
