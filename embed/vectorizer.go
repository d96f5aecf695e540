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


package embed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/vectis/core"
	"github.com/poiesic/vectis/vector"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Vectorizer implements vector.Vectorizer using OpenAI-compatible
// embedding APIs.
type Vectorizer struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

var _ vector.Vectorizer = (*Vectorizer)(nil)

// NewVectorizer creates a vectorizer from the provided configuration.
func NewVectorizer(config *Config) (*Vectorizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Vectorizer{
		embedder: embedder,
		logger:   slog.Default().With("component", "embed-vectorizer"),
	}, nil
}

// Vectorize renders the object to text and embeds it.
func (v *Vectorizer) Vectorize(ctx context.Context, obj core.Object) (vector.Vector, error) {
	if obj == nil {
		return nil, ErrNilObject
	}

	text := Render(obj)
	v.logger.Debug("generating embedding", "id", obj.ID(), "kind", obj.Kind(), "length", len(text))

	results, err := v.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		v.logger.Error("failed to generate embedding", "id", obj.ID(), "err", err)
		return nil, err
	}
	if len(results) == 0 {
		v.logger.Warn("embedder returned empty result", "id", obj.ID())
		return nil, ErrEmptyEmbedding
	}

	return vector.Vector(results[0]), nil
}

// Render flattens an object to the text that gets embedded: its kind,
// its payload, and its annotations in key order.
func Render(obj core.Object) string {
	var sb strings.Builder
	sb.WriteString(obj.Kind().String())

	if content := objectContent(obj); content != "" {
		sb.WriteString(": ")
		sb.WriteString(content)
	}

	annotations := obj.Annotations()
	keys := make([]string, 0, len(annotations))
	for k := range annotations {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		sb.WriteString("\n")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprint(annotations[k]))
	}

	return sb.String()
}

func objectContent(obj core.Object) string {
	var data any
	switch o := obj.(type) {
	case *core.Leaf:
		data = o.Data
	case *core.Branch:
		data = o.Data
	case *core.Tree:
		data = o.Data
	case *core.Node:
		data = o.Data
	case *core.Layer:
		data = o.Name
	case *core.Matrix:
		data = o.Name
	}
	if data == nil {
		return ""
	}
	return fmt.Sprint(data)
}
