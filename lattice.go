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


// Package lattice bundles the extraction pipeline into a single engine:
// a badger-backed graph store, a reasoning backend provider and a
// knowledge constructor wired together.
package lattice

import (
	"log/slog"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/ai/openai"
	"github.com/poiesic/lattice/knowledge"
	"github.com/poiesic/lattice/storage"
	"github.com/poiesic/lattice/storage/badger"
)

// Engine owns the storage backend, the reasoning provider and the
// knowledge constructor built on top of them.
type Engine struct {
	backend  *badger.Backend
	repo     storage.GraphRepository
	provider ai.Provider
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the reasoning backend configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage keeps the graph store in memory. Intended for tests
// and one-shot runs.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// NewEngine opens the graph store at filePath and wires the reasoning
// provider.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewGraphRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the provider, repository and backend.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	if err := e.repo.Close(); err != nil {
		e.logger.Error("error closing graph repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// GraphRepository exposes the engine's graph store.
func (e *Engine) GraphRepository() storage.GraphRepository {
	return e.repo
}

// Provider exposes the engine's reasoning backend.
func (e *Engine) Provider() ai.Provider {
	return e.provider
}

// NewConstructor builds a knowledge constructor wired to the engine's
// extractor and graph store.
func (e *Engine) NewConstructor(opts ...knowledge.Option) (*knowledge.Constructor, error) {
	opts = append([]knowledge.Option{knowledge.WithRepository(e.repo)}, opts...)
	return knowledge.NewConstructor(e.provider.Extractor(), opts...)
}
