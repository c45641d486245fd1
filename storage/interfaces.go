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


package storage

import (
	"context"

	"github.com/poiesic/lattice/core"
)

// Repository provides common storage operations shared across all
// repositories. Implementations must be thread-safe and support concurrent
// access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// GraphStats reports stored element counts per kind.
type GraphStats struct {
	Concepts      int
	Entities      int
	Relationships int
	Correlations  int
}

// GraphRepository persists the four element kinds of an extracted knowledge
// graph. Node ids are content-addressed, so storing the same fragment twice
// merges rather than duplicates.
type GraphRepository interface {
	Repository

	// UpsertConcepts stores concepts, merging by id. On merge the stored
	// CreatedAt is preserved and UpdatedAt refreshed. Returns the stored
	// values with timestamps as persisted.
	UpsertConcepts(ctx context.Context, concepts ...*core.ConceptNode) ([]*core.ConceptNode, error)

	// UpsertEntities stores entities with the same merge semantics as
	// UpsertConcepts.
	UpsertEntities(ctx context.Context, entities ...*core.EntityNode) ([]*core.EntityNode, error)

	// UpsertRelationships stores relationships with the same merge
	// semantics as UpsertConcepts.
	UpsertRelationships(ctx context.Context, relationships ...*core.RelationshipNode) ([]*core.RelationshipNode, error)

	// UpsertCorrelations stores structural edges. Correlation ids embed
	// the page, so distinct occurrences never collide.
	UpsertCorrelations(ctx context.Context, correlations ...*core.GraphRelationship) error

	// GetConcept retrieves a concept by id.
	// Returns ErrNotFound if it doesn't exist.
	GetConcept(ctx context.Context, id string) (*core.ConceptNode, error)

	// GetEntity retrieves an entity by id.
	// Returns ErrNotFound if it doesn't exist.
	GetEntity(ctx context.Context, id string) (*core.EntityNode, error)

	// GetRelationship retrieves a relationship by id.
	// Returns ErrNotFound if it doesn't exist.
	GetRelationship(ctx context.Context, id string) (*core.RelationshipNode, error)

	// ListConcepts returns all stored concepts in key order.
	ListConcepts(ctx context.Context) ([]*core.ConceptNode, error)

	// ListEntities returns all stored entities in key order.
	ListEntities(ctx context.Context) ([]*core.EntityNode, error)

	// ListRelationships returns all stored relationships in key order.
	ListRelationships(ctx context.Context) ([]*core.RelationshipNode, error)

	// ListCorrelations returns all stored correlation edges in key order.
	ListCorrelations(ctx context.Context) ([]*core.GraphRelationship, error)

	// Stats counts stored elements per kind.
	Stats(ctx context.Context) (*GraphStats, error)
}
