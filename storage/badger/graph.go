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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lattice/core"
	"github.com/poiesic/lattice/storage"
)

// GraphRepository implements storage.GraphRepository for BadgerDB.
type GraphRepository struct {
	backend *Backend
}

var _ storage.GraphRepository = (*GraphRepository)(nil)

// NewGraphRepository creates a graph repository over the given backend.
func NewGraphRepository(backend *Backend) (storage.GraphRepository, error) {
	return &GraphRepository{backend: backend}, nil
}

// Close releases resources. GraphRepository has no resources of its own;
// the backend is closed by its owner.
func (r *GraphRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *GraphRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertConcepts stores concepts, merging by id. A merged node keeps its
// stored CreatedAt.
func (r *GraphRepository) UpsertConcepts(ctx context.Context, concepts ...*core.ConceptNode) ([]*core.ConceptNode, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storageNow()
		for _, node := range concepts {
			key := makeKey(conceptNodePrefix, node.ID)
			existing, err := readConceptNode(tx, key)
			if err != nil {
				return err
			}
			var created time.Time
			if existing != nil {
				created = existing.CreatedAt
			}
			mergeTimestamps(&node.CreatedAt, &node.UpdatedAt, existing != nil, created, now)
			if err := tx.Set(key, storage.MarshalConceptNode(node)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	return concepts, err
}

// UpsertEntities stores entities, merging by id.
func (r *GraphRepository) UpsertEntities(ctx context.Context, entities ...*core.EntityNode) ([]*core.EntityNode, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storageNow()
		for _, node := range entities {
			key := makeKey(entityNodePrefix, node.ID)
			existing, err := readEntityNode(tx, key)
			if err != nil {
				return err
			}
			var created time.Time
			if existing != nil {
				created = existing.CreatedAt
			}
			mergeTimestamps(&node.CreatedAt, &node.UpdatedAt, existing != nil, created, now)
			if err := tx.Set(key, storage.MarshalEntityNode(node)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	return entities, err
}

// UpsertRelationships stores relationships, merging by id.
func (r *GraphRepository) UpsertRelationships(ctx context.Context, relationships ...*core.RelationshipNode) ([]*core.RelationshipNode, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := storageNow()
		for _, node := range relationships {
			key := makeKey(relationshipNodePrefix, node.ID)
			existing, err := readRelationshipNode(tx, key)
			if err != nil {
				return err
			}
			var created time.Time
			if existing != nil {
				created = existing.CreatedAt
			}
			mergeTimestamps(&node.CreatedAt, &node.UpdatedAt, existing != nil, created, now)
			if err := tx.Set(key, storage.MarshalRelationshipNode(node)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	return relationships, err
}

// UpsertCorrelations stores structural edges. Edge ids embed the page, so
// every page occurrence is a distinct key.
func (r *GraphRepository) UpsertCorrelations(ctx context.Context, correlations ...*core.GraphRelationship) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		now := storageNow()
		for _, edge := range correlations {
			if edge.Properties.CreatedAt.IsZero() {
				edge.Properties.CreatedAt = now
			}
			key := makeKey(correlationEdgePrefix, edge.ID)
			if err := tx.Set(key, storage.MarshalGraphRelationship(edge)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetConcept retrieves a single concept by id.
func (r *GraphRepository) GetConcept(ctx context.Context, id string) (*core.ConceptNode, error) {
	var result *core.ConceptNode
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readConceptNode(tx, makeKey(conceptNodePrefix, id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEntity retrieves a single entity by id.
func (r *GraphRepository) GetEntity(ctx context.Context, id string) (*core.EntityNode, error) {
	var result *core.EntityNode
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEntityNode(tx, makeKey(entityNodePrefix, id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRelationship retrieves a single relationship by id.
func (r *GraphRepository) GetRelationship(ctx context.Context, id string) (*core.RelationshipNode, error) {
	var result *core.RelationshipNode
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readRelationshipNode(tx, makeKey(relationshipNodePrefix, id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListConcepts returns all stored concepts in key order.
func (r *GraphRepository) ListConcepts(ctx context.Context) ([]*core.ConceptNode, error) {
	var result []*core.ConceptNode
	err := r.iteratePrefix(conceptNodePrefix, func(val []byte) error {
		node, err := storage.UnmarshalConceptNode(val)
		if err != nil {
			return err
		}
		result = append(result, node)
		return nil
	})
	return result, err
}

// ListEntities returns all stored entities in key order.
func (r *GraphRepository) ListEntities(ctx context.Context) ([]*core.EntityNode, error) {
	var result []*core.EntityNode
	err := r.iteratePrefix(entityNodePrefix, func(val []byte) error {
		node, err := storage.UnmarshalEntityNode(val)
		if err != nil {
			return err
		}
		result = append(result, node)
		return nil
	})
	return result, err
}

// ListRelationships returns all stored relationships in key order.
func (r *GraphRepository) ListRelationships(ctx context.Context) ([]*core.RelationshipNode, error) {
	var result []*core.RelationshipNode
	err := r.iteratePrefix(relationshipNodePrefix, func(val []byte) error {
		node, err := storage.UnmarshalRelationshipNode(val)
		if err != nil {
			return err
		}
		result = append(result, node)
		return nil
	})
	return result, err
}

// ListCorrelations returns all stored correlation edges in key order.
func (r *GraphRepository) ListCorrelations(ctx context.Context) ([]*core.GraphRelationship, error) {
	var result []*core.GraphRelationship
	err := r.iteratePrefix(correlationEdgePrefix, func(val []byte) error {
		edge, err := storage.UnmarshalGraphRelationship(val)
		if err != nil {
			return err
		}
		result = append(result, edge)
		return nil
	})
	return result, err
}

// Stats counts stored elements per kind without materializing values.
func (r *GraphRepository) Stats(ctx context.Context) (*storage.GraphStats, error) {
	stats := &storage.GraphStats{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		stats.Concepts = countPrefix(tx, conceptNodePrefix)
		stats.Entities = countPrefix(tx, entityNodePrefix)
		stats.Relationships = countPrefix(tx, relationshipNodePrefix)
		stats.Correlations = countPrefix(tx, correlationEdgePrefix)
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *GraphRepository) iteratePrefix(prefix string, fn func(val []byte) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		p := keyPrefix(prefix)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = p
		it := tx.NewIterator(opts)
		defer it.Close()
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

func countPrefix(tx *badger.Txn, prefix string) int {
	p := keyPrefix(prefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = p
	opts.PrefetchValues = false
	it := tx.NewIterator(opts)
	defer it.Close()
	count := 0
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		count++
	}
	return count
}

// storageNow returns the current time truncated to microsecond precision,
// the precision the value encoding retains. Stamping anything finer would
// make returned nodes disagree with what a later Get reads back.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// mergeTimestamps applies upsert timestamp semantics in place: a merged
// node keeps the stored CreatedAt, a fresh node without one gets now, and
// UpdatedAt always becomes now.
func mergeTimestamps(createdAt, updatedAt *time.Time, exists bool, storedCreatedAt, now time.Time) {
	if exists {
		*createdAt = storedCreatedAt
	} else if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func readConceptNode(tx *badger.Txn, key []byte) (*core.ConceptNode, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var node *core.ConceptNode
	err = item.Value(func(val []byte) error {
		var err error
		node, err = storage.UnmarshalConceptNode(val)
		return err
	})
	return node, err
}

func readEntityNode(tx *badger.Txn, key []byte) (*core.EntityNode, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var node *core.EntityNode
	err = item.Value(func(val []byte) error {
		var err error
		node, err = storage.UnmarshalEntityNode(val)
		return err
	})
	return node, err
}

func readRelationshipNode(tx *badger.Txn, key []byte) (*core.RelationshipNode, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var node *core.RelationshipNode
	err = item.Value(func(val []byte) error {
		var err error
		node, err = storage.UnmarshalRelationshipNode(val)
		return err
	})
	return node, err
}
