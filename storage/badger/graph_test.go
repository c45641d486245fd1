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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lattice/core"
	"github.com/poiesic/lattice/storage"
)

func newTestRepo(t *testing.T) storage.GraphRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func concept(name string, confidence float64) *core.ConceptNode {
	return &core.ConceptNode{
		ID:     core.ConceptID(name),
		Labels: []string{core.LabelConcept},
		Properties: core.ConceptProperties{
			Name:       name,
			Definition: name + " definition",
			Confidence: confidence,
		},
	}
}

func TestUpsertAndGetConcept(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.UpsertConcepts(ctx, concept("Machine Learning", 0.9))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].CreatedAt.IsZero())

	got, err := repo.GetConcept(ctx, "concept_machine_learning")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", got.Properties.Name)
	assert.InDelta(t, 0.9, got.Properties.Confidence, 1e-9)
}

func TestUpsertTimestampsSurviveRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.UpsertConcepts(ctx, concept("Pipeline", 0.7))
	require.NoError(t, err)

	// the CreatedAt handed back by the upsert must match what a later
	// read decodes from storage
	got, err := repo.GetConcept(ctx, "concept_pipeline")
	require.NoError(t, err)
	assert.Equal(t, stored[0].CreatedAt, got.CreatedAt)
	assert.Equal(t, stored[0].UpdatedAt, got.UpdatedAt)
	assert.Equal(t, stored[0].CreatedAt, stored[0].CreatedAt.Truncate(time.Microsecond))
}

func TestGetConceptNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetConcept(context.Background(), "concept_missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.UpsertConcepts(ctx, concept("Pipeline", 0.7))
	require.NoError(t, err)
	created := first[0].CreatedAt

	time.Sleep(2 * time.Millisecond)

	second, err := repo.UpsertConcepts(ctx, concept("Pipeline", 0.9))
	require.NoError(t, err)
	assert.Equal(t, created, second[0].CreatedAt)
	assert.True(t, second[0].UpdatedAt.After(created))

	got, err := repo.GetConcept(ctx, "concept_pipeline")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, got.Properties.Confidence, 1e-9)

	// still one record
	all, err := repo.ListConcepts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertEntitiesAndRelationships(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entity := &core.EntityNode{
		ID:     core.EntityID("Ada Lovelace", "PERSON"),
		Labels: []string{core.LabelEntity},
		Properties: core.EntityProperties{
			Name:       "Ada Lovelace",
			Type:       "PERSON",
			Confidence: 0.85,
			Attributes: map[string]string{"role": "mathematician"},
		},
	}
	_, err := repo.UpsertEntities(ctx, entity)
	require.NoError(t, err)

	gotEntity, err := repo.GetEntity(ctx, entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "mathematician", gotEntity.Properties.Attributes["role"])

	rel := &core.RelationshipNode{
		ID:     core.RelationshipID(entity.ID, "USES", "concept_x"),
		Labels: []string{core.LabelRelationship},
		Properties: core.RelationshipProperties{
			Type:           "USES",
			SourceEntityID: entity.ID,
			TargetEntityID: "concept_x",
			Confidence:     0.8,
		},
	}
	_, err = repo.UpsertRelationships(ctx, rel)
	require.NoError(t, err)

	gotRel, err := repo.GetRelationship(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, "USES", gotRel.Properties.Type)

	_, err = repo.GetEntity(ctx, "entity_person_nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCorrelationsAndStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertConcepts(ctx, concept("A", 0.8), concept("B", 0.7))
	require.NoError(t, err)

	edges := []*core.GraphRelationship{
		{
			ID:          core.CorrelationID("concept_a", "page_1"),
			Type:        core.RelTypeExtractedFrom,
			StartNodeID: "concept_a",
			EndNodeID:   "page_1",
			Properties:  core.CorrelationProperties{ExtractionConfidence: 0.8},
		},
		{
			ID:          core.CorrelationID("concept_a", "page_2"),
			Type:        core.RelTypeExtractedFrom,
			StartNodeID: "concept_a",
			EndNodeID:   "page_2",
			Properties:  core.CorrelationProperties{ExtractionConfidence: 0.9},
		},
	}
	require.NoError(t, repo.UpsertCorrelations(ctx, edges...))

	// same fragment on two pages stays two edges
	all, err := repo.ListCorrelations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, edge := range all {
		assert.False(t, edge.Properties.CreatedAt.IsZero())
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Concepts)
	assert.Equal(t, 0, stats.Entities)
	assert.Equal(t, 0, stats.Relationships)
	assert.Equal(t, 2, stats.Correlations)
}
