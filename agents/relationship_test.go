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


package agents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/ai/mock"
	"github.com/poiesic/lattice/core"
)

func TestNormalizeRelationshipType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"uses", "USES"},
		{"Utilizes", "USES"},
		{"works for", "PART_OF"},
		{"depends on", "DEPENDS_ON"},
		{"collaborates with", "COLLABORATES_WITH"},
		{"", "RELATES_TO"},
	}
	for _, tt := range tests {
		if got := NormalizeRelationshipType(tt.in); got != tt.want {
			t.Errorf("NormalizeRelationshipType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func relationshipInput() Input {
	now := time.Now().UTC()
	in := conceptInput("page text")
	in.Data.Entities = []core.EntityNode{
		{
			ID:         core.EntityID("Ada Lovelace", "PERSON"),
			Labels:     []string{core.LabelEntity},
			Properties: core.EntityProperties{Name: "Ada Lovelace", Type: "PERSON", Confidence: 0.9},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	in.Data.Concepts = []core.ConceptNode{
		{
			ID:         core.ConceptID("Analytical Engine"),
			Labels:     []string{core.LabelConcept},
			Properties: core.ConceptProperties{Name: "Analytical Engine", Confidence: 0.8},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	return in
}

func TestRelationshipAgentResolvesEndpoints(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Relationships: []ai.ExtractedRelationship{
				{Source: "Ada Lovelace", Target: "Analytical Engine", Type: "uses", Confidence: 0.9},
				{Source: "Charles Babbage", Target: "Analytical Engine", Type: "created by", Confidence: 0.8},
			},
		}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), relationshipInput())
	require.NoError(t, err)
	require.Len(t, out.Result.Relationships, 1)

	rel := out.Result.Relationships[0]
	srcID := core.EntityID("Ada Lovelace", "PERSON")
	tgtID := core.ConceptID("Analytical Engine")
	assert.Equal(t, core.RelationshipID(srcID, "USES", tgtID), rel.ID)
	assert.Equal(t, srcID, rel.Properties.SourceEntityID)
	assert.Equal(t, tgtID, rel.Properties.TargetEntityID)
	assert.Equal(t, "USES", rel.Properties.Type)

	// Charles Babbage is not among the extracted fragments
	assert.Equal(t, 1, out.Result.Meta.InvalidRelationships)
	assert.Equal(t, 1, out.Result.Meta.TotalRelationships)
}

func TestEndpointIndexPrefersConcepts(t *testing.T) {
	in := relationshipInput()
	in.Data.Concepts = append(in.Data.Concepts, core.ConceptNode{
		ID:         core.ConceptID("Apple"),
		Labels:     []string{core.LabelConcept},
		Properties: core.ConceptProperties{Name: "Apple", Confidence: 0.8},
	})
	in.Data.Entities = append(in.Data.Entities, core.EntityNode{
		ID:         core.EntityID("Apple", "ORGANIZATION"),
		Labels:     []string{core.LabelEntity},
		Properties: core.EntityProperties{Name: "Apple", Type: "ORGANIZATION", Confidence: 0.9},
	})

	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Relationships: []ai.ExtractedRelationship{
				{Source: "Apple", Target: "Analytical Engine", Type: "uses", Confidence: 0.9},
			},
		}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Result.Relationships, 1)

	// a name present as both concept and entity resolves to the concept
	assert.Equal(t, core.ConceptID("Apple"), out.Result.Relationships[0].Properties.SourceEntityID)
}

func TestRelationshipAgentDefaultDescription(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Relationships: []ai.ExtractedRelationship{
				{Source: "Ada Lovelace", Target: "Analytical Engine", Type: "uses", Confidence: 0.9},
			},
		}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), relationshipInput())
	require.NoError(t, err)
	require.Len(t, out.Result.Relationships, 1)
	assert.Equal(t, "Ada Lovelace uses Analytical Engine", out.Result.Relationships[0].Properties.Description)
}

func TestRelationshipAgentNetworkAnalysis(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Relationships: []ai.ExtractedRelationship{
				{Source: "Ada Lovelace", Target: "Analytical Engine", Type: "uses", Confidence: 0.9},
			},
		}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), relationshipInput())
	require.NoError(t, err)
	analysis := out.Result.Analysis
	require.NotNil(t, analysis)

	// one edge between two nodes: 1 / (2*1)
	assert.InDelta(t, 0.5, analysis.NetworkDensity, 1e-9)
	assert.Equal(t, []TypeCount{{Type: "USES", Count: 1}}, analysis.TypeDistribution)
	require.Len(t, analysis.Hubs, 2)
	assert.Equal(t, 1, analysis.Hubs[0].Connections)
	assert.Equal(t, 1, analysis.TotalRelationships)

	// single type: mean 0.9 plus bonus min(1/10, 0.15) = 0.1, clamped
	assert.InDelta(t, 1.0, out.Confidence, 1e-9)
}

func TestRelationshipAgentZeroConfidenceStillGetsDiversityBonus(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Relationships: []ai.ExtractedRelationship{
				{Source: "Ada Lovelace", Target: "Analytical Engine", Type: "uses", Confidence: 0},
			},
		}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), relationshipInput())
	require.NoError(t, err)
	// mean 0 plus bonus min(1/10, 0.15) = 0.1
	assert.InDelta(t, 0.1, out.Confidence, 1e-9)
}

func TestRelationshipAgentEmptySetScoresZero(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{}, nil
	}
	agent, err := NewRelationshipAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), relationshipInput())
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Confidence)
	assert.Equal(t, 0.0, out.Result.Analysis.NetworkDensity)
	assert.Empty(t, out.Result.Relationships)
}

func TestPayloadMerge(t *testing.T) {
	p := Payload{DocumentID: "doc-1", ExtractedText: "text"}

	merged := p.Merge(nil)
	assert.Equal(t, p, merged)

	concepts := []core.ConceptNode{{ID: "concept_x"}}
	merged = p.Merge(&Result{Concepts: concepts})
	assert.Equal(t, concepts, merged.Concepts)
	assert.Nil(t, merged.Entities)
	assert.Equal(t, "doc-1", merged.DocumentID)
}
