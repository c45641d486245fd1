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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/ai/mock"
)

func TestNormalizeEntityType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"person", "PERSON"},
		{"Individual", "PERSON"},
		{"company", "ORGANIZATION"},
		{" Agency ", "ORGANIZATION"},
		{"city", "LOCATION"},
		{"currency", "MONEY"},
		{"software", "TECHNOLOGY"},
		{"gadget", "GADGET"},
		{"", "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := NormalizeEntityType(tt.in); got != tt.want {
			t.Errorf("NormalizeEntityType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntityAgentExecute(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Entities: []ai.ExtractedEntity{
				{Name: "Ada Lovelace", Type: "person", Confidence: 0.7,
					Attributes: map[string]string{"role": "mathematician"}},
				{Name: "Analytical Engine", Type: "technology", Confidence: 0.7},
			},
		}, nil
	}
	agent, err := NewEntityAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	require.Len(t, out.Result.Entities, 2)

	ada := out.Result.Entities[0]
	assert.Equal(t, "entity_person_ada_lovelace", ada.ID)
	assert.Equal(t, "PERSON", ada.Properties.Type)
	assert.Equal(t, "Ada Lovelace - mathematician", ada.Properties.Description)

	assert.Equal(t, map[string]int{"PERSON": 1, "TECHNOLOGY": 1}, out.Result.EntityTypes)
	assert.Equal(t, 2, out.Meta.UniqueTypes)

	// mean 0.7 plus diversity bonus min(2/5, 0.20) = 0.20
	assert.InDelta(t, 0.9, out.Confidence, 1e-9)
}

func TestEntityAgentBonusIsCapped(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Entities: []ai.ExtractedEntity{
				{Name: "a", Type: "person", Confidence: 0.5},
				{Name: "b", Type: "company", Confidence: 0.5},
				{Name: "c", Type: "city", Confidence: 0.5},
				{Name: "d", Type: "date", Confidence: 0.5},
				{Name: "e", Type: "money", Confidence: 0.5},
				{Name: "f", Type: "software", Confidence: 0.5},
			},
		}, nil
	}
	agent, err := NewEntityAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	// six distinct types, bonus still capped at 0.20
	assert.InDelta(t, 0.7, out.Confidence, 1e-9)
}

func TestEntityAgentEmptyExtractionScoresZero(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{}, nil
	}
	agent, err := NewEntityAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Confidence)
	assert.Empty(t, out.Result.Entities)
}

func TestEntityAgentZeroConfidenceStillGetsDiversityBonus(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Entities: []ai.ExtractedEntity{
				{Name: "a", Type: "person", Confidence: 0},
				{Name: "b", Type: "company", Confidence: 0},
			},
		}, nil
	}
	agent, err := NewEntityAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	// mean 0 plus diversity bonus min(2/5, 0.20) = 0.20
	assert.InDelta(t, 0.2, out.Confidence, 1e-9)
}

func TestEntityDescription(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  string
	}{
		{"Jane Doe",
			map[string]string{"title": "Dr.", "role": "CTO", "description": "chief technologist"},
			"Jane Doe (Dr.) - CTO - chief technologist"},
		{"Acme", map[string]string{"role": "supplier"}, "Acme - supplier"},
		{"Acme", map[string]string{"sector": "retail"}, "Acme"},
		{"Acme", nil, "Acme"},
	}
	for _, tt := range tests {
		if got := entityDescription(tt.name, tt.attrs); got != tt.want {
			t.Errorf("entityDescription(%q, %v) = %q, want %q", tt.name, tt.attrs, got, tt.want)
		}
	}
}
