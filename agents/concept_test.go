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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/ai/mock"
)

func conceptInput(text string) Input {
	return Input{
		Data: Payload{
			DocumentID:    "doc-1",
			PageID:        "doc-1_page_1",
			PageNumber:    1,
			ExtractedText: text,
			Domain:        "technology",
			Taxonomy:      "AI > Machine Learning\nAI > Computer Vision",
		},
		WorkflowID: "wf-1",
	}
}

func TestNewConceptAgentNilExtractor(t *testing.T) {
	_, err := NewConceptAgent(nil)
	require.ErrorIs(t, err, ErrNilExtractor)
}

func TestConceptAgentExecute(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Concepts: []ai.ExtractedConcept{
				{Name: "Machine Learning", Definition: "Learning from data", Confidence: 0.9},
				{Name: "Quantum Tunneling", Definition: "A physical effect", Confidence: 0.7},
			},
		}, nil
	}
	agent, err := NewConceptAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	require.Len(t, out.Result.Concepts, 2)

	ml := out.Result.Concepts[0]
	assert.Equal(t, "concept_machine_learning", ml.ID)
	assert.Equal(t, "technology", ml.Properties.Domain)
	assert.True(t, ml.Properties.TaxonomyMapped)
	assert.Equal(t, "AI > Machine Learning", ml.Properties.Taxonomy)

	qt := out.Result.Concepts[1]
	assert.False(t, qt.Properties.TaxonomyMapped)
	assert.Empty(t, qt.Properties.Taxonomy)

	assert.InDelta(t, 0.8, out.Confidence, 1e-9)
	assert.Equal(t, 2, out.Result.Meta.TotalConcepts)
	assert.Equal(t, 1, out.Result.Meta.HighConfidenceConcepts)
	require.Len(t, out.Citations, 1)
	assert.Equal(t, Citation{Source: "doc-1", Page: 1}, out.Citations[0])
}

func TestConceptAgentClampsConfidence(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{
			Concepts: []ai.ExtractedConcept{
				{Name: "Overconfident", Definition: "d", Confidence: 1.7},
				{Name: "Underconfident", Definition: "d", Confidence: -0.3},
			},
		}, nil
	}
	agent, err := NewConceptAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Result.Concepts[0].Properties.Confidence)
	assert.Equal(t, 0.0, out.Result.Concepts[1].Properties.Confidence)
	assert.InDelta(t, 0.5, out.Confidence, 1e-9)
}

func TestConceptAgentEmptyExtraction(t *testing.T) {
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return &ai.ExtractionData{}, nil
	}
	agent, err := NewConceptAgent(extractor)
	require.NoError(t, err)

	out, err := agent.Execute(context.Background(), conceptInput("page text"))
	require.NoError(t, err)
	assert.Empty(t, out.Result.Concepts)
	assert.Equal(t, 0.0, out.Confidence)
}

func TestConceptAgentValidatesInput(t *testing.T) {
	agent, err := NewConceptAgent(mock.NewMockExtractor())
	require.NoError(t, err)

	in := conceptInput("")
	_, err = agent.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = conceptInput("text")
	in.WorkflowID = ""
	_, err = agent.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConceptAgentBackendError(t *testing.T) {
	backendErr := errors.New("backend unavailable")
	extractor := mock.NewMockExtractor()
	extractor.ExtractFunc = func(_ context.Context, _, _, _ string) (*ai.ExtractionData, error) {
		return nil, backendErr
	}
	agent, err := NewConceptAgent(extractor)
	require.NoError(t, err)

	_, err = agent.Execute(context.Background(), conceptInput("page text"))
	assert.ErrorIs(t, err, backendErr)
}
