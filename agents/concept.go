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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/core"
)

// ConceptAgent extracts domain concepts and their definitions from page
// text, mapping each against the caller-supplied taxonomy when one is
// present.
type ConceptAgent struct {
	extractor ai.Extractor
	logger    *slog.Logger
}

// NewConceptAgent creates a concept extraction agent backed by the given
// extractor.
func NewConceptAgent(extractor ai.Extractor) (*ConceptAgent, error) {
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	return &ConceptAgent{
		extractor: extractor,
		logger:    slog.Default().With("component", "concept-agent"),
	}, nil
}

func (a *ConceptAgent) Name() string { return "ConceptExtraction" }

func (a *ConceptAgent) Description() string {
	return "extracts domain concepts and definitions, mapped against the active taxonomy"
}

// Execute extracts concepts from the input page. Fragment ids are derived
// from the concept name, so the same concept on different pages converges
// to one node.
func (a *ConceptAgent) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := validateInput(a.Name(), input); err != nil {
		return nil, err
	}
	start := time.Now()

	data, err := a.extractor.ExtractStructuredData(ctx, input.Data.ExtractedText, input.Data.Taxonomy, input.Data.Domain)
	if err != nil {
		return nil, fmt.Errorf("concept extraction failed: %w", err)
	}

	now := time.Now().UTC()
	concepts := make([]core.ConceptNode, 0, len(data.Concepts))
	confs := make([]float64, 0, len(data.Concepts))
	high := 0
	for _, c := range data.Concepts {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		conf := core.ClampConfidence(c.Confidence)
		if conf > highConfidence {
			high++
		}
		concepts = append(concepts, core.ConceptNode{
			ID:     core.ConceptID(c.Name),
			Labels: []string{core.LabelConcept},
			Properties: core.ConceptProperties{
				Name:           c.Name,
				Definition:     c.Definition,
				Domain:         input.Data.Domain,
				Confidence:     conf,
				TaxonomyMapped: inTaxonomy(c.Name, input.Data.Taxonomy),
				Taxonomy:       taxonomyLine(c.Name, input.Data.Taxonomy),
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		confs = append(confs, conf)
	}

	a.logger.Debug("extracted concepts",
		"workflow_id", input.WorkflowID,
		"page", input.Data.PageNumber,
		"count", len(concepts))

	return &Output{
		Result: &Result{
			Concepts: concepts,
			Meta: ResultMeta{
				DocumentID:             input.Data.DocumentID,
				PageNumber:             input.Data.PageNumber,
				TotalConcepts:          len(concepts),
				HighConfidenceConcepts: high,
			},
		},
		Confidence: meanConfidence(confs),
		Meta: OutputMeta{
			ProcessingTime: time.Since(start),
			FragmentCount:  len(concepts),
		},
		Citations: []Citation{{Source: input.Data.DocumentID, Page: input.Data.PageNumber}},
	}, nil
}

// inTaxonomy reports whether the concept name appears anywhere in the
// taxonomy text, case-insensitively.
func inTaxonomy(name, taxonomy string) bool {
	if taxonomy == "" || name == "" {
		return false
	}
	return strings.Contains(strings.ToLower(taxonomy), strings.ToLower(name))
}

// taxonomyLine returns the first taxonomy line mentioning the concept,
// trimmed, or "" when the concept is unmapped.
func taxonomyLine(name, taxonomy string) string {
	if taxonomy == "" || name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, line := range strings.Split(taxonomy, "\n") {
		if strings.Contains(strings.ToLower(line), lower) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
