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

// entityTypeSynonyms folds the type labels reasoning backends actually emit
// onto the canonical vocabulary. Unlisted types pass through uppercased.
var entityTypeSynonyms = map[string]string{
	"person":       "PERSON",
	"people":       "PERSON",
	"individual":   "PERSON",
	"human":        "PERSON",
	"organization": "ORGANIZATION",
	"organisation": "ORGANIZATION",
	"company":      "ORGANIZATION",
	"corporation":  "ORGANIZATION",
	"institution":  "ORGANIZATION",
	"agency":       "ORGANIZATION",
	"location":     "LOCATION",
	"place":        "LOCATION",
	"city":         "LOCATION",
	"country":      "LOCATION",
	"region":       "LOCATION",
	"address":      "LOCATION",
	"date":         "DATE",
	"time":         "DATE",
	"datetime":     "DATE",
	"year":         "DATE",
	"money":        "MONEY",
	"currency":     "MONEY",
	"amount":       "MONEY",
	"price":        "MONEY",
	"cost":         "MONEY",
	"product":      "PRODUCT",
	"service":      "PRODUCT",
	"item":         "PRODUCT",
	"technology":   "TECHNOLOGY",
	"tool":         "TECHNOLOGY",
	"software":     "TECHNOLOGY",
	"system":       "TECHNOLOGY",
	"platform":     "TECHNOLOGY",
}

// NormalizeEntityType maps a backend-reported entity type onto the canonical
// uppercase vocabulary.
func NormalizeEntityType(t string) string {
	key := strings.ToLower(strings.TrimSpace(t))
	if canonical, ok := entityTypeSynonyms[key]; ok {
		return canonical
	}
	if key == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(key)
}

// EntityAgent extracts named entities from page text and normalizes their
// types onto a canonical vocabulary.
type EntityAgent struct {
	extractor ai.Extractor
	logger    *slog.Logger
}

// NewEntityAgent creates an entity extraction agent backed by the given
// extractor.
func NewEntityAgent(extractor ai.Extractor) (*EntityAgent, error) {
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	return &EntityAgent{
		extractor: extractor,
		logger:    slog.Default().With("component", "entity-agent"),
	}, nil
}

func (a *EntityAgent) Name() string { return "EntityExtraction" }

func (a *EntityAgent) Description() string {
	return "extracts named entities with normalized types and descriptive attributes"
}

// Execute extracts entities from the input page. Confidence is the fragment
// mean plus a diversity bonus of min(uniqueTypes/5, 0.20), rewarding varied
// extractions over numerous same-type ones.
func (a *EntityAgent) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := validateInput(a.Name(), input); err != nil {
		return nil, err
	}
	start := time.Now()

	data, err := a.extractor.ExtractStructuredData(ctx, input.Data.ExtractedText, input.Data.Taxonomy, input.Data.Domain)
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}

	now := time.Now().UTC()
	entities := make([]core.EntityNode, 0, len(data.Entities))
	confs := make([]float64, 0, len(data.Entities))
	types := make(map[string]int)
	high := 0
	for _, e := range data.Entities {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		etype := NormalizeEntityType(e.Type)
		conf := core.ClampConfidence(e.Confidence)
		if conf > highConfidence {
			high++
		}
		types[etype]++
		entities = append(entities, core.EntityNode{
			ID:     core.EntityID(e.Name, etype),
			Labels: []string{core.LabelEntity},
			Properties: core.EntityProperties{
				Name:        e.Name,
				Type:        etype,
				Description: entityDescription(e.Name, e.Attributes),
				Confidence:  conf,
				Attributes:  e.Attributes,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		confs = append(confs, conf)
	}

	confidence := meanConfidence(confs)
	if len(entities) > 0 {
		bonus := float64(len(types)) / 5
		if bonus > 0.20 {
			bonus = 0.20
		}
		confidence = core.ClampConfidence(confidence + bonus)
	}

	a.logger.Debug("extracted entities",
		"workflow_id", input.WorkflowID,
		"page", input.Data.PageNumber,
		"count", len(entities),
		"types", len(types))

	return &Output{
		Result: &Result{
			Entities:    entities,
			EntityTypes: types,
			Meta: ResultMeta{
				DocumentID:             input.Data.DocumentID,
				PageNumber:             input.Data.PageNumber,
				TotalEntities:          len(entities),
				HighConfidenceEntities: high,
			},
		},
		Confidence: confidence,
		Meta: OutputMeta{
			ProcessingTime: time.Since(start),
			FragmentCount:  len(entities),
			UniqueTypes:    len(types),
		},
		Citations: []Citation{{Source: input.Data.DocumentID, Page: input.Data.PageNumber}},
	}, nil
}

// entityDescription builds a short human-readable description from the
// title, role, and description attributes: "name (title) - role - description",
// omitting absent parts.
func entityDescription(name string, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString(name)
	if title := attrs["title"]; title != "" {
		b.WriteString(" (")
		b.WriteString(title)
		b.WriteString(")")
	}
	if role := attrs["role"]; role != "" {
		b.WriteString(" - ")
		b.WriteString(role)
	}
	if desc := attrs["description"]; desc != "" {
		b.WriteString(" - ")
		b.WriteString(desc)
	}
	return b.String()
}
