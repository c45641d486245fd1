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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/poiesic/lattice/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Extractor implements ai.Extractor using OpenAI-compatible chat APIs.
type Extractor struct {
	client        llms.Model
	minConfidence float64
	logger        *slog.Logger
}

// Wire types matching the structure expected from the LLM.
type extractedConcept struct {
	Name       string  `json:"name"`
	Definition string  `json:"definition,omitempty"`
	Confidence float64 `json:"confidence"`
}

type extractedEntity struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Confidence float64           `json:"confidence"`
}

type extractedRelationship struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Confidence  float64 `json:"confidence"`
}

type extraction struct {
	Concepts      []extractedConcept      `json:"concepts"`
	Entities      []extractedEntity       `json:"entities"`
	Relationships []extractedRelationship `json:"relationships"`
}

// newExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newExtractor(config *ai.Config) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		client:        client,
		minConfidence: config.MinConfidence,
		logger:        slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewExtractor creates a new structured extractor using the provided
// configuration.
//
// Returns ai.Extractor interface to enforce abstraction.
func NewExtractor(config *ai.Config) (ai.Extractor, error) {
	return newExtractor(config)
}

// ExtractStructuredData extracts concepts, entities and relationships from
// text using an LLM, filtering items below the configured confidence
// threshold.
func (e *Extractor) ExtractStructuredData(ctx context.Context, text, taxonomy, domain string) (*ai.ExtractionData, error) {
	systemPrompt := buildExtractionPrompt(taxonomy, domain)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result extraction
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.1), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return &ai.ExtractionData{}, nil
		}

		responseText := repairJSON(stripFences(response.Choices[0].Content))

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extraction response after retries", "err", lastErr)
		return nil, lastErr
	}

	data := &ai.ExtractionData{
		Concepts:      make([]ai.ExtractedConcept, 0, len(result.Concepts)),
		Entities:      make([]ai.ExtractedEntity, 0, len(result.Entities)),
		Relationships: make([]ai.ExtractedRelationship, 0, len(result.Relationships)),
	}
	for _, c := range result.Concepts {
		if c.Confidence < e.minConfidence {
			continue
		}
		data.Concepts = append(data.Concepts, ai.ExtractedConcept{
			Name:       c.Name,
			Definition: c.Definition,
			Confidence: c.Confidence,
		})
	}
	for _, ent := range result.Entities {
		if ent.Confidence < e.minConfidence {
			continue
		}
		data.Entities = append(data.Entities, ai.ExtractedEntity{
			Name:       ent.Name,
			Type:       ent.Type,
			Attributes: ent.Attributes,
			Confidence: ent.Confidence,
		})
	}
	for _, rel := range result.Relationships {
		if rel.Confidence < e.minConfidence {
			continue
		}
		data.Relationships = append(data.Relationships, ai.ExtractedRelationship{
			Source:      rel.Source,
			Target:      rel.Target,
			Type:        rel.Type,
			Description: rel.Description,
			Confidence:  rel.Confidence,
		})
	}

	e.logger.Debug("extracted structured data",
		"concepts", len(data.Concepts),
		"entities", len(data.Entities),
		"relationships", len(data.Relationships))

	return data, nil
}
