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


package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/poiesic/lattice/agents"
	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/core"
	"github.com/poiesic/lattice/storage"
	"github.com/poiesic/lattice/workflow"
)

// Constructor builds a document's knowledge graph by running extraction
// agents over its pages. Safe for concurrent use; owns no cross-document
// state.
type Constructor struct {
	orchestrator      *workflow.Orchestrator
	conceptAgent      agents.Agent
	entityAgent       agents.Agent
	relationshipAgent agents.Agent
	repo              storage.GraphRepository
	logger            *slog.Logger
}

// Request describes one document extraction.
type Request struct {
	DocumentID string
	Pages      []core.Page
	Domain     string
	Taxonomy   string

	// StopOnError aborts the document on the first failing workflow agent
	// instead of recording a degenerate page result and continuing.
	StopOnError bool
}

// Option configures a Constructor.
type Option func(*constructorOptions)

type constructorOptions struct {
	logger                       *slog.Logger
	repo                         storage.GraphRepository
	concept, entity, relationship agents.Agent
}

// WithLogger sets the logger the constructor derives its component logger
// from.
func WithLogger(logger *slog.Logger) Option {
	return func(o *constructorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository sets the graph repository SaveKnowledge writes through.
func WithRepository(repo storage.GraphRepository) Option {
	return func(o *constructorOptions) {
		o.repo = repo
	}
}

// WithAgents replaces the default extraction agents. Intended for tests;
// non-nil values override the agents built from the extractor.
func WithAgents(concept, entity, relationship agents.Agent) Option {
	return func(o *constructorOptions) {
		o.concept = concept
		o.entity = entity
		o.relationship = relationship
	}
}

// NewConstructor creates a constructor whose agents share the given
// reasoning backend. The extractor may be nil only when all agents are
// injected via WithAgents.
func NewConstructor(extractor ai.Extractor, opts ...Option) (*Constructor, error) {
	cfg := constructorOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.concept == nil || cfg.entity == nil || cfg.relationship == nil {
		if extractor == nil {
			return nil, ErrNilExtractor
		}
		var err error
		if cfg.concept == nil {
			if cfg.concept, err = agents.NewConceptAgent(extractor); err != nil {
				return nil, err
			}
		}
		if cfg.entity == nil {
			if cfg.entity, err = agents.NewEntityAgent(extractor); err != nil {
				return nil, err
			}
		}
		if cfg.relationship == nil {
			if cfg.relationship, err = agents.NewRelationshipAgent(extractor); err != nil {
				return nil, err
			}
		}
	}

	orch, err := workflow.NewOrchestrator(workflow.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	orch.RegisterAgent(cfg.concept)
	orch.RegisterAgent(cfg.entity)

	return &Constructor{
		orchestrator:      orch,
		conceptAgent:      cfg.concept,
		entityAgent:       cfg.entity,
		relationshipAgent: cfg.relationship,
		repo:              cfg.repo,
		logger:            cfg.logger.With("component", "knowledge-constructor"),
	}, nil
}

// Close releases the constructor's worker pool.
func (c *Constructor) Close() {
	c.orchestrator.Release()
}

// Orchestrator exposes the underlying orchestrator for execution trace
// queries.
func (c *Constructor) Orchestrator() *workflow.Orchestrator {
	return c.orchestrator
}

// ExtractKnowledge runs the extraction pipeline over every page of the
// request and returns the assembled, deduplicated graph. A failing
// relationship extraction skips that page's relationships with a warning
// rather than failing the document.
func (c *Constructor) ExtractKnowledge(ctx context.Context, req Request) (*ExtractionResult, error) {
	if req.DocumentID == "" {
		return nil, ErrNoDocumentID
	}
	if len(req.Pages) == 0 {
		return nil, ErrNoPages
	}

	pages := make([]core.Page, len(req.Pages))
	copy(pages, req.Pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})

	c.logger.Info("extracting knowledge",
		"document_id", req.DocumentID,
		"pages", len(pages),
		"domain", req.Domain)

	var (
		allConcepts      []core.ConceptNode
		allEntities      []core.EntityNode
		allRelationships []core.RelationshipNode
		correlations     []core.GraphRelationship
		executionIDs     []string
	)

	workflowAgents := []string{c.conceptAgent.Name(), c.entityAgent.Name()}
	for _, page := range pages {
		pageID := page.PageID
		if pageID == "" {
			pageID = core.PageID(req.DocumentID, page.PageNumber)
		}
		payload := agents.Payload{
			DocumentID:    req.DocumentID,
			PageID:        pageID,
			PageNumber:    page.PageNumber,
			ExtractedText: page.ExtractedText,
			Summary:       page.Summary,
			Domain:        req.Domain,
			Taxonomy:      req.Taxonomy,
		}

		exec, outputs, err := c.orchestrator.ExecuteWorkflow(ctx, req.DocumentID, workflowAgents, payload, workflow.Config{
			StopOnError: req.StopOnError,
		})
		if err != nil {
			return nil, fmt.Errorf("page %d extraction failed: %w", page.PageNumber, err)
		}
		executionIDs = append(executionIDs, exec.ID)

		var pageConcepts []core.ConceptNode
		var pageEntities []core.EntityNode
		if outputs[0].Result != nil {
			pageConcepts = outputs[0].Result.Concepts
		}
		if outputs[1].Result != nil {
			pageEntities = outputs[1].Result.Entities
		}
		allConcepts = append(allConcepts, pageConcepts...)
		allEntities = append(allEntities, pageEntities...)

		for _, concept := range pageConcepts {
			correlations = append(correlations, correlationEdge(concept.ID, pageID, concept.Properties.Confidence))
		}
		for _, entity := range pageEntities {
			correlations = append(correlations, correlationEdge(entity.ID, pageID, entity.Properties.Confidence))
		}

		relPayload := payload
		relPayload.Concepts = pageConcepts
		relPayload.Entities = pageEntities
		relOut, err := c.relationshipAgent.Execute(ctx, agents.Input{
			Data:       relPayload,
			WorkflowID: exec.ID,
		})
		if err != nil {
			c.logger.Warn("relationship extraction failed, skipping page relationships",
				"document_id", req.DocumentID,
				"page", page.PageNumber,
				"error", err)
			continue
		}
		if relOut.Result != nil {
			allRelationships = append(allRelationships, relOut.Result.Relationships...)
		}
	}

	result := &ExtractionResult{
		DocumentID:    req.DocumentID,
		Concepts:      dedupeConcepts(allConcepts),
		Entities:      dedupeEntities(allEntities),
		Relationships: dedupeRelationships(allRelationships),
		Correlations:  correlations,
		Pages:         len(pages),
		ExecutionIDs:  executionIDs,
	}

	c.logger.Info("knowledge extracted",
		"document_id", req.DocumentID,
		"concepts", len(result.Concepts),
		"entities", len(result.Entities),
		"relationships", len(result.Relationships),
		"correlations", len(result.Correlations))

	return result, nil
}

// SaveKnowledge persists an extraction result through the configured graph
// repository.
func (c *Constructor) SaveKnowledge(ctx context.Context, result *ExtractionResult) error {
	if c.repo == nil {
		return ErrNoRepository
	}

	concepts := make([]*core.ConceptNode, len(result.Concepts))
	for i := range result.Concepts {
		concepts[i] = &result.Concepts[i]
	}
	if _, err := c.repo.UpsertConcepts(ctx, concepts...); err != nil {
		return fmt.Errorf("saving concepts: %w", err)
	}

	entities := make([]*core.EntityNode, len(result.Entities))
	for i := range result.Entities {
		entities[i] = &result.Entities[i]
	}
	if _, err := c.repo.UpsertEntities(ctx, entities...); err != nil {
		return fmt.Errorf("saving entities: %w", err)
	}

	relationships := make([]*core.RelationshipNode, len(result.Relationships))
	for i := range result.Relationships {
		relationships[i] = &result.Relationships[i]
	}
	if _, err := c.repo.UpsertRelationships(ctx, relationships...); err != nil {
		return fmt.Errorf("saving relationships: %w", err)
	}

	edges := make([]*core.GraphRelationship, len(result.Correlations))
	for i := range result.Correlations {
		edges[i] = &result.Correlations[i]
	}
	if err := c.repo.UpsertCorrelations(ctx, edges...); err != nil {
		return fmt.Errorf("saving correlations: %w", err)
	}

	c.logger.Info("knowledge saved",
		"document_id", result.DocumentID,
		"fragments", result.FragmentCount(),
		"correlations", len(result.Correlations))
	return nil
}

func correlationEdge(fragmentID, pageID string, confidence float64) core.GraphRelationship {
	return core.GraphRelationship{
		ID:          core.CorrelationID(fragmentID, pageID),
		Type:        core.RelTypeExtractedFrom,
		StartNodeID: fragmentID,
		EndNodeID:   pageID,
		Properties: core.CorrelationProperties{
			ExtractionConfidence: confidence,
			CreatedAt:            time.Now().UTC(),
		},
	}
}
