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
	"sort"
	"strings"
	"time"

	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/core"
)

// relationshipTypeSynonyms folds backend-reported relationship verbs onto
// the canonical vocabulary. Unlisted types pass through uppercased with
// spaces collapsed to underscores.
var relationshipTypeSynonyms = map[string]string{
	"uses":           "USES",
	"use":            "USES",
	"utilizes":       "USES",
	"contains":       "CONTAINS",
	"includes":       "CONTAINS",
	"has":            "HAS",
	"have":           "HAS",
	"owns":           "OWNS",
	"owned by":       "OWNS",
	"manages":        "MANAGES",
	"managed by":     "MANAGES",
	"leads":          "LEADS",
	"led by":         "LEADS",
	"part of":        "PART_OF",
	"belongs to":     "PART_OF",
	"member of":      "PART_OF",
	"relates to":     "RELATES_TO",
	"related to":     "RELATES_TO",
	"connects to":    "CONNECTS_TO",
	"connected to":   "CONNECTS_TO",
	"affects":        "AFFECTS",
	"impacts":        "AFFECTS",
	"influences":     "INFLUENCES",
	"causes":         "CAUSES",
	"caused by":      "CAUSES",
	"depends on":     "DEPENDS_ON",
	"dependent on":   "DEPENDS_ON",
	"requires":       "REQUIRES",
	"required by":    "REQUIRES",
	"works for":      "PART_OF",
	"employed by":    "PART_OF",
	"developed by":   "CAUSES",
	"created by":     "CAUSES",
	"located in":     "PART_OF",
	"based in":       "PART_OF",
	"interacts with": "CONNECTS_TO",
}

// NormalizeRelationshipType maps a backend-reported relationship type onto
// the canonical uppercase vocabulary.
func NormalizeRelationshipType(t string) string {
	key := strings.ToLower(strings.TrimSpace(t))
	if canonical, ok := relationshipTypeSynonyms[key]; ok {
		return canonical
	}
	if key == "" {
		return "RELATES_TO"
	}
	return strings.ToUpper(strings.Join(strings.Fields(key), "_"))
}

// RelationshipAgent extracts typed relationships between fragments earlier
// agents produced, resolving each endpoint against the concepts and
// entities in the payload. Relationships whose endpoints cannot be resolved
// are dropped and counted rather than emitted dangling.
type RelationshipAgent struct {
	extractor ai.Extractor
	logger    *slog.Logger
}

// NewRelationshipAgent creates a relationship extraction agent backed by
// the given extractor.
func NewRelationshipAgent(extractor ai.Extractor) (*RelationshipAgent, error) {
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	return &RelationshipAgent{
		extractor: extractor,
		logger:    slog.Default().With("component", "relationship-agent"),
	}, nil
}

func (a *RelationshipAgent) Name() string { return "RelationshipExtraction" }

func (a *RelationshipAgent) Description() string {
	return "extracts typed relationships between previously extracted concepts and entities"
}

// Execute extracts relationships from the input page. Confidence is the
// fragment mean plus a diversity bonus of min(uniqueTypes/10, 0.15). The
// output also carries a structural analysis of the extracted network.
func (a *RelationshipAgent) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := validateInput(a.Name(), input); err != nil {
		return nil, err
	}
	start := time.Now()

	data, err := a.extractor.ExtractStructuredData(ctx, input.Data.ExtractedText, input.Data.Taxonomy, input.Data.Domain)
	if err != nil {
		return nil, fmt.Errorf("relationship extraction failed: %w", err)
	}

	resolve := endpointIndex(input.Data)
	now := time.Now().UTC()
	rels := make([]core.RelationshipNode, 0, len(data.Relationships))
	confs := make([]float64, 0, len(data.Relationships))
	types := make(map[string]int)
	invalid := 0
	high := 0
	for _, r := range data.Relationships {
		srcID, srcOK := resolve[strings.ToLower(strings.TrimSpace(r.Source))]
		tgtID, tgtOK := resolve[strings.ToLower(strings.TrimSpace(r.Target))]
		if !srcOK || !tgtOK {
			invalid++
			a.logger.Debug("dropping unresolvable relationship",
				"source", r.Source, "target", r.Target, "type", r.Type)
			continue
		}
		rtype := NormalizeRelationshipType(r.Type)
		conf := core.ClampConfidence(r.Confidence)
		if conf > highConfidence {
			high++
		}
		types[rtype]++
		desc := r.Description
		if desc == "" {
			desc = fmt.Sprintf("%s %s %s", r.Source, strings.ToLower(rtype), r.Target)
		}
		rels = append(rels, core.RelationshipNode{
			ID:     core.RelationshipID(srcID, rtype, tgtID),
			Labels: []string{core.LabelRelationship},
			Properties: core.RelationshipProperties{
				Type:           rtype,
				Description:    desc,
				Confidence:     conf,
				SourceEntityID: srcID,
				TargetEntityID: tgtID,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		confs = append(confs, conf)
	}

	confidence := meanConfidence(confs)
	if len(rels) > 0 {
		bonus := float64(len(types)) / 10
		if bonus > 0.15 {
			bonus = 0.15
		}
		confidence = core.ClampConfidence(confidence + bonus)
	}

	a.logger.Debug("extracted relationships",
		"workflow_id", input.WorkflowID,
		"page", input.Data.PageNumber,
		"count", len(rels),
		"invalid", invalid)

	return &Output{
		Result: &Result{
			Relationships: rels,
			Analysis:      analyzeNetwork(rels, types),
			Meta: ResultMeta{
				DocumentID:                  input.Data.DocumentID,
				PageNumber:                  input.Data.PageNumber,
				TotalRelationships:          len(rels),
				InvalidRelationships:        invalid,
				HighConfidenceRelationships: high,
			},
		},
		Confidence: confidence,
		Meta: OutputMeta{
			ProcessingTime: time.Since(start),
			FragmentCount:  len(rels),
			UniqueTypes:    len(types),
		},
		Citations: []Citation{{Source: input.Data.DocumentID, Page: input.Data.PageNumber}},
	}, nil
}

// endpointIndex maps lowercase fragment names to node ids. Concepts win
// over entities when the same name appears as both; they are scanned first
// and the first occurrence of a name sticks.
func endpointIndex(p Payload) map[string]string {
	idx := make(map[string]string, len(p.Concepts)+len(p.Entities))
	for _, c := range p.Concepts {
		name := strings.ToLower(strings.TrimSpace(c.Properties.Name))
		if _, ok := idx[name]; !ok {
			idx[name] = c.ID
		}
	}
	for _, e := range p.Entities {
		name := strings.ToLower(strings.TrimSpace(e.Properties.Name))
		if _, ok := idx[name]; !ok {
			idx[name] = e.ID
		}
	}
	return idx
}

// analyzeNetwork derives the structural summary of the extracted
// relationship set: type distribution, density and hub nodes.
func analyzeNetwork(rels []core.RelationshipNode, types map[string]int) *RelationshipAnalysis {
	dist := make([]TypeCount, 0, len(types))
	for t, n := range types {
		dist = append(dist, TypeCount{Type: t, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Type < dist[j].Type
	})

	degrees := make(map[string]int)
	for _, r := range rels {
		degrees[r.Properties.SourceEntityID]++
		degrees[r.Properties.TargetEntityID]++
	}

	density := 0.0
	if n := len(degrees); n > 1 {
		density = float64(len(rels)) / float64(n*(n-1))
	}

	hubs := make([]Hub, 0, len(degrees))
	for id, deg := range degrees {
		hubs = append(hubs, Hub{NodeID: id, Connections: deg})
	}
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].Connections != hubs[j].Connections {
			return hubs[i].Connections > hubs[j].Connections
		}
		return hubs[i].NodeID < hubs[j].NodeID
	})
	if len(hubs) > 5 {
		hubs = hubs[:5]
	}

	return &RelationshipAnalysis{
		TypeDistribution:   dist,
		NetworkDensity:     density,
		Hubs:               hubs,
		TotalRelationships: len(rels),
	}
}
