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
	"time"

	"github.com/poiesic/lattice/core"
)

// Agent is the unit of work the workflow orchestrator schedules. An agent
// receives page content plus whatever earlier agents produced and returns
// one category of graph fragment.
type Agent interface {
	// Name identifies the agent in execution traces.
	Name() string

	// Description summarizes what the agent extracts.
	Description() string

	// Execute runs a single extraction over the input page.
	Execute(ctx context.Context, input Input) (*Output, error)
}

// Payload is the page-level content an agent works from. Concepts and
// Entities carry fragments produced by earlier agents in the same workflow
// so later agents can resolve references against them.
type Payload struct {
	DocumentID    string
	PageID        string
	PageNumber    int
	ExtractedText string
	Summary       string
	Domain        string
	Taxonomy      string
	Concepts      []core.ConceptNode
	Entities      []core.EntityNode
}

// Merge returns a copy of the payload with fragment fields overlaid from an
// earlier agent's result. Fields the result does not carry are left as-is.
func (p Payload) Merge(r *Result) Payload {
	if r == nil {
		return p
	}
	if r.Concepts != nil {
		p.Concepts = r.Concepts
	}
	if r.Entities != nil {
		p.Entities = r.Entities
	}
	return p
}

// Input is what an agent executes against.
type Input struct {
	Data       Payload
	Context    []Output
	WorkflowID string
}

// Citation records where an agent's fragments came from.
type Citation struct {
	Source string
	Page   int
}

// TypeCount is one bucket of a relationship type distribution.
type TypeCount struct {
	Type  string
	Count int
}

// Hub is a highly connected node in the extracted relationship network.
type Hub struct {
	NodeID      string
	Connections int
}

// RelationshipAnalysis summarizes the structure of the relationships a
// single execution produced.
type RelationshipAnalysis struct {
	TypeDistribution   []TypeCount
	NetworkDensity     float64
	Hubs               []Hub
	TotalRelationships int
}

// ResultMeta carries per-execution fragment counts.
type ResultMeta struct {
	DocumentID                  string
	PageNumber                  int
	TotalConcepts               int
	HighConfidenceConcepts      int
	TotalEntities               int
	HighConfidenceEntities      int
	TotalRelationships          int
	InvalidRelationships        int
	HighConfidenceRelationships int
}

// Result is the structured product of one agent execution. Only the fields
// relevant to the producing agent are populated.
type Result struct {
	Concepts      []core.ConceptNode
	Entities      []core.EntityNode
	EntityTypes   map[string]int
	Relationships []core.RelationshipNode
	Analysis      *RelationshipAnalysis
	Meta          ResultMeta
}

// OutputMeta describes how an execution went.
type OutputMeta struct {
	ProcessingTime time.Duration
	FragmentCount  int
	UniqueTypes    int
	Error          string
}

// Output is what Execute returns on success. Confidence is the agent's
// aggregate score over its fragments, clamped to [0,1].
type Output struct {
	Result     *Result
	Confidence float64
	Meta       OutputMeta
	Citations  []Citation
}

// highConfidence is the threshold above which a fragment counts toward the
// high-confidence tallies in ResultMeta.
const highConfidence = 0.8

func validateInput(agent string, in Input) error {
	if in.WorkflowID == "" {
		return fmt.Errorf("%w: %s requires a workflow id", ErrInvalidInput, agent)
	}
	if in.Data.ExtractedText == "" {
		return fmt.Errorf("%w: %s requires page text", ErrInvalidInput, agent)
	}
	return nil
}

// meanConfidence averages fragment confidences, clamped to [0,1]. An empty
// set scores 0.
func meanConfidence(confs []float64) float64 {
	if len(confs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range confs {
		sum += c
	}
	return core.ClampConfidence(sum / float64(len(confs)))
}
