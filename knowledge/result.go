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

import "github.com/poiesic/lattice/core"

// ExtractionResult is the assembled knowledge graph of one document.
// Concepts, Entities and Relationships are deduplicated across pages;
// Correlations carry one edge per fragment occurrence and are never
// deduplicated.
type ExtractionResult struct {
	DocumentID    string
	Concepts      []core.ConceptNode
	Entities      []core.EntityNode
	Relationships []core.RelationshipNode
	Correlations  []core.GraphRelationship
	Pages         int
	ExecutionIDs  []string
}

// FragmentCount returns the total number of deduplicated graph fragments.
func (r *ExtractionResult) FragmentCount() int {
	return len(r.Concepts) + len(r.Entities) + len(r.Relationships)
}
