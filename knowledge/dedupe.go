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
	"strings"

	"github.com/poiesic/lattice/core"
)

// dedupe collapses duplicates by key, keeping the first-seen position. A
// later duplicate replaces the kept instance only when its confidence is
// strictly greater.
func dedupe[T any](in []T, key func(T) string, confidence func(T) float64) []T {
	index := make(map[string]int, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		k := key(v)
		if i, ok := index[k]; ok {
			if confidence(v) > confidence(out[i]) {
				out[i] = v
			}
			continue
		}
		index[k] = len(out)
		out = append(out, v)
	}
	return out
}

func dedupeConcepts(in []core.ConceptNode) []core.ConceptNode {
	return dedupe(in,
		func(c core.ConceptNode) string { return strings.ToLower(c.Properties.Name) },
		func(c core.ConceptNode) float64 { return c.Properties.Confidence })
}

func dedupeEntities(in []core.EntityNode) []core.EntityNode {
	return dedupe(in,
		func(e core.EntityNode) string {
			return strings.ToLower(e.Properties.Name) + "|" + e.Properties.Type
		},
		func(e core.EntityNode) float64 { return e.Properties.Confidence })
}

func dedupeRelationships(in []core.RelationshipNode) []core.RelationshipNode {
	return dedupe(in,
		func(r core.RelationshipNode) string {
			return r.Properties.SourceEntityID + "|" + r.Properties.Type + "|" + r.Properties.TargetEntityID
		},
		func(r core.RelationshipNode) float64 { return r.Properties.Confidence })
}
