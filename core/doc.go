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


// Package core defines the domain model for knowledge-graph extraction.
//
// The model is split into two layers:
//
//   - Subject-matter fragments: ConceptNode, EntityNode and RelationshipNode,
//     the typed graph fragments produced by extraction agents. Every fragment
//     carries a confidence score in [0,1] and a content-addressed identifier
//     derived from its semantic fields (see ids.go).
//
//   - Structural edges: GraphRelationship, generic typed edges used for
//     cross-cutting links such as EXTRACTED_FROM (fragment -> page) that are
//     not part of the subject-matter ontology.
//
// # Identity
//
// Node and edge identifiers are deterministic slugs built from normalized
// semantic content: two fragments that normalize to the same slug are the
// same fragment for deduplication purposes, regardless of which page
// produced them. Page identifiers use a BLAKE2b content fingerprint instead,
// since page identity is positional rather than semantic.
//
// # Serialization
//
// Stored node types carry hand-written mus-go serializers (serial.go) used
// by the storage layer. Serializers live next to the types they encode so
// the field order stays in one place.
package core
