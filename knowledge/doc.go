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


// Package knowledge assembles document-level knowledge graphs from
// per-page agent extractions.
//
// The Constructor fans out across a document's pages, running the concept
// and entity agents as a sequential workflow per page and then invoking the
// relationship agent against that page's fragments. Page results are
// accumulated, cross-page duplicates are merged keeping the most confident
// instance, and every fragment occurrence is tied back to its source page
// with an EXTRACTED_FROM correlation edge.
//
// Correlation edges are deliberately never deduplicated: the same concept
// appearing on three pages yields one concept node and three correlation
// edges.
//
// SaveKnowledge persists a result through storage.GraphRepository;
// extraction and persistence are separate steps so callers can inspect or
// discard a result without touching storage.
package knowledge
