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


package core

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Slug normalizes a semantic string into an identifier fragment: lower-cased,
// whitespace runs collapsed to "_", every other character outside [a-z0-9_]
// removed. Fragments are content-addressed by slug, so two names that
// normalize identically are the same fragment.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
			inSpace = false
		default:
			inSpace = false
		}
	}
	return b.String()
}

// ConceptID derives the identifier of a concept fragment from its name.
func ConceptID(name string) string {
	return "concept_" + Slug(name)
}

// EntityID derives the identifier of an entity fragment from its normalized
// type and name.
func EntityID(name, entityType string) string {
	return "entity_" + Slug(entityType) + "_" + Slug(name)
}

// RelationshipID derives the identifier of a relationship fragment from its
// source name, type and target name.
func RelationshipID(source, relType, target string) string {
	return "rel_" + Slug(source) + "_" + Slug(relType) + "_" + Slug(target)
}

// CorrelationID derives the identifier of a structural edge from the
// fragment and page it connects. Correlation edges are per-occurrence, so
// the page id participates in the identity.
func CorrelationID(fragmentID, pageID string) string {
	return "correlation_" + fragmentID + "_" + pageID
}

// Fingerprint returns a short BLAKE2b content fingerprint, hex encoded.
// Used where identity is positional rather than semantic, e.g. page ids.
func Fingerprint(text string) string {
	h, _ := blake2b.New(8, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// PageID derives a stable page identifier from the owning document and the
// page number.
func PageID(documentID string, pageNumber int) string {
	return "page_" + Fingerprint(fmt.Sprintf("%s:%d", documentID, pageNumber))
}
