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

import "errors"

// Domain validation errors
var (
	// ErrInvalidConcept indicates a ConceptNode failed validation.
	ErrInvalidConcept = errors.New("invalid concept node")

	// ErrInvalidEntity indicates an EntityNode failed validation.
	ErrInvalidEntity = errors.New("invalid entity node")

	// ErrInvalidRelationship indicates a RelationshipNode failed validation.
	ErrInvalidRelationship = errors.New("invalid relationship node")

	// ErrInvalidCorrelation indicates a GraphRelationship failed validation.
	ErrInvalidCorrelation = errors.New("invalid correlation edge")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyType indicates the Type field is empty.
	ErrEmptyType = errors.New("type cannot be empty")

	// ErrConfidenceRange indicates a confidence outside [0,1].
	ErrConfidenceRange = errors.New("confidence must be in [0,1]")

	// ErrUnresolvedEndpoint indicates a relationship endpoint id is empty.
	ErrUnresolvedEndpoint = errors.New("relationship endpoint does not resolve")
)
