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

import "fmt"

// IsValidConfidence reports whether c lies in [0,1].
func IsValidConfidence(c float64) bool {
	return c >= 0 && c <= 1
}

// ClampConfidence clamps c into [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// ValidateConceptNode validates a ConceptNode according to domain rules.
//
// Validation rules:
//   - ID and Name must not be empty
//   - Confidence must be in [0,1]
func ValidateConceptNode(node *ConceptNode) error {
	if node == nil {
		return fmt.Errorf("%w: node is nil", ErrInvalidConcept)
	}
	if node.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyID)
	}
	if node.Properties.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrEmptyName)
	}
	if !IsValidConfidence(node.Properties.Confidence) {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, ErrConfidenceRange)
	}
	return nil
}

// ValidateEntityNode validates an EntityNode according to domain rules.
//
// Validation rules:
//   - ID, Name and Type must not be empty
//   - Confidence must be in [0,1]
func ValidateEntityNode(node *EntityNode) error {
	if node == nil {
		return fmt.Errorf("%w: node is nil", ErrInvalidEntity)
	}
	if node.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyID)
	}
	if node.Properties.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyName)
	}
	if node.Properties.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyType)
	}
	if !IsValidConfidence(node.Properties.Confidence) {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrConfidenceRange)
	}
	return nil
}

// ValidateRelationshipNode validates a RelationshipNode according to domain
// rules.
//
// Validation rules:
//   - ID and Type must not be empty
//   - Both endpoint ids must be resolved (non-empty)
//   - Confidence must be in [0,1]
func ValidateRelationshipNode(node *RelationshipNode) error {
	if node == nil {
		return fmt.Errorf("%w: node is nil", ErrInvalidRelationship)
	}
	if node.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRelationship, ErrEmptyID)
	}
	if node.Properties.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRelationship, ErrEmptyType)
	}
	if node.Properties.SourceEntityID == "" || node.Properties.TargetEntityID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRelationship, ErrUnresolvedEndpoint)
	}
	if !IsValidConfidence(node.Properties.Confidence) {
		return fmt.Errorf("%w: %w", ErrInvalidRelationship, ErrConfidenceRange)
	}
	return nil
}

// ValidateCorrelation validates a GraphRelationship according to domain
// rules.
func ValidateCorrelation(edge *GraphRelationship) error {
	if edge == nil {
		return fmt.Errorf("%w: edge is nil", ErrInvalidCorrelation)
	}
	if edge.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCorrelation, ErrEmptyID)
	}
	if edge.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCorrelation, ErrEmptyType)
	}
	if edge.StartNodeID == "" || edge.EndNodeID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCorrelation, ErrUnresolvedEndpoint)
	}
	if !IsValidConfidence(edge.Properties.ExtractionConfidence) {
		return fmt.Errorf("%w: %w", ErrInvalidCorrelation, ErrConfidenceRange)
	}
	return nil
}
