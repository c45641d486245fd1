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
	"errors"
	"testing"
)

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := ClampConfidence(tt.in); got != tt.want {
			t.Errorf("ClampConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidConfidence(t *testing.T) {
	if !IsValidConfidence(0) || !IsValidConfidence(1) || !IsValidConfidence(0.5) {
		t.Error("in-range confidences should be valid")
	}
	if IsValidConfidence(-0.01) || IsValidConfidence(1.01) {
		t.Error("out-of-range confidences should be invalid")
	}
}

func validConcept() *ConceptNode {
	return &ConceptNode{
		ID:         ConceptID("Pipeline"),
		Labels:     []string{LabelConcept},
		Properties: ConceptProperties{Name: "Pipeline", Confidence: 0.8},
	}
}

func TestValidateConceptNode(t *testing.T) {
	if err := ValidateConceptNode(validConcept()); err != nil {
		t.Fatalf("valid concept rejected: %v", err)
	}

	if err := ValidateConceptNode(nil); !errors.Is(err, ErrInvalidConcept) {
		t.Errorf("nil node: got %v", err)
	}

	node := validConcept()
	node.ID = ""
	if err := ValidateConceptNode(node); !errors.Is(err, ErrEmptyID) {
		t.Errorf("empty id: got %v", err)
	}

	node = validConcept()
	node.Properties.Name = ""
	if err := ValidateConceptNode(node); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: got %v", err)
	}

	node = validConcept()
	node.Properties.Confidence = 1.2
	if err := ValidateConceptNode(node); !errors.Is(err, ErrConfidenceRange) {
		t.Errorf("confidence out of range: got %v", err)
	}
}

func TestValidateEntityNode(t *testing.T) {
	node := &EntityNode{
		ID:         EntityID("Acme", "ORGANIZATION"),
		Labels:     []string{LabelEntity},
		Properties: EntityProperties{Name: "Acme", Type: "ORGANIZATION", Confidence: 0.9},
	}
	if err := ValidateEntityNode(node); err != nil {
		t.Fatalf("valid entity rejected: %v", err)
	}

	node.Properties.Type = ""
	if err := ValidateEntityNode(node); !errors.Is(err, ErrEmptyType) {
		t.Errorf("empty type: got %v", err)
	}
}

func TestValidateRelationshipNode(t *testing.T) {
	node := &RelationshipNode{
		ID:     RelationshipID("entity_organization_acme", "USES", "concept_pipeline"),
		Labels: []string{LabelRelationship},
		Properties: RelationshipProperties{
			Type:           "USES",
			SourceEntityID: "entity_organization_acme",
			TargetEntityID: "concept_pipeline",
			Confidence:     0.8,
		},
	}
	if err := ValidateRelationshipNode(node); err != nil {
		t.Fatalf("valid relationship rejected: %v", err)
	}

	node.Properties.TargetEntityID = ""
	if err := ValidateRelationshipNode(node); !errors.Is(err, ErrUnresolvedEndpoint) {
		t.Errorf("unresolved endpoint: got %v", err)
	}
}

func TestValidateCorrelation(t *testing.T) {
	edge := &GraphRelationship{
		ID:          CorrelationID("concept_pipeline", "page_abc"),
		Type:        RelTypeExtractedFrom,
		StartNodeID: "concept_pipeline",
		EndNodeID:   "page_abc",
		Properties:  CorrelationProperties{ExtractionConfidence: 0.8},
	}
	if err := ValidateCorrelation(edge); err != nil {
		t.Fatalf("valid correlation rejected: %v", err)
	}

	edge.EndNodeID = ""
	if err := ValidateCorrelation(edge); !errors.Is(err, ErrUnresolvedEndpoint) {
		t.Errorf("unresolved endpoint: got %v", err)
	}

	edge.EndNodeID = "page_abc"
	edge.Properties.ExtractionConfidence = -0.1
	if err := ValidateCorrelation(edge); !errors.Is(err, ErrConfidenceRange) {
		t.Errorf("confidence out of range: got %v", err)
	}
}
