package core

import "time"

// Node labels applied to subject-matter fragments.
const (
	LabelConcept      = "Concept"
	LabelEntity       = "Entity"
	LabelRelationship = "Relationship"
)

// RelTypeExtractedFrom is the correlation edge type linking a fragment to
// the page it was extracted from.
const RelTypeExtractedFrom = "EXTRACTED_FROM"

// ConceptProperties holds the typed payload of a ConceptNode.
type ConceptProperties struct {
	Name       string
	Definition string
	Domain     string
	Confidence float64
	// TaxonomyMapped reports whether the concept name appears in the
	// guiding taxonomy supplied for the extraction pass.
	TaxonomyMapped bool
	// Taxonomy is the taxonomy line mentioning the concept, if any.
	Taxonomy string
}

// ConceptNode is a concept fragment extracted from page content.
type ConceptNode struct {
	ID         string
	Labels     []string
	Properties ConceptProperties
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EntityProperties holds the typed payload of an EntityNode.
type EntityProperties struct {
	Name        string
	Type        string
	Description string
	Confidence  float64
	Attributes  map[string]string
}

// EntityNode is a named-entity fragment extracted from page content.
type EntityNode struct {
	ID         string
	Labels     []string
	Properties EntityProperties
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RelationshipProperties holds the typed payload of a RelationshipNode.
// SourceEntityID and TargetEntityID must resolve to the id of a ConceptNode
// or EntityNode produced earlier in the same extraction pass; a relationship
// whose endpoints do not resolve is invalid and dropped.
type RelationshipProperties struct {
	Type           string
	Description    string
	Confidence     float64
	SourceEntityID string
	TargetEntityID string
}

// RelationshipNode is a typed relationship between two fragments.
type RelationshipNode struct {
	ID         string
	Labels     []string
	Properties RelationshipProperties
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CorrelationProperties holds the payload of a structural edge.
type CorrelationProperties struct {
	ExtractionConfidence float64
	CreatedAt            time.Time
}

// GraphRelationship is a generic typed edge used for cross-cutting links
// (e.g. EXTRACTED_FROM) that are not part of the subject-matter ontology.
type GraphRelationship struct {
	ID          string
	Type        string
	StartNodeID string
	EndNodeID   string
	Properties  CorrelationProperties
}

// Page is one rendered document page as delivered by the upstream ingestion
// layer. Pages belong to a single document and arrive as a finite ordered
// sequence.
type Page struct {
	PageID        string
	PageNumber    int
	ExtractedText string
	Summary       string
}
