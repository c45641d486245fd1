package ai

// ExtractedConcept is a concept identified in text, before normalization
// into a graph fragment.
type ExtractedConcept struct {
	// Name is the concept name as stated in the source text.
	Name string

	// Definition is an optional definition or description.
	Definition string

	// Confidence is the model's confidence in [0,1], based on how clearly
	// the concept is defined in the text.
	Confidence float64
}

// ExtractedEntity is a named entity identified in text.
type ExtractedEntity struct {
	// Name is the entity name, exact text from the source.
	Name string

	// Type is the raw entity type as reported by the model (e.g. "person",
	// "company"); normalization happens in the entity agent.
	Type string

	// Attributes carries optional attributes such as title, role or
	// description.
	Attributes map[string]string

	// Confidence is the model's confidence in [0,1].
	Confidence float64
}

// ExtractedRelationship is a relationship between two previously named
// items, identified in text.
type ExtractedRelationship struct {
	// Source and Target are item names; they must match an extracted
	// concept or entity to be usable.
	Source string
	Target string

	// Type is the raw relationship phrase (e.g. "belongs to").
	Type string

	// Description is an optional human-readable description.
	Description string

	// Confidence is the model's confidence in [0,1].
	Confidence float64
}

// ExtractionData is the structured response of one extraction call.
type ExtractionData struct {
	Concepts      []ExtractedConcept
	Entities      []ExtractedEntity
	Relationships []ExtractedRelationship
}
