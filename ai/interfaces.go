package ai

import "context"

// Extractor extracts structured knowledge fragments from text.
// Implementations must be thread-safe for concurrent use.
type Extractor interface {
	// ExtractStructuredData analyzes text and returns the concepts, named
	// entities and relationships it mentions, each with a confidence score
	// in [0,1]. taxonomy is an optional guiding taxonomy; domain is an
	// optional domain label. Both may be empty.
	// Returns empty slices (not an error) when nothing is found.
	ExtractStructuredData(ctx context.Context, text, taxonomy, domain string) (*ExtractionData, error)
}

// Summarizer generates comprehensive summaries of page content.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// GenerateSummary produces a summary that preserves details relevant
	// for later extraction, including informal notes and annotations.
	GenerateSummary(ctx context.Context, text string) (string, error)
}

// Provider aggregates reasoning-backend services for convenient
// initialization and lifecycle management.
type Provider interface {
	// Extractor returns the structured extraction service.
	Extractor() Extractor

	// Summarizer returns the summary service.
	Summarizer() Summarizer

	// Close releases resources held by the provider and its services.
	Close() error
}
