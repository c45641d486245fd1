package mock

import "github.com/poiesic/lattice/ai"

// MockProvider is a test double for ai.Provider bundling mock services.
type MockProvider struct {
	extractor  *MockExtractor
	summarizer *MockSummarizer
}

// NewMockProvider creates a provider backed by mock services.
//
// Returns ai.Provider since it is the primary entry point; use
// GetMockExtractor/GetMockSummarizer to access the concrete types for
// assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		extractor:  NewMockExtractor(),
		summarizer: NewMockSummarizer(),
	}
}

// Extractor returns the mock extraction service.
func (p *MockProvider) Extractor() ai.Extractor {
	return p.extractor
}

// Summarizer returns the mock summary service.
func (p *MockProvider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// GetMockExtractor returns the concrete mock extractor for assertions.
func (p *MockProvider) GetMockExtractor() *MockExtractor {
	return p.extractor
}

// GetMockSummarizer returns the concrete mock summarizer for assertions.
func (p *MockProvider) GetMockSummarizer() *MockSummarizer {
	return p.summarizer
}

// Close resets the mock services.
func (p *MockProvider) Close() error {
	p.extractor.Reset()
	p.summarizer.Reset()
	return nil
}
