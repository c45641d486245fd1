package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/lattice/ai"
)

// MockExtractor is a test double for ai.Extractor.
// It allows custom behavior injection via function fields.
type MockExtractor struct {
	// ExtractFunc is called by ExtractStructuredData if set.
	// If nil, a simple word-based extraction is used.
	ExtractFunc func(ctx context.Context, text, taxonomy, domain string) (*ai.ExtractionData, error)

	mu        sync.Mutex
	callCount int
}

// NewMockExtractor creates a mock extractor with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// ExtractStructuredData returns deterministic mock extraction data.
// Default behavior: each line of the text that contains " is " becomes a
// concept named after the words before " is "; capitalized words become
// PERSON entities. This is enough structure for pipeline tests without an
// injected ExtractFunc.
func (m *MockExtractor) ExtractStructuredData(ctx context.Context, text, taxonomy, domain string) (*ai.ExtractionData, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, text, taxonomy, domain)
	}

	data := &ai.ExtractionData{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, _, found := strings.Cut(line, " is "); found {
			data.Concepts = append(data.Concepts, ai.ExtractedConcept{
				Name:       strings.TrimSpace(name),
				Definition: line,
				Confidence: 0.8,
			})
		}
	}
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if len(word) > 1 && word[0] >= 'A' && word[0] <= 'Z' {
			data.Entities = append(data.Entities, ai.ExtractedEntity{
				Name:       word,
				Type:       "person",
				Confidence: 0.7,
			})
		}
	}
	return data, nil
}

// CallCount returns the number of times ExtractStructuredData was called.
func (m *MockExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.ExtractFunc = nil
}
