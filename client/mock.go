package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/pokespeare/pokespeare"
)

// MockDescriptionClient is a mock description source for testing.
type MockDescriptionClient struct {
	Descriptions map[string]string // Map of creature name to description
	Err          error             // Returned for every call when set
	CallCount    int               // Number of times Fetch was called
	LastName     string            // Last name requested
}

// NewMockDescriptionClient creates a mock with a couple of known creatures.
func NewMockDescriptionClient() *MockDescriptionClient {
	return &MockDescriptionClient{
		Descriptions: map[string]string{
			"pikachu":   "When several of these Pokemon gather, their electricity could build and cause lightning storms.",
			"bulbasaur": "A strange seed was planted on its back at birth.",
		},
	}
}

// Fetch returns the canned description, or ErrNotFound for unknown names.
func (m *MockDescriptionClient) Fetch(ctx context.Context, name string) (string, error) {
	m.CallCount++
	m.LastName = name

	if m.Err != nil {
		return "", m.Err
	}

	description, ok := m.Descriptions[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("species %q: %w", name, pokespeare.ErrNotFound)
	}
	return description, nil
}

// Reset resets the call count and last request.
func (m *MockDescriptionClient) Reset() {
	m.CallCount = 0
	m.LastName = ""
}

// MockTranslationClient is a mock translator for testing.
type MockTranslationClient struct {
	Translations map[string]string // Map of source text to translation
	Err          error             // Returned for every call when set
	CallCount    int               // Number of times Translate was called
	LastText     string            // Last text received
}

// NewMockTranslationClient creates a new mock translator.
func NewMockTranslationClient() *MockTranslationClient {
	return &MockTranslationClient{Translations: map[string]string{}}
}

// Translate returns the canned translation, or the bracketed source text
// for unknown inputs.
func (m *MockTranslationClient) Translate(ctx context.Context, text string) (string, error) {
	m.CallCount++
	m.LastText = text

	if m.Err != nil {
		return "", m.Err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", text), nil
}

// Reset resets the call count and last request.
func (m *MockTranslationClient) Reset() {
	m.CallCount = 0
	m.LastText = ""
}

// Verify the mocks implement the client interfaces
var (
	_ DescriptionClient = (*MockDescriptionClient)(nil)
	_ TranslationClient = (*MockTranslationClient)(nil)
)
