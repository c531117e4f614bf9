package llm

import "context"

// MockGenerator is a canned-response Generator for tests.
type MockGenerator struct {
	Reply string
	Err   error
}

func NewMockGenerator(reply string) *MockGenerator {
	return &MockGenerator{Reply: reply}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
