package gateway

import (
	"context"
	"sync"
)

// Memory is an in-process Gateway used by demo mode and tests. Worksheets
// exist only for the life of the process.
type Memory struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

// NewMemory creates a Memory gateway holding a deep copy of seed.
// A nil seed starts with no worksheets at all.
func NewMemory(seed map[string][][]string) *Memory {
	m := &Memory{sheets: make(map[string][][]string, len(seed))}
	for name, values := range seed {
		m.sheets[name] = copyValues(values)
	}
	return m
}

// Create adds an empty worksheet if it does not already exist.
func (m *Memory) Create(worksheet string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[worksheet]; !ok {
		m.sheets[worksheet] = nil
	}
}

// Read returns a copy of the worksheet contents.
func (m *Memory) Read(_ context.Context, worksheet string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values, ok := m.sheets[worksheet]
	if !ok {
		return nil, ErrWorksheetNotFound
	}
	return copyValues(values), nil
}

// Write replaces the worksheet contents. Unlike a real spreadsheet there is
// no auto-create: writing to an unknown worksheet fails the same way a read
// does, so demo mode exercises the missing-worksheet path honestly.
func (m *Memory) Write(_ context.Context, worksheet string, values [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[worksheet]; !ok {
		return ErrWorksheetNotFound
	}
	m.sheets[worksheet] = copyValues(values)
	return nil
}

func copyValues(values [][]string) [][]string {
	if values == nil {
		return nil
	}
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}
