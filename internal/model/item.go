package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Todo is one entry of the list. The JSON shape is what gets persisted
// under the "todos" key.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Date      int64  `json:"date"` // creation time, ms since epoch
}

// NormalizeTitle trims s and collapses every whitespace run to one space.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MaxID returns the largest id in todos, or 0 when there are none.
func MaxID(todos []Todo) int {
	hi := 0
	for _, t := range todos {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi
}

// Encode serializes the whole sequence.
func Encode(todos []Todo) (string, error) {
	if todos == nil {
		todos = []Todo{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses what Encode produced. It always returns a usable
// (possibly empty) slice; the error only reports why the input was dropped.
func Decode(s string) ([]Todo, error) {
	if strings.TrimSpace(s) == "" {
		return []Todo{}, nil
	}
	var todos []Todo
	if err := json.Unmarshal([]byte(s), &todos); err != nil {
		return []Todo{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if todos == nil {
		return []Todo{}, nil
	}
	return todos, nil
}
