package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
)

type fileValues struct {
	path string
}

// NewFileValuesRepository - stores the value table as a JSON document at the
// given path. encoding/json writes map keys in sorted order, so the file is
// stable and diffable between runs: states lexicographic, actions 0-8.
func NewFileValuesRepository(path string) ValuesRepository {
	return &fileValues{
		path: path,
	}
}

func (that *fileValues) Load(_ context.Context) (agent.Values, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrValuesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}

	values := agent.Values{}
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values file: %w", err)
	}

	return values, nil
}

func (that *fileValues) Save(_ context.Context, values agent.Values) error {
	file, err := os.Create(that.path)
	if err != nil {
		return fmt.Errorf("failed to create values file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(values); err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close values file: %w", err)
	}

	return nil
}
