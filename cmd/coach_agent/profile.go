package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daniel/program-coach/internal/types"
)

// loadProfileFile reads an intake profile from a JSON file.
func loadProfileFile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	return &profile, nil
}
