package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommand_MissingProfileSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--api-key", "test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --profile or --user-id")
}

func TestGenerateCommand_MutuallyExclusiveSources(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--profile", "profile.json",
		"--user-id", "11111111-2222-3333-4444-555555555555",
		"--api-key", "test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestGenerateCommand_UnknownModelTier(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--profile", "profile.json",
		"--model-tier", "turbo",
		"--api-key", "test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "model_tier")
}

func TestGenerateCommand_UserIDRequiresDatabase(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--user-id", "11111111-2222-3333-4444-555555555555",
		"--api-key", "test-key")
	cmd.Env = []string{} // no DATABASE_URL
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "DATABASE_URL")
}
