package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordsCommand_MissingTopicFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "keywords")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"topic\" not set")
}

func TestKeywordsCommand_CountOutOfRange(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "keywords",
		"--topic", "home brewing",
		"--count", "100")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "keyword count must be between 1 and 50")
}

func TestKeywordsCommand_InvalidKeywordType(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "keywords",
		"--topic", "home brewing",
		"--types", "branded")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid keyword type")
}

func TestKeywordsCommand_MissingAPIKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	clearAPIKeys(t)

	cmd := exec.Command(binaryPath, "keywords",
		"--topic", "home brewing")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "API key is required")
}
