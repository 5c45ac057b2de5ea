package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "mutant", configBaseName)
	assert.Equal(t, "mutant.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "test-cmd", testCmdFlagName)
	assert.Equal(t, "session", sessionFlagName)
	assert.Equal(t, "timeout-mult", timeoutMultFlagName)
	assert.Equal(t, "run.test_cmd", testCmdConfigKey)
	assert.Equal(t, "run.session", sessionConfigKey)
	assert.Equal(t, "default", defaultSession)
	assert.Equal(t, "pytest", defaultTestCmd)
	assert.Equal(t, 3, defaultTimeoutMult)
	assert.Equal(t, "MUTANT", envPrefix)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"debug", "debug"},
		{"warn alias", "warning"},
		{"numeric", "-4"},
		{"empty falls back", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = parseSlogLevel(tt.input, 0)
		})
	}
}
