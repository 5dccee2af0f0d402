package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/matchscout/internal/config"
)

func TestMissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	rootCmd.SetArgs([]string{"--port", ":0"})
	err := rootCmd.Execute()

	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}
