/* main_test.go
 * Contains unit tests for main.go functions
 */

package main

import (
	"testing"
	"time"

	"ducs-bot/config"

	"github.com/stretchr/testify/assert"
)

// TestParseBoolFlag_Valid tests the accepted spellings of true and false
func TestParseBoolFlag_Valid(t *testing.T) {
	cases := map[string]bool{
		"true":     true,
		"false":    false,
		"TRUE":     true,
		"FALSE":    false,
		"TrUe":     true,
		"  true  ": true,
	}
	for input, want := range cases {
		result, err := parseBoolFlag(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, result, input)
	}
}

// TestParseBoolFlag_Invalid tests strings that are not true or false
func TestParseBoolFlag_Invalid(t *testing.T) {
	for _, input := range []string{"yes", "", "1", "   "} {
		_, err := parseBoolFlag(input)
		assert.Error(t, err, input)
	}

	_, err := parseBoolFlag("yes")
	assert.Contains(t, err.Error(), "invalid boolean string")
}

// TestSettingsFrom tests that every community setting is carried over from the configuration
func TestSettingsFrom(t *testing.T) {
	cfg := config.Config{
		Token:           "token",
		EmailDomain:     "@denison.edu",
		MemberRole:      "Students/Alumni",
		ProcessChannels: []string{"intern-process", "new-grad-process"},
		PromptTimeout:   time.Minute,
		NoticeTTL:       10 * time.Second,
		ReplyTTL:        5 * time.Second,
	}

	settings := settingsFrom(cfg)

	assert.Equal(t, "@denison.edu", settings.EmailDomain)
	assert.Equal(t, "Students/Alumni", settings.MemberRole)
	assert.Equal(t, []string{"intern-process", "new-grad-process"}, settings.ProcessChannels)
	assert.Equal(t, time.Minute, settings.PromptTimeout)
	assert.Equal(t, 10*time.Second, settings.NoticeTTL)
	assert.Equal(t, 5*time.Second, settings.ReplyTTL)
}
