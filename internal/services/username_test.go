package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		display  string
		expected string
	}{
		{"local part of email", "john.doe@example.com", "John Doe", "john.doe"},
		{"email wins over name", "jane@example.com", "Someone Else", "jane"},
		{"name fallback strips spaces and lowercases", "", "John Ronald Reuel", "johnronaldreuel"},
		{"empty name fallback", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveUsername(tt.email, tt.display))
		})
	}
}
