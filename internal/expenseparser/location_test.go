package expenseparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    string
	}{
		{
			name:    "two words after at",
			rawText: "Lunch at campus cafe",
			want:    "campus cafe",
		},
		{
			name:    "capped at three words",
			rawText: "Dinner at The Green Olive downtown",
			want:    "The Green Olive",
		},
		{
			name:    "cue order beats string position",
			rawText: "Gift from Paris bought at noon",
			want:    "noon",
		},
		{
			name:    "from cue",
			rawText: "Package from warehouse",
			want:    "warehouse",
		},
		{
			name:    "original casing preserved",
			rawText: "Coffee AT Starbucks",
			want:    "Starbucks",
		},
		{
			name:    "cue with nothing after it",
			rawText: "Parked at ",
			want:    "",
		},
		{
			name:    "no cue",
			rawText: "Monthly subscription",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLocation(tt.rawText))
		})
	}
}
