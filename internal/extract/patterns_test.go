package extract

import (
	"math"
	"testing"
)

func TestMatchConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "directive language",
			text: "We need to finalise the agenda",
			want: 0.9,
		},
		{
			name: "someone needs to",
			text: "Someone needs to own this",
			want: 0.9,
		},
		{
			name: "explicit task vocabulary",
			text: "Add that as an action for next time",
			want: 0.7,
		},
		{
			name: "follow up hyphenated",
			text: "A quick follow-up on the budget",
			want: 0.7,
		},
		{
			name: "authoring verb",
			text: "Please draft the proposal",
			want: 0.8,
		},
		{
			name: "delivery verb",
			text: "Can you send the slides around",
			want: 0.6,
		},
		{
			name: "strongest rule wins over weaker hits",
			text: "I need to update the design doc by Friday",
			want: 0.9,
		},
		{
			name: "multiple weak hits do not sum",
			text: "Share and send and review everything",
			want: 0.6,
		},
		{
			name: "case insensitive",
			text: "WE NEED TO SHIP",
			want: 0.9,
		},
		{
			name: "no cue",
			text: "The weather was lovely last weekend",
			want: 0,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchConfidence(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MatchConfidence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferDueWeek(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"this week", "Let's wrap it up this week", 1},
		{"by friday", "Send it over by Friday please", 1},
		{"tomorrow", "I'll check tomorrow morning", 1},
		{"next week", "We can review next week", 2},
		{"week two", "Aim for week 2 of the project", 2},
		{"in two weeks", "The demo lands in two weeks", 3},
		{"week three", "Week three works for everyone", 3},
		{"end of month", "Final numbers by the end of the month", 4},
		{"week four", "Push it to week 4", 4},
		{"no hint", "We should get this done", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferDueWeek(tt.text); got != tt.want {
				t.Errorf("InferDueWeek(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferDueWeekFirstBucketWins(t *testing.T) {
	// Both the bucket-1 and bucket-2 phrase sets appear; evaluation order
	// is ascending so bucket 1 is returned.
	if got := InferDueWeek("either this week or next week"); got != 1 {
		t.Errorf("InferDueWeek = %d, want 1", got)
	}
}
