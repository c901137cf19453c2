package extract

import (
	"math"
	"reflect"
	"testing"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

func transcript(utterances ...types.Utterance) *types.MeetingTranscript {
	return &types.MeetingTranscript{MeetingID: "m1", Utterances: utterances}
}

func utt(speaker, text string) types.Utterance {
	return types.Utterance{Speaker: speaker, Text: text}
}

func TestActionItemsSingleUtterance(t *testing.T) {
	m := transcript(utt("Alice", "I need to update the design doc by Friday"))

	items := ActionItems(m)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}

	item := items[0]
	if item.Description != "Need to update the design doc by friday" {
		t.Errorf("Description = %q", item.Description)
	}
	if item.Owner != "Alice" {
		t.Errorf("Owner = %q, want Alice", item.Owner)
	}
	if item.DueWeek != 1 {
		t.Errorf("DueWeek = %d, want 1", item.DueWeek)
	}
	if math.Abs(item.Confidence-0.9) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.9", item.Confidence)
	}
	if item.SupportingUtterance != &m.Utterances[0] {
		t.Error("SupportingUtterance does not point at the transcript's utterance")
	}
}

func TestActionItemsSkipsNonTasks(t *testing.T) {
	m := transcript(
		utt("Alice", "Good morning everyone"),
		utt("Bob", "The coffee machine is broken again"),
	)
	if items := ActionItems(m); len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestActionItemsEmptyMeeting(t *testing.T) {
	if items := ActionItems(transcript()); len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "collapses whitespace",
			text: "  send   the\treport  ",
			want: "Send the report",
		},
		{
			name: "strips lets prefix",
			text: "Let's review the numbers",
			want: "Review the numbers",
		},
		{
			name: "strips we prefix",
			text: "We draft the outline",
			want: "Draft the outline",
		},
		{
			name: "rest of sentence lowercased",
			text: "update the OKR Sheet",
			want: "Update the okr sheet",
		},
		{
			name: "prefix match is case insensitive",
			text: "WE share the recording",
			want: "Share the recording",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDescription(tt.text); got != tt.want {
				t.Errorf("normalizeDescription(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDedupKey(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Send the report!", "send the report"},
		{"Send   the — report", "send the report"},
		{"Update Q3 metrics.", "update q3 metrics"},
	}
	for _, tt := range tests {
		if got := dedupKey(tt.description); got != tt.want {
			t.Errorf("dedupKey(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestMergeBoostsDuplicates(t *testing.T) {
	// Same normalization key from two speakers: one survivor, boosted 0.1.
	m := transcript(
		utt("Alice", "We need to send the report"),
		utt("Bob", "we need to send the report"),
	)
	items := ActionItems(m)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Owner != "Alice" {
		t.Errorf("Owner = %q, want the first of the tied candidates", items[0].Owner)
	}
	if math.Abs(items[0].Confidence-1.0) > 1e-9 {
		t.Errorf("Confidence = %v, want 1.0 (0.9 boosted by 0.1)", items[0].Confidence)
	}
}

func TestMergeDistinctKeysSurviveSeparately(t *testing.T) {
	// Prefix stripping produces different keys here: "need to send the
	// report" vs "send the report". No merge happens.
	m := transcript(
		utt("Alice", "We need to send the report"),
		utt("Bob", "Let's send the report"),
	)
	items := ActionItems(m)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if math.Abs(items[0].Confidence-0.9) > 1e-9 || math.Abs(items[1].Confidence-0.6) > 1e-9 {
		t.Errorf("confidences = %v, %v, want 0.9 then 0.6", items[0].Confidence, items[1].Confidence)
	}
}

func TestMergeBoostIsCapped(t *testing.T) {
	m := transcript(
		utt("A", "Prepare the slides"),
		utt("B", "prepare the slides"),
		utt("C", "Prepare the slides!"),
		utt("D", "prepare   the slides"),
	)
	items := ActionItems(m)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Confidence != 1.0 {
		t.Errorf("Confidence = %v, want capped at 1.0", items[0].Confidence)
	}
}

func TestMergeKeepsHighestConfidenceRepresentative(t *testing.T) {
	// Both utterances normalize to the key "need to review the draft":
	// the second via filler-prefix stripping. The first scores only 0.6
	// ("review"), the second 0.9 (directive language), so the second
	// survives and absorbs the boost.
	m := transcript(
		utt("Bob", "Need to review the draft"),
		utt("Alice", "We need to review the draft"),
	)
	items := ActionItems(m)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Owner != "Alice" {
		t.Errorf("Owner = %q, want Alice (highest-confidence member)", items[0].Owner)
	}
	if math.Abs(items[0].Confidence-1.0) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.9 boosted by 0.1", items[0].Confidence)
	}
}

func TestMergeOrderedByDescendingConfidence(t *testing.T) {
	m := transcript(
		utt("A", "Share the recording"),    // 0.6
		utt("B", "We need to fix the bug"), // 0.9
		utt("C", "Draft the announcement"), // 0.8
	)
	items := ActionItems(m)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Confidence > items[i-1].Confidence {
			t.Errorf("items not ordered by descending confidence: %v", items)
		}
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	m := transcript(
		utt("Alice", "We need to send the report"),
		utt("Bob", "we need to send the report"),
		utt("Carol", "Draft the announcement"),
	)
	once := ActionItems(m)
	twice := mergeSimilar(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestConfidenceAlwaysInRange(t *testing.T) {
	m := transcript(
		utt("A", "We need to prepare, draft, create, update and share the todo action plan this week"),
		utt("B", "we need to prepare, draft, create, update and share the todo action plan this week"),
		utt("C", "Follow up on everything"),
	)
	for _, item := range ActionItems(m) {
		if item.Confidence < 0 || item.Confidence > 1 {
			t.Errorf("Confidence %v out of [0,1]", item.Confidence)
		}
		if item.DueWeek < 0 || item.DueWeek > 4 {
			t.Errorf("DueWeek %d out of range", item.DueWeek)
		}
	}
}
