// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract derives action items from meeting transcripts: it scores
// utterances for task cues, infers due-week buckets from temporal phrasing,
// and merges near-duplicate tasks across the meeting.
package extract

import "regexp"

// taskPattern pairs a task-cue regex with the confidence it contributes.
// Patterns are ordered strongest signal first; scoring takes the maximum
// matched weight rather than a sum, so coincidental multi-keyword hits do
// not inflate confidence past the strongest cue.
type taskPattern struct {
	re     *regexp.Regexp
	weight float64
}

var taskPatterns = []taskPattern{
	{regexp.MustCompile(`(?i)\b(?:we|i|let's|lets|someone) need(?:s)? to\b`), 0.9},
	{regexp.MustCompile(`(?i)\b(?:action|task|todo)\b`), 0.7},
	{regexp.MustCompile(`(?i)\b(?:follow up|follow-up)\b`), 0.7},
	{regexp.MustCompile(`(?i)\b(?:prepare|draft|create|update|summarise|summarize)\b`), 0.8},
	{regexp.MustCompile(`(?i)\b(?:share|send|review|deliver|organise|organize)\b`), 0.6},
}

// dueWeekHint pairs a due-week bucket with the temporal phrases that map
// to it. Buckets are evaluated in ascending order and the first match wins;
// the phrase sets are mutually exclusive by wording, not ranked by strength.
type dueWeekHint struct {
	week int
	re   *regexp.Regexp
}

var dueWeekHints = []dueWeekHint{
	{1, regexp.MustCompile(`(?i)\bthis week|today|tomorrow|by friday\b`)},
	{2, regexp.MustCompile(`(?i)\bnext week|week two|week 2\b`)},
	{3, regexp.MustCompile(`(?i)\bweek three|week 3|in two weeks\b`)},
	{4, regexp.MustCompile(`(?i)\bweek four|week 4|end of the month\b`)},
}

// MatchConfidence scores how likely text expresses an actionable task.
// Every pattern is evaluated; the result is the maximum matched weight,
// clamped to 1.0. Zero means no task cue matched.
func MatchConfidence(text string) float64 {
	var best float64
	for _, p := range taskPatterns {
		if p.re.MatchString(text) && p.weight > best {
			best = p.weight
		}
	}
	if best > 1.0 {
		return 1.0
	}
	return best
}

// InferDueWeek maps text to a due-week bucket (1-4) from temporal phrasing.
// Zero means no hint matched and the task has no inferred due week.
func InferDueWeek(text string) int {
	for _, h := range dueWeekHints {
		if h.re.MatchString(text) {
			return h.week
		}
	}
	return 0
}
