// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the meeting-recommender
// pipeline: transcripts, action items, recommendations, and stage
// configuration.
package types

// Utterance is a single speaker turn in a meeting transcript.
type Utterance struct {
	// Speaker is the speaker label from the transcript ("Unknown" when absent).
	Speaker string `json:"speaker" yaml:"speaker"`

	// StartTime is the utterance start in seconds from the meeting start.
	StartTime float64 `json:"start_time" yaml:"start_time"`

	// EndTime is the utterance end in seconds from the meeting start.
	EndTime float64 `json:"end_time" yaml:"end_time"`

	// Text is the normalized utterance text. Empty-text rows are dropped
	// during parsing and never reach the extraction stages.
	Text string `json:"text" yaml:"text"`
}

// Duration returns the utterance length in seconds, never negative.
func (u Utterance) Duration() float64 {
	if d := u.EndTime - u.StartTime; d > 0 {
		return d
	}
	return 0
}

// MeetingTranscript is the structured representation of one meeting.
type MeetingTranscript struct {
	// MeetingID identifies the meeting, usually the transcript file stem.
	MeetingID string `json:"meeting_id" yaml:"meeting_id"`

	// Utterances are the speaker turns in original transcript order.
	Utterances []Utterance `json:"utterances" yaml:"utterances"`
}

// Speakers returns the unique speaker labels in order of first appearance.
func (m *MeetingTranscript) Speakers() []string {
	seen := make(map[string]bool, len(m.Utterances))
	var speakers []string
	for _, utt := range m.Utterances {
		if !seen[utt.Speaker] {
			seen[utt.Speaker] = true
			speakers = append(speakers, utt.Speaker)
		}
	}
	return speakers
}
