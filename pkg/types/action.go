// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ActionItem is a candidate task extracted from a single utterance and
// deduplicated against other utterances expressing the same task.
type ActionItem struct {
	// Description is the normalized task sentence: whitespace collapsed,
	// leading filler ("let's", "we", "i") stripped, first letter capitalized.
	Description string `json:"description" yaml:"description"`

	// Owner is the speaker of the supporting utterance.
	Owner string `json:"owner" yaml:"owner"`

	// DueWeek is the inferred due-week bucket, 1 through 4. Zero means no
	// temporal phrase matched and the item has no inferred due week.
	DueWeek int `json:"due_week,omitempty" yaml:"due_week,omitempty"`

	// Confidence is a heuristic score in [0,1] indicating how likely the
	// utterance expresses a real actionable task. Duplicate utterances
	// boost the surviving item's confidence during the merge.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// SupportingUtterance points at the originating utterance inside its
	// MeetingTranscript. The transcript owns the utterance; the action item
	// only references it.
	SupportingUtterance *Utterance `json:"supporting_utterance,omitempty" yaml:"supporting_utterance,omitempty"`
}
