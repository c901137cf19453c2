// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Recommendation pairs an action item with curated resources and a
// human-readable rationale. Recommendations are created once per surviving
// action item and never mutated afterwards.
type Recommendation struct {
	// ActionItem is the task this recommendation was composed for.
	ActionItem ActionItem `json:"action_item" yaml:"action_item"`

	// Summary is a one-line briefing: owner, due week, and confidence.
	Summary string `json:"summary" yaml:"summary"`

	// Resources holds at most five resource descriptors, general resources
	// first, then intent categories by descending meeting-wide count.
	Resources []string `json:"resources" yaml:"resources"`

	// Rationale explains the selection in terms of the meeting's key terms
	// and the item's timeline.
	Rationale string `json:"rationale" yaml:"rationale"`
}

// PipelineArtifacts groups everything the pipeline produces for one meeting.
type PipelineArtifacts struct {
	Meeting         *MeetingTranscript `json:"meeting" yaml:"meeting"`
	ActionItems     []ActionItem       `json:"action_items" yaml:"action_items"`
	Recommendations []Recommendation   `json:"recommendations" yaml:"recommendations"`
}
