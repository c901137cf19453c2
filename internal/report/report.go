// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the pipeline's run artifacts: per-meeting JSON files
// for conversations, action items, and recommendations, plus a combined
// Markdown report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

const (
	conversationsDir   = "conversations"
	actionItemsDir     = "action_items"
	recommendationsDir = "recommendations"
	reportFile         = "report.md"
)

// utteranceExport is the JSON shape of one utterance in a conversation
// artifact, carrying the derived duration alongside the raw timing.
type utteranceExport struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
	Duration  float64 `json:"duration"`
}

// meetingExport is the JSON shape of a conversation artifact, adding the
// derived speaker roster to the transcript.
type meetingExport struct {
	MeetingID  string            `json:"meeting_id"`
	Speakers   []string          `json:"speakers"`
	Utterances []utteranceExport `json:"utterances"`
}

// WriteArtifacts writes all artifacts for the processed meetings under
// outputDir: conversations/, action_items/, recommendations/, and report.md.
func WriteArtifacts(outputDir string, artifacts []types.PipelineArtifacts) error {
	dirs := map[string]string{
		conversationsDir:   filepath.Join(outputDir, conversationsDir),
		actionItemsDir:     filepath.Join(outputDir, actionItemsDir),
		recommendationsDir: filepath.Join(outputDir, recommendationsDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating artifact directory: %w", err)
		}
	}

	for _, artifact := range artifacts {
		id := artifact.Meeting.MeetingID
		if err := writeJSON(filepath.Join(dirs[conversationsDir], id+".json"), exportMeeting(artifact.Meeting)); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dirs[actionItemsDir], id+".json"), emptyAsList(artifact.ActionItems)); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(dirs[recommendationsDir], id+".json"), emptyAsList(artifact.Recommendations)); err != nil {
			return err
		}
	}

	path := filepath.Join(outputDir, reportFile)
	if err := os.WriteFile(path, []byte(Render(artifacts)), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// exportMeeting converts a transcript to its artifact shape.
func exportMeeting(meeting *types.MeetingTranscript) meetingExport {
	utterances := make([]utteranceExport, len(meeting.Utterances))
	for i, utt := range meeting.Utterances {
		utterances[i] = utteranceExport{
			Speaker:   utt.Speaker,
			StartTime: utt.StartTime,
			EndTime:   utt.EndTime,
			Text:      utt.Text,
			Duration:  utt.Duration(),
		}
	}
	return meetingExport{
		MeetingID:  meeting.MeetingID,
		Speakers:   meeting.Speakers(),
		Utterances: utterances,
	}
}

// emptyAsList keeps empty slices serialized as [] instead of null.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// writeJSON marshals payload with two-space indentation.
func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Render builds the combined Markdown report for all processed meetings.
func Render(artifacts []types.PipelineArtifacts) string {
	lines := []string{
		"# Smart Meeting Action-Item Recommender Report",
		"",
		"This report summarises extracted action items and recommended resources",
		"for each processed meeting transcript.",
		"",
	}
	for _, artifact := range artifacts {
		lines = append(lines, meetingSection(artifact)...)
	}
	return strings.Join(lines, "\n")
}

func meetingSection(artifact types.PipelineArtifacts) []string {
	lines := []string{
		fmt.Sprintf("## Meeting %s", artifact.Meeting.MeetingID),
		"",
		"**Speakers:** " + strings.Join(artifact.Meeting.Speakers(), ", "),
		"",
		"### Action Items",
	}
	if len(artifact.ActionItems) == 0 {
		lines = append(lines, "- No confident action items detected.")
	} else {
		for _, item := range artifact.ActionItems {
			due := "TBD"
			if item.DueWeek > 0 {
				due = fmt.Sprintf("%d", item.DueWeek)
			}
			owner := item.Owner
			if owner == "" {
				owner = "TBD"
			}
			lines = append(lines, fmt.Sprintf(
				"- (%.2f) %s — Owner: %s; Due week: %s",
				item.Confidence, item.Description, owner, due,
			))
		}
	}
	lines = append(lines, "", "### Recommendations")
	if len(artifact.Recommendations) == 0 {
		lines = append(lines, "- No recommendations generated.")
	} else {
		for _, rec := range artifact.Recommendations {
			lines = append(lines, fmt.Sprintf(
				"- %s. Resources: %s. Rationale: %s",
				rec.Summary, strings.Join(rec.Resources, "; "), rec.Rationale,
			))
		}
	}
	lines = append(lines, "")
	return lines
}
