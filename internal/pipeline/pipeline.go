// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the end-to-end flow: parse transcripts, extract
// action items, compose recommendations, and write run artifacts.
package pipeline

import (
	"fmt"
	"io"

	"github.com/meshintel/meeting-recommender/internal/extract"
	"github.com/meshintel/meeting-recommender/internal/recommend"
	"github.com/meshintel/meeting-recommender/internal/report"
	"github.com/meshintel/meeting-recommender/internal/transcript"
	"github.com/meshintel/meeting-recommender/pkg/types"
)

// Summary holds counts from one pipeline run.
type Summary struct {
	Meetings        int
	ActionItems     int
	Recommendations int
}

// Run processes every transcript under cfg.Transcripts.InputDir and writes
// artifacts to cfg.Report.OutputDir. Progress lines go to w. Malformed
// transcripts abort the run; a run over valid transcripts never fails on
// content, only on I/O.
func Run(cfg types.PipelineConfig, w io.Writer) ([]types.PipelineArtifacts, Summary, error) {
	transcripts, err := transcript.Load(cfg.Transcripts.InputDir)
	if err != nil {
		return nil, Summary{}, err
	}

	kb, err := loadKnowledgeBase(cfg.Recommend)
	if err != nil {
		return nil, Summary{}, err
	}
	engine := recommend.NewEngine(kb)

	var (
		artifacts []types.PipelineArtifacts
		summary   Summary
	)
	for _, meeting := range transcripts {
		items := extract.ActionItems(meeting)
		recommendations := engine.Recommend(meeting, items)

		artifacts = append(artifacts, types.PipelineArtifacts{
			Meeting:         meeting,
			ActionItems:     items,
			Recommendations: recommendations,
		})
		summary.Meetings++
		summary.ActionItems += len(items)
		summary.Recommendations += len(recommendations)

		fmt.Fprintf(w, "processed %s (%d utterances, %d action items)\n",
			meeting.MeetingID, len(meeting.Utterances), len(items))
	}

	if err := report.WriteArtifacts(cfg.Report.OutputDir, artifacts); err != nil {
		return nil, summary, err
	}

	return artifacts, summary, nil
}

// loadKnowledgeBase resolves the optional override file; nil selects the
// engine's built-in default.
func loadKnowledgeBase(cfg types.RecommendConfig) (*recommend.KnowledgeBase, error) {
	if cfg.KnowledgeBaseFile == "" {
		return nil, nil
	}
	return recommend.LoadKnowledgeBase(cfg.KnowledgeBaseFile)
}
