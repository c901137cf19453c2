// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshintel/meeting-recommender/internal/pipeline"
	"github.com/meshintel/meeting-recommender/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [input-dir]",
	Short: "Run the full extraction and recommendation pipeline",
	Long: `Process parses every transcript under the input directory, extracts
deduplicated action items, composes resource recommendations, and writes
per-meeting JSON artifacts plus a combined Markdown report to the output
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputDir := stringSetting(cmd, "input", "transcripts.input_dir", "transcripts")
	if len(args) > 0 {
		inputDir = args[0]
	}

	cfg := types.PipelineConfig{
		Transcripts: types.TranscriptConfig{InputDir: inputDir},
		Recommend: types.RecommendConfig{
			KnowledgeBaseFile: stringSetting(cmd, "knowledge-base", "recommend.knowledge_base_file", ""),
		},
		Report: types.ReportConfig{
			OutputDir: stringSetting(cmd, "output", "report.output_dir", "output"),
		},
	}

	artifacts, summary, err := pipeline.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d meetings (%d action items, %d recommendations). Results stored in %s.\n",
		len(artifacts), summary.ActionItems, summary.Recommendations, cfg.Report.OutputDir)
	return nil
}

func init() {
	processCmd.Flags().String("input", "transcripts", "directory containing transcript files (.tsv, .csv, .txt)")
	processCmd.Flags().String("output", "output", "directory for run artifacts and report.md")
	processCmd.Flags().String("knowledge-base", "", "YAML file overriding the built-in knowledge base")

	rootCmd.AddCommand(processCmd)
}
