package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/meeting-recommender/internal/extract"
	"github.com/meshintel/meeting-recommender/internal/transcript"
	"github.com/meshintel/meeting-recommender/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <transcript>",
	Short: "Extract action items from a single transcript file",
	Long: `Extract runs task detection, due-week inference, and deduplication on
one transcript file and prints the resulting action items, ranked by
confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	meeting, err := transcript.ParseFile(args[0], "")
	if err != nil {
		return err
	}

	items := extract.ActionItems(meeting)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatActionItems(items, jsonOutput)
}

func formatActionItems(items []types.ActionItem, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("No confident action items detected.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-60s  %-12s  %-4s\n",
		"Confidence", "Description", "Owner", "Due")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 94))

	for _, item := range items {
		description := item.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		owner := item.Owner
		if len(owner) > 12 {
			owner = owner[:9] + "..."
		}
		due := "-"
		if item.DueWeek > 0 {
			due = fmt.Sprintf("%d", item.DueWeek)
		}
		fmt.Fprintf(os.Stdout, "%-10.2f  %-60s  %-12s  %-4s\n",
			item.Confidence, description, owner, due)
	}

	fmt.Fprintf(os.Stdout, "\n%d action items\n", len(items))
	return nil
}

func init() {
	extractCmd.Flags().Bool("json", false, "output action items as JSON")

	rootCmd.AddCommand(extractCmd)
}
