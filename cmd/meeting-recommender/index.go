// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/meeting-recommender/internal/index"
	"github.com/meshintel/meeting-recommender/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the artifact index (store, retrieve, export)",
	Long: `Index manages a local SQLite catalog of processed run artifacts. Use
subcommands to ingest recommendations, search them, or export the catalog.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest processed recommendations into the artifact index",
	Long: `Store reads recommendation JSON artifacts from the output directory,
ingests them into a SQLite database with FTS5 indexing over action item
descriptions, and records file modification times so unchanged meetings
are skipped on subsequent runs.`,
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d meeting(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var indexRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query indexed action items with full-text search and filters",
	Long: `Retrieve searches the artifact index using FTS5 full-text search over
action item descriptions, structured filters (owner, due week, meeting),
or a combination of both.

Use --trace with an action ID to view the supporting utterance in its
conversational context.`,
	RunE: runIndexRetrieve,
}

func runIndexRetrieve(cmd *cobra.Command, args []string) error {
	traceID, _ := cmd.Flags().GetString("trace")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	// Trace mode: show conversational context for a specific action.
	if traceID != "" {
		text, err := store.Trace(context.Background(), traceID)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --owner, --due-week, or --meeting")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-50s  %-12s  %-4s  %s\n",
		"Rank", "ID", "Description", "Owner", "Due", "Conf")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 96))

	for i, r := range results {
		description := r.Description
		if len(description) > 50 {
			description = description[:47] + "..."
		}
		owner := r.Owner
		if len(owner) > 12 {
			owner = owner[:9] + "..."
		}
		due := "-"
		if r.DueWeek > 0 {
			due = fmt.Sprintf("%d", r.DueWeek)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-50s  %-12s  %-4s  %.2f\n",
			i+1, r.ID, description, owner, due, r.Confidence)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the artifact index to YAML or JSON",
	Long: `Export writes the full artifact index (or a filtered subset) to
export.yaml or export.json in the index directory. Supports the same
filter flags as retrieve for partial exports.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.yaml in the index directory")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.json in the index directory")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*index.Store, error) {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	cfg := types.IndexConfig{
		IndexDir:   stringSetting(cmd, "index-dir", "index.index_dir", "output/index"),
		MaxResults: maxResults,
	}
	outputDir := stringSetting(cmd, "output", "report.output_dir", "output")
	return index.NewStore(cfg, outputDir)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	owner, _ := cmd.Flags().GetString("owner")
	dueWeek, _ := cmd.Flags().GetInt("due-week")
	meetingID, _ := cmd.Flags().GetString("meeting")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Owner:      owner,
		DueWeek:    dueWeek,
		MeetingID:  meetingID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "output/index", "directory for the index database")
	indexCmd.PersistentFlags().String("output", "output", "pipeline output directory the index ingests from")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Retrieve flags.
	indexRetrieveCmd.Flags().String("query", "", "full-text search query")
	indexRetrieveCmd.Flags().String("owner", "", "filter by action item owner")
	indexRetrieveCmd.Flags().Int("due-week", 0, "filter by due-week bucket (1-4)")
	indexRetrieveCmd.Flags().String("meeting", "", "filter by meeting ID")
	indexRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexRetrieveCmd.Flags().String("trace", "", "show conversational context for an action ID")
	indexRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	indexExportCmd.Flags().String("owner", "", "filter by owner for partial export")
	indexExportCmd.Flags().Int("due-week", 0, "filter by due-week bucket for partial export")
	indexExportCmd.Flags().String("meeting", "", "filter by meeting ID for partial export")
	indexExportCmd.Flags().Int("limit", 0, "maximum items to export (0 = all)")

	// Wire subcommands.
	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexRetrieveCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
