// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index catalogs processed run artifacts in a SQLite database and
// supports full-text search and structured queries over action items.
package index

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

const (
	recommendationsDir = "recommendations"
	conversationsDir   = "conversations"
	dbFile             = "meetings.db"
)

// Store manages the artifact index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	outputDir  string
	maxResults int
}

// NewStore opens or creates the index database at cfg.IndexDir/meetings.db
// and creates the schema if it does not exist. outputDir is the pipeline
// artifact directory the store ingests from.
func NewStore(cfg types.IndexConfig, outputDir string) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		outputDir:  outputDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS meetings (
			id TEXT PRIMARY KEY,
			speakers TEXT,
			utterances INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS actions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			meeting_id TEXT NOT NULL REFERENCES meetings(id),
			description TEXT NOT NULL,
			owner TEXT,
			due_week INTEGER,
			confidence REAL,
			summary TEXT,
			rationale TEXT,
			resources TEXT,
			supporting_speaker TEXT,
			supporting_start REAL,
			supporting_end REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_meeting_id ON actions(meeting_id)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_owner ON actions(owner)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			meeting_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='actions_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE actions_fts USING fts5(description, content=actions, content_rowid=rowid)`,
			`CREATE TRIGGER actions_ai AFTER INSERT ON actions BEGIN
				INSERT INTO actions_fts(rowid, description) VALUES (new.rowid, new.description);
			END`,
			`CREATE TRIGGER actions_ad AFTER DELETE ON actions BEGIN
				INSERT INTO actions_fts(actions_fts, rowid, description) VALUES('delete', old.rowid, old.description);
			END`,
			`CREATE TRIGGER actions_au AFTER UPDATE ON actions BEGIN
				INSERT INTO actions_fts(actions_fts, rowid, description) VALUES('delete', old.rowid, old.description);
				INSERT INTO actions_fts(rowid, description) VALUES (new.rowid, new.description);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index ingestion run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of meetings processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads recommendation JSON artifacts from the output directory and
// populates the database. It detects new, changed, and unchanged meetings
// for incremental updates.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	recDir := filepath.Join(s.outputDir, recommendationsDir)

	entries, err := os.ReadDir(recDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading recommendations directory %s: %w", recDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		meetingID := strings.TrimSuffix(entry.Name(), ".json")
		filePath := filepath.Join(recDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", meetingID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE meeting_id = ?`, meetingID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", meetingID)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", meetingID, err)
			summary.Failed++
			continue
		}

		var recommendations []types.Recommendation
		if err := json.Unmarshal(data, &recommendations); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", meetingID, err)
			summary.Failed++
			continue
		}

		meta := s.loadConversation(meetingID)

		if err := s.ingestMeeting(ctx, meetingID, recommendations, meta, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", meetingID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d actions)\n", meetingID, len(recommendations))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d actions)\n", meetingID, len(recommendations))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestMeeting(ctx context.Context, meetingID string, recommendations []types.Recommendation, meta *conversation, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM actions WHERE meeting_id = ?`, meetingID); err != nil {
			return fmt.Errorf("deleting old actions: %w", err)
		}
	}

	speakers := "[]"
	utterances := 0
	if meta != nil {
		if data, err := json.Marshal(meta.Speakers); err == nil {
			speakers = string(data)
		}
		utterances = len(meta.Utterances)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meetings (id, speakers, utterances) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET speakers=excluded.speakers, utterances=excluded.utterances`,
		meetingID, speakers, utterances,
	); err != nil {
		return fmt.Errorf("upserting meeting: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO actions
			(id, meeting_id, description, owner, due_week, confidence, summary,
			 rationale, resources, supporting_speaker, supporting_start, supporting_end)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recommendations {
		item := rec.ActionItem
		resourcesJSON, _ := json.Marshal(rec.Resources)

		var suppSpeaker string
		var suppStart, suppEnd float64
		if item.SupportingUtterance != nil {
			suppSpeaker = item.SupportingUtterance.Speaker
			suppStart = item.SupportingUtterance.StartTime
			suppEnd = item.SupportingUtterance.EndTime
		}

		if _, err := stmt.ExecContext(ctx,
			ActionID(meetingID, item.Description), meetingID, item.Description,
			item.Owner, item.DueWeek, item.Confidence, rec.Summary,
			rec.Rationale, string(resourcesJSON),
			suppSpeaker, suppStart, suppEnd,
		); err != nil {
			return fmt.Errorf("inserting action: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO indexing_status (meeting_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(meeting_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		meetingID, modTime,
	); err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// ActionID generates a deterministic identifier for an indexed action item,
// stable across re-ingestions of unchanged artifacts. It is the first 12
// hex characters of SHA-256(meetingID + description).
func ActionID(meetingID, description string) string {
	h := sha256.New()
	h.Write([]byte(meetingID))
	h.Write([]byte(description))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// conversation mirrors the conversation artifact shape written by the
// report stage.
type conversation struct {
	MeetingID  string                  `json:"meeting_id"`
	Speakers   []string                `json:"speakers"`
	Utterances []conversationUtterance `json:"utterances"`
}

type conversationUtterance struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
}

// loadConversation reads the conversation artifact for a meeting. Returns
// nil if the file does not exist or cannot be parsed.
func (s *Store) loadConversation(meetingID string) *conversation {
	path := filepath.Join(s.outputDir, conversationsDir, meetingID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var conv conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil
	}
	return &conv
}
