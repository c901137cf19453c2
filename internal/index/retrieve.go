// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for artifact index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over action descriptions.
	Query string

	// Owner filters by action item owner.
	Owner string

	// DueWeek filters by due-week bucket (1-4). Zero means no filter.
	DueWeek int

	// MeetingID filters by meeting.
	MeetingID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Owner == "" && q.DueWeek == 0 && q.MeetingID == ""
}

// QueryResult is one indexed action item with its composed recommendation.
type QueryResult struct {
	ID          string   `json:"id" yaml:"id"`
	MeetingID   string   `json:"meeting_id" yaml:"meeting_id"`
	Description string   `json:"description" yaml:"description"`
	Owner       string   `json:"owner" yaml:"owner"`
	DueWeek     int      `json:"due_week,omitempty" yaml:"due_week,omitempty"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
	Summary     string   `json:"summary" yaml:"summary"`
	Rationale   string   `json:"rationale" yaml:"rationale"`
	Resources   []string `json:"resources" yaml:"resources"`
}

// Retrieve queries the index with optional full-text search and structured
// filters. Full-text queries are ranked by relevance; structured-only
// queries are ordered by meeting, then descending confidence.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.id, a.meeting_id, a.description, a.owner, a.due_week,
				a.confidence, a.summary, a.rationale, a.resources
			FROM actions_fts
			JOIN actions a ON a.rowid = actions_fts.rowid
			WHERE actions_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT a.id, a.meeting_id, a.description, a.owner, a.due_week,
				a.confidence, a.summary, a.rationale, a.resources
			FROM actions a
			WHERE 1=1`)
	}

	if opts.Owner != "" {
		qb.WriteString(` AND a.owner = ?`)
		args = append(args, opts.Owner)
	}

	if opts.DueWeek > 0 {
		qb.WriteString(` AND a.due_week = ?`)
		args = append(args, opts.DueWeek)
	}

	if opts.MeetingID != "" {
		qb.WriteString(` AND a.meeting_id = ?`)
		args = append(args, opts.MeetingID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY actions_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.meeting_id, a.confidence DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr            QueryResult
			resourcesJSON sql.NullString
		)
		if err := rows.Scan(
			&qr.ID, &qr.MeetingID, &qr.Description, &qr.Owner, &qr.DueWeek,
			&qr.Confidence, &qr.Summary, &qr.Rationale, &resourcesJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if resourcesJSON.Valid {
			json.Unmarshal([]byte(resourcesJSON.String), &qr.Resources)
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// traceWindow is how many neighbouring utterances Trace shows on each side
// of the supporting utterance.
const traceWindow = 2

// Trace returns the supporting utterance for an indexed action item in its
// conversational context, read back from the conversation artifact.
func (s *Store) Trace(ctx context.Context, actionID string) (string, error) {
	var meetingID, speaker string
	var start float64

	err := s.db.QueryRowContext(ctx,
		`SELECT meeting_id, supporting_speaker, supporting_start FROM actions WHERE id = ?`, actionID,
	).Scan(&meetingID, &speaker, &start)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("action %s not found", actionID)
		}
		return "", fmt.Errorf("looking up action: %w", err)
	}

	conv := s.loadConversation(meetingID)
	if conv == nil {
		return "", fmt.Errorf("conversation artifact for meeting %s not found", meetingID)
	}

	at := -1
	for i, utt := range conv.Utterances {
		if utt.Speaker == speaker && utt.StartTime == start {
			at = i
			break
		}
	}
	if at < 0 {
		return "", fmt.Errorf("supporting utterance not found in meeting %s", meetingID)
	}

	lo := at - traceWindow
	if lo < 0 {
		lo = 0
	}
	hi := at + traceWindow + 1
	if hi > len(conv.Utterances) {
		hi = len(conv.Utterances)
	}

	var b strings.Builder
	for i := lo; i < hi; i++ {
		utt := conv.Utterances[i]
		marker := "  "
		if i == at {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s[%s] %s\n", marker, utt.Speaker, utt.Text)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
