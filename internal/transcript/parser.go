// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript parses AMI-style meeting transcript files (TSV or CSV
// with aliased column names) into MeetingTranscript values.
package transcript

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

// unknownSpeaker is assigned when the speaker column is blank.
const unknownSpeaker = "Unknown"

// columnAliases maps each required logical column to the header spellings
// accepted for it.
var columnAliases = map[string][]string{
	"speaker":    {"speaker", "speaker_id", "participant", "agent"},
	"start_time": {"start_time", "start", "startseconds", "start_seconds"},
	"end_time":   {"end_time", "end", "endseconds", "end_seconds"},
	"text":       {"text", "transcript", "utterance", "content", "dialogue"},
}

// whitespaceRe collapses runs of whitespace in utterance text.
var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseFile parses one transcript file. TSV is assumed for .tsv and .txt
// extensions, CSV otherwise. When meetingID is empty, the file stem is used.
func ParseFile(path, meetingID string) (*types.MeetingTranscript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	delimiter := ','
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		delimiter = '\t'
	}

	if meetingID == "" {
		meetingID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	meeting, err := parse(f, meetingID, delimiter)
	if err != nil {
		return nil, fmt.Errorf("transcript %s: %w", path, err)
	}
	return meeting, nil
}

// parse reads header and rows from r and builds the transcript.
func parse(r io.Reader, meetingID string, delimiter rune) (*types.MeetingTranscript, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing required columns: end_time, speaker, start_time, text")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}

	meeting := &types.MeetingTranscript{MeetingID: meetingID}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		text := cleanText(field(row, columns["text"]))
		if text == "" {
			continue
		}
		speaker := strings.TrimSpace(field(row, columns["speaker"]))
		if speaker == "" {
			speaker = unknownSpeaker
		}

		meeting.Utterances = append(meeting.Utterances, types.Utterance{
			Speaker:   speaker,
			StartTime: parseSeconds(field(row, columns["start_time"])),
			EndTime:   parseSeconds(field(row, columns["end_time"])),
			Text:      text,
		})
	}

	return meeting, nil
}

// normalizeHeader resolves aliased column names to indices. Every required
// column must be present or parsing fails with a descriptive error.
func normalizeHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(columnAliases))
	for i, name := range header {
		lowered := strings.ToLower(strings.TrimSpace(name))
		for key, aliases := range columnAliases {
			if _, done := columns[key]; done {
				continue
			}
			for _, alias := range aliases {
				if lowered == alias {
					columns[key] = i
					break
				}
			}
		}
	}

	var missing []string
	for key := range columnAliases {
		if _, ok := columns[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

// field returns row[idx] or empty when the row is too short.
func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseSeconds parses a timestamp column, defaulting to 0 on failure.
func parseSeconds(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return v
}

// cleanText trims and whitespace-normalizes utterance text.
func cleanText(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// Load walks root recursively and parses every .tsv, .csv, or .txt file in
// lexical path order. It fails when the directory holds no transcripts.
func Load(root string) ([]*types.MeetingTranscript, error) {
	var transcripts []*types.MeetingTranscript

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tsv", ".csv", ".txt":
		default:
			return nil
		}
		meeting, err := ParseFile(path, "")
		if err != nil {
			return err
		}
		transcripts = append(transcripts, meeting)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(transcripts) == 0 {
		return nil, fmt.Errorf("no transcripts found in %s: expected .tsv, .csv or .txt files", root)
	}
	return transcripts, nil
}
