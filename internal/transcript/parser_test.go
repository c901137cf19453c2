package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileTSV(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "standup.tsv",
		"speaker\tstart_time\tend_time\ttext\n"+
			"Alice\t0.0\t4.5\tWe need to send the report\n"+
			"Bob\t5.0\t9.0\tSounds good\n")

	meeting, err := ParseFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, "standup", meeting.MeetingID)
	require.Len(t, meeting.Utterances, 2)
	assert.Equal(t, "Alice", meeting.Utterances[0].Speaker)
	assert.Equal(t, 4.5, meeting.Utterances[0].EndTime)
	assert.Equal(t, "We need to send the report", meeting.Utterances[0].Text)
}

func TestParseFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "sync.csv",
		"speaker,start_time,end_time,text\n"+
			"Carol,1.0,2.0,Review the numbers\n")

	meeting, err := ParseFile(path, "")
	require.NoError(t, err)
	require.Len(t, meeting.Utterances, 1)
	assert.Equal(t, "Carol", meeting.Utterances[0].Speaker)
}

func TestParseFileColumnAliases(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "aliased.tsv",
		"participant\tstart\tend\tdialogue\n"+
			"Dave\t0\t1\tDraft the outline\n")

	meeting, err := ParseFile(path, "")
	require.NoError(t, err)
	require.Len(t, meeting.Utterances, 1)
	assert.Equal(t, "Dave", meeting.Utterances[0].Speaker)
	assert.Equal(t, "Draft the outline", meeting.Utterances[0].Text)
}

func TestParseFileExplicitMeetingID(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "raw.csv",
		"speaker,start_time,end_time,text\nA,0,1,Hello\n")

	meeting, err := ParseFile(path, "weekly-sync")
	require.NoError(t, err)
	assert.Equal(t, "weekly-sync", meeting.MeetingID)
}

func TestParseFileMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "broken.csv",
		"speaker,text\nA,Hello\n")

	_, err := ParseFile(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "end_time")
	assert.Contains(t, err.Error(), "start_time")
}

func TestParseFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "gaps.tsv",
		"speaker\tstart_time\tend_time\ttext\n"+
			"\tnot-a-number\t\tStill counts\n"+
			"Bob\t1.0\t2.0\t   \n")

	meeting, err := ParseFile(path, "")
	require.NoError(t, err)

	// The blank-text row is dropped, the first row gets defaults.
	require.Len(t, meeting.Utterances, 1)
	utt := meeting.Utterances[0]
	assert.Equal(t, "Unknown", utt.Speaker)
	assert.Equal(t, 0.0, utt.StartTime)
	assert.Equal(t, 0.0, utt.EndTime)
}

func TestParseFileNormalizesWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := writeTranscript(t, dir, "messy.csv",
		"speaker,start_time,end_time,text\n"+
			"A,0,1,  send   the  report  \n")

	meeting, err := ParseFile(path, "")
	require.NoError(t, err)
	require.Len(t, meeting.Utterances, 1)
	assert.Equal(t, "send the report", meeting.Utterances[0].Text)
}

func TestLoadWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeTranscript(t, dir, "b.tsv",
		"speaker\tstart_time\tend_time\ttext\nA\t0\t1\tHello\n")
	writeTranscript(t, filepath.Join(dir, "nested"), "a.csv",
		"speaker,start_time,end_time,text\nB,0,1,Hi\n")
	writeTranscript(t, dir, "ignore.log", "not a transcript")

	transcripts, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, transcripts, 2)

	ids := []string{transcripts[0].MeetingID, transcripts[1].MeetingID}
	assert.Contains(t, ids, "a")
	assert.Contains(t, ids, "b")
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transcripts found")
}

func TestLoadPropagatesParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "bad.csv", "speaker,text\nA,Hello\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}
