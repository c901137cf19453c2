// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

// mergeBoost is the per-duplicate confidence boost applied to the surviving
// representative of a duplicate group, capped at 1.0.
const mergeBoost = 0.1

var (
	// whitespaceRe collapses runs of whitespace in descriptions.
	whitespaceRe = regexp.MustCompile(`\s+`)

	// fillerPrefixRe strips conversational lead-ins before capitalization.
	fillerPrefixRe = regexp.MustCompile(`(?i)^(?:let's|lets|we|i)\s+`)

	// nonAlnumRe reduces a description to its deduplication key.
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// ActionItems derives the deduplicated, confidence-ranked action items for
// a meeting. Utterances are scanned in transcript order; each one whose text
// matches a task cue becomes a candidate, and near-duplicates are merged so
// that only the highest-confidence representative of each group survives,
// boosted for corroboration.
func ActionItems(meeting *types.MeetingTranscript) []types.ActionItem {
	var candidates []types.ActionItem
	for i := range meeting.Utterances {
		utt := &meeting.Utterances[i]
		confidence := MatchConfidence(utt.Text)
		if confidence <= 0 {
			continue
		}
		candidates = append(candidates, types.ActionItem{
			Description:         normalizeDescription(utt.Text),
			Owner:               utt.Speaker,
			DueWeek:             InferDueWeek(utt.Text),
			Confidence:          confidence,
			SupportingUtterance: utt,
		})
	}
	return mergeSimilar(candidates)
}

// normalizeDescription turns raw utterance text into a task sentence:
// whitespace collapsed, a leading filler prefix removed, first letter
// capitalized and the remainder lower-cased.
func normalizeDescription(text string) string {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	cleaned = fillerPrefixRe.ReplaceAllString(cleaned, "")
	return capitalize(cleaned)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

// dedupKey normalizes a description for duplicate grouping: lower-cased,
// every non-alphanumeric run collapsed to a single space, trimmed.
func dedupKey(description string) string {
	key := nonAlnumRe.ReplaceAllString(strings.ToLower(description), " ")
	return strings.TrimSpace(key)
}

// mergeSimilar groups candidates by deduplication key and keeps one
// representative per group: the member with the highest confidence, boosted
// by 0.1 per absorbed duplicate up to 1.0. Groups retain the order their
// keys were first encountered, then the result is stably sorted by
// descending confidence. Running the merge on already-merged items is a
// no-op.
func mergeSimilar(candidates []types.ActionItem) []types.ActionItem {
	groups := make(map[string][]int)
	var keyOrder []string
	for i, item := range candidates {
		key := dedupKey(item.Description)
		if _, ok := groups[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], i)
	}

	var merged []types.ActionItem
	for _, key := range keyOrder {
		members := groups[key]
		best := members[0]
		for _, i := range members[1:] {
			if candidates[i].Confidence > candidates[best].Confidence {
				best = i
			}
		}
		top := candidates[best]
		if n := len(members); n > 1 {
			top.Confidence += mergeBoost * float64(n-1)
			if top.Confidence > 1.0 {
				top.Confidence = 1.0
			}
		}
		merged = append(merged, top)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged
}
