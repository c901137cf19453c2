// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

// keyTermLimit caps how many salient terms a meeting yields.
const keyTermLimit = 15

// minTokenLength filters out short function words before counting.
const minTokenLength = 4

// tokenRe matches maximal runs of letters, digits, or apostrophes in
// lower-cased text.
var tokenRe = regexp.MustCompile(`[a-z0-9']+`)

// KeyTerms returns up to 15 high-frequency content words across the whole
// meeting, ordered by descending count with ties kept in first-occurrence
// order. An empty meeting yields nil.
func KeyTerms(meeting *types.MeetingTranscript) []string {
	type termCount struct {
		term  string
		count int
	}

	counts := make(map[string]int)
	var order []termCount

	for _, utt := range meeting.Utterances {
		for _, tok := range tokenize(utt.Text) {
			if len(tok) < minTokenLength {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, termCount{term: tok})
			}
			counts[tok]++
		}
	}

	for i := range order {
		order[i].count = counts[order[i].term]
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	limit := keyTermLimit
	if len(order) < limit {
		limit = len(order)
	}
	terms := make([]string, 0, limit)
	for _, tc := range order[:limit] {
		terms = append(terms, tc.term)
	}
	return terms
}

// tokenize splits text into lower-cased word tokens.
func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}
