// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"strings"

	"github.com/meshintel/meeting-recommender/pkg/types"
)

// resourceCategory pairs a knowledge base category with the description
// keywords that signal it. The table is ordered so that intent counting is
// deterministic: categories are first seen in this order within an item.
type resourceCategory struct {
	name     string
	keywords []string
}

var resourceKeywords = []resourceCategory{
	{"meeting_notes", []string{"minutes", "notes", "summary"}},
	{"design_docs", []string{"design", "wireframe", "spec", "requirement"}},
	{"data_sources", []string{"dataset", "data", "analytics", "metrics"}},
	{"engineering", []string{"build", "implement", "deploy", "prototype"}},
	{"communication", []string{"email", "announce", "stakeholder", "update"}},
}

// IntentCount is one resource category with the number of action items
// whose descriptions matched it.
type IntentCount struct {
	Category string
	Count    int
}

// ResourceIntents aggregates, across a meeting's action items, which
// resource categories are implied. An item contributes to every category
// with at least one keyword substring in its lower-cased description.
// The result preserves first-increment order and omits zero-count
// categories.
func ResourceIntents(items []types.ActionItem) []IntentCount {
	position := make(map[string]int)
	var counts []IntentCount

	for _, item := range items {
		text := strings.ToLower(item.Description)
		for _, cat := range resourceKeywords {
			if !matchesAny(text, cat.keywords) {
				continue
			}
			if idx, ok := position[cat.name]; ok {
				counts[idx].Count++
			} else {
				position[cat.name] = len(counts)
				counts = append(counts, IntentCount{Category: cat.name, Count: 1})
			}
		}
	}
	return counts
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
