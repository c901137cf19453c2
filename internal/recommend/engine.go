// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/meshintel/meeting-recommender/internal/extract"
	"github.com/meshintel/meeting-recommender/pkg/types"
)

// maxResources caps how many resource descriptors one recommendation carries.
const maxResources = 5

// rationaleTermLimit caps how many key terms appear in the rationale.
const rationaleTermLimit = 5

// timelineSentences maps a due-week bucket to its rationale sentence.
var timelineSentences = map[int]string{
	1: "Week 1: Deliver within the current week.",
	2: "Week 2: Schedule for early next week.",
	3: "Week 3: Plan for the sprint after next.",
	4: "Week 4: Target the end of the month.",
}

// fallbackTimeline is used when an action item has no inferred due week.
const fallbackTimeline = "Align with sprint cadence and stakeholder checkpoints."

// Engine generates recommendations for a meeting's action items. The zero
// dependency is the knowledge base, injected at construction so tests can
// supply fixtures; a nil knowledge base selects the built-in default.
type Engine struct {
	kb *KnowledgeBase
}

// NewEngine returns an engine backed by kb, or the default knowledge base
// when kb is nil.
func NewEngine(kb *KnowledgeBase) *Engine {
	if kb == nil {
		kb = DefaultKnowledgeBase()
	}
	return &Engine{kb: kb}
}

// Recommend composes one recommendation per action item. Key terms and
// intent counts are aggregated once over the whole meeting, then each item
// deterministically selects resources and receives a rationale and summary.
func (e *Engine) Recommend(meeting *types.MeetingTranscript, items []types.ActionItem) []types.Recommendation {
	keyTerms := extract.KeyTerms(meeting)
	intents := ResourceIntents(items)

	recommendations := make([]types.Recommendation, 0, len(items))
	for _, item := range items {
		recommendations = append(recommendations, types.Recommendation{
			ActionItem: item,
			Summary:    summarize(item),
			Resources:  e.resourcesFor(intents),
			Rationale:  buildRationale(item, keyTerms),
		})
	}
	return recommendations
}

// resourcesFor selects up to five resource descriptors: the general
// category always contributes first, then every classified category in
// descending count order with ties broken by first-increment order.
func (e *Engine) resourcesFor(intents []IntentCount) []string {
	ranked := make([]IntentCount, len(intents))
	copy(ranked, intents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	categories := []string{fallbackCategory}
	for _, ic := range ranked {
		if ic.Category != fallbackCategory {
			categories = append(categories, ic.Category)
		}
	}

	var resources []string
	for _, category := range categories {
		resources = append(resources, e.kb.Resources(category)...)
		if len(resources) >= maxResources {
			break
		}
	}
	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}
	return resources
}

// buildRationale explains the selection in terms of the meeting's dominant
// vocabulary and the item's timeline.
func buildRationale(item types.ActionItem, keyTerms []string) string {
	owner := item.Owner
	if owner == "" {
		owner = "the assigned owner"
	}

	highlightTerms := keyTerms
	if len(highlightTerms) > rationaleTermLimit {
		highlightTerms = highlightTerms[:rationaleTermLimit]
	}
	highlights := strings.Join(highlightTerms, ", ")
	if highlights == "" {
		highlights = "core meeting themes"
	}

	timeline := fallbackTimeline
	if sentence, ok := timelineSentences[item.DueWeek]; ok {
		timeline = sentence
	}

	return fmt.Sprintf(
		"Task led by %s benefits from resources aligned to %s. %s",
		owner, highlights, timeline,
	)
}

// summarize builds the one-line briefing for an action item.
func summarize(item types.ActionItem) string {
	owner := item.Owner
	if owner == "" {
		owner = "TBD"
	}
	due := "TBD"
	if item.DueWeek > 0 {
		due = strconv.Itoa(item.DueWeek)
	}
	return fmt.Sprintf("Assign to %s | Due: %s | Confidence: %.2f", owner, due, item.Confidence)
}
