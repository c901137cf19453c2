// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend composes resource recommendations for extracted action
// items: it classifies which resource categories a meeting implies, selects
// curated resources from a knowledge base, and builds rationale and summary
// strings.
package recommend

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// fallbackCategory is the knowledge base category consulted for every
// action item regardless of classified intents. A knowledge base without
// it is rejected at load time.
const fallbackCategory = "general"

// KnowledgeBase is a static curated mapping from resource category to an
// ordered list of resource descriptors. It is immutable after construction
// and safe to share across concurrent recommendation runs.
type KnowledgeBase struct {
	entries map[string][]string
}

// NewKnowledgeBase builds a knowledge base from explicit entries. The
// entries must include the "general" fallback category.
func NewKnowledgeBase(entries map[string][]string) (*KnowledgeBase, error) {
	if _, ok := entries[fallbackCategory]; !ok {
		return nil, fmt.Errorf("knowledge base is missing the %q category", fallbackCategory)
	}
	copied := make(map[string][]string, len(entries))
	for category, resources := range entries {
		copied[category] = append([]string(nil), resources...)
	}
	return &KnowledgeBase{entries: copied}, nil
}

// DefaultKnowledgeBase returns the built-in curated knowledge base.
func DefaultKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{entries: map[string][]string{
		"meeting_notes": {
			"Template: action-oriented meeting minutes",
			"Guide: synthesising stakeholder updates",
		},
		"design_docs": {
			"Checklist: UX specification review",
			"Notion doc: design decision log",
		},
		"data_sources": {
			"Dashboard: weekly analytics snapshot",
			"Dataset: NPS verbatim feedback sample",
		},
		"engineering": {
			"Playbook: prototype hardening steps",
			"Runbook: deployment QA checklist",
		},
		"communication": {
			"Email template: stakeholder weekly update",
			"Slack channel: #project-sync",
		},
		"general": {
			"AI assistant prompt: ask for summarised risks",
			"LLM chain: convert transcripts into Jira issues",
		},
	}}
}

// LoadKnowledgeBase reads a category-to-resources mapping from a YAML file.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base %s: %w", path, err)
	}
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing knowledge base %s: %w", path, err)
	}
	kb, err := NewKnowledgeBase(entries)
	if err != nil {
		return nil, fmt.Errorf("knowledge base %s: %w", path, err)
	}
	return kb, nil
}

// Resources returns the stored resource descriptors for a category, in
// curated order. Unknown categories yield nil.
func (kb *KnowledgeBase) Resources(category string) []string {
	return kb.entries[category]
}
