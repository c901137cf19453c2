package types

// TranscriptConfig holds settings for the transcript parsing stage.
type TranscriptConfig struct {
	// InputDir is the directory searched recursively for transcript files
	// (.tsv, .csv, or .txt).
	InputDir string `json:"input_dir" yaml:"input_dir"`
}

// RecommendConfig holds settings for the recommendation stage.
type RecommendConfig struct {
	// KnowledgeBaseFile is an optional YAML file overriding the built-in
	// knowledge base. Empty means use the curated default.
	KnowledgeBaseFile string `json:"knowledge_base_file,omitempty" yaml:"knowledge_base_file,omitempty"`
}

// ReportConfig holds settings for artifact and report writing.
type ReportConfig struct {
	// OutputDir is the base directory for run artifacts (contains
	// conversations/, action_items/, recommendations/, and report.md).
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// IndexConfig holds settings for the artifact index stage.
type IndexConfig struct {
	// IndexDir is the directory containing the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Transcripts TranscriptConfig `json:"transcripts" yaml:"transcripts"`
	Recommend   RecommendConfig  `json:"recommend" yaml:"recommend"`
	Report      ReportConfig     `json:"report" yaml:"report"`
	Index       IndexConfig      `json:"index" yaml:"index"`
}
