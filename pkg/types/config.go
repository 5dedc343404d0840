// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KnowledgeConfig holds settings for the medical knowledge base.
type KnowledgeConfig struct {
	// File is the path to the knowledge YAML document. Empty uses the
	// embedded default knowledge base.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DirectoryConfig holds settings for the doctor directory store.
type DirectoryConfig struct {
	// DataDir is the directory containing the SQLite database file.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// AllocationConfig holds settings for doctor allocation and workload
// reporting.
type AllocationConfig struct {
	// WindowDays is the length of the forward-looking workload window
	// in days (default 7).
	WindowDays int `json:"window_days" yaml:"window_days"`
}

// EngineConfig groups all engine configuration.
type EngineConfig struct {
	Knowledge  KnowledgeConfig  `json:"knowledge" yaml:"knowledge"`
	Directory  DirectoryConfig  `json:"directory" yaml:"directory"`
	Allocation AllocationConfig `json:"allocation" yaml:"allocation"`
}
