package config

// Configfile represents the structure of the .sectx.yaml configuration file.
// Pointer fields distinguish an explicit false or zero from an absent key.
type Configfile struct {
	Enabled          *bool          `yaml:"enabled"`
	AutoUpdate       *bool          `yaml:"auto_update"`
	CacheSuffix      string         `yaml:"cache_suffix"`
	CacheDir         string         `yaml:"cache_dir"`
	SummaryTag       string         `yaml:"summary_tag"`
	FilesTag         string         `yaml:"files_tag"`
	AttachmentDir    string         `yaml:"attachment_dir"`
	BinaryProbeBytes *int           `yaml:"binary_probe_bytes"`
	Summarizer       *SummarizerDTO `yaml:"summarizer"`
}

// SummarizerDTO represents the summarizer section of the configuration.
type SummarizerDTO struct {
	Command      []string `yaml:"command"`
	SystemPrompt string   `yaml:"system_prompt"`
	Timeout      string   `yaml:"timeout"`
}
