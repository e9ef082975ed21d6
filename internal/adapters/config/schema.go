package config

// File represents the structure of the alertcord.yaml configuration file.
type File struct {
	Version   string       `yaml:"version"`
	Server    ServerDTO    `yaml:"server"`
	Discord   DiscordDTO   `yaml:"discord"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
}

// ServerDTO configures the ingest HTTP server.
type ServerDTO struct {
	Listen string `yaml:"listen"`
}

// DiscordDTO configures message delivery.
type DiscordDTO struct {
	WebhookURL        string `yaml:"webhook_url"`
	SuppressionWindow string `yaml:"suppression_window"`
}

// ToolchainDTO configures the build dispatcher.
type ToolchainDTO struct {
	Tool      string   `yaml:"tool"`
	Build     []string `yaml:"build"`
	Release   []string `yaml:"release"`
	Run       []string `yaml:"run"`
	TargetDir string   `yaml:"target_dir"`
}
