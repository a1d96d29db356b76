package config

import "time"

// Config is the root application configuration.
type Config struct {
	HackMD       HackMDConfig  `yaml:"hackmd"`
	GitHub       GitHubConfig  `yaml:"github"`
	Meeting      MeetingConfig `yaml:"meeting"`
	SnapshotPath string        `yaml:"snapshot_path" env:"CORENOTE_SNAPSHOT_PATH" env-default:"_cache"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"  env:"CORENOTE_HTTP_TIMEOUT"  env-default:"30s"`
	ConfigDir    string        `yaml:"config_dir"    env:"CORENOTE_CONFIG_DIR"    env-default:"~/.config/corenote"`
}

// HackMDConfig holds the notes service settings.
type HackMDConfig struct {
	Token           string `yaml:"token"            env:"HACKMD_TOKEN"`
	BaseURL         string `yaml:"base_url"         env:"HACKMD_BASE_URL"         env-default:"https://api.hackmd.io/v1"`
	SiteURL         string `yaml:"site_url"         env:"HACKMD_SITE_URL"         env-default:"https://hackmd.io"`
	Team            string `yaml:"team"             env:"HACKMD_TEAM"             env-default:"dials"`
	ReadPermission  string `yaml:"read_permission"  env:"HACKMD_READ_PERMISSION"  env-default:"guest"`
	WritePermission string `yaml:"write_permission" env:"HACKMD_WRITE_PERMISSION" env-default:"signed_in"`
}

// GitHubConfig holds the knowledge base repository settings.
type GitHubConfig struct {
	Token         string `yaml:"token"          env:"GITHUB_TOKEN"`
	GraphQLURL    string `yaml:"graphql_url"    env:"GITHUB_GRAPHQL_URL"    env-default:"https://api.github.com/graphql"`
	Owner         string `yaml:"owner"          env:"GITHUB_OWNER"          env-default:"dials"`
	Repo          string `yaml:"repo"           env:"GITHUB_REPO"           env-default:"kb"`
	Branch        string `yaml:"branch"         env:"GITHUB_BRANCH"         env-default:"master"`
	FutureDir     string `yaml:"future_dir"     env:"GITHUB_FUTURE_DIR"     env-default:"collections/_core"`
	CommitMessage string `yaml:"commit_message" env:"GITHUB_COMMIT_MESSAGE" env-default:"Future meeting"`
}

// MeetingConfig describes the recurring meeting.
type MeetingConfig struct {
	TeamPrefix    string        `yaml:"team_prefix"    env:"MEETING_TEAM_PREFIX"    env-default:"DIALS"`
	Tag           string        `yaml:"tag"            env:"MEETING_TAG"            env-default:"core meeting"`
	Timezone      string        `yaml:"timezone"       env:"MEETING_TIMEZONE"       env-default:"Local"`
	PrimaryZone   string        `yaml:"primary_zone"   env:"MEETING_PRIMARY_ZONE"   env-default:"Europe/London"`
	PrimaryTime   string        `yaml:"primary_time"   env:"MEETING_PRIMARY_TIME"   env-default:"16:00"`
	SecondaryZone string        `yaml:"secondary_zone" env:"MEETING_SECONDARY_ZONE" env-default:"America/Los_Angeles"`
	SecondaryTime string        `yaml:"secondary_time" env:"MEETING_SECONDARY_TIME" env-default:"08:00"`
	Duration      time.Duration `yaml:"duration"       env:"MEETING_DURATION"       env-default:"1h"`
}
