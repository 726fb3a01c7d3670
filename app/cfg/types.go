package cfg

type Cfg struct {
	// Input and output
	SettingsFile string
	OutputDir    string

	// Run behaviour
	NoEnrich bool
	Prune    bool

	// Preview server
	Serve bool
	Port  string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
