package config

// Mode selects which source variant feeds the pipeline.
type Mode string

const (
	ModeFeeds       Mode = "rss_aggregate"
	ModeSpreadsheet Mode = "google_sheet"
)

// Settings is the typed form of the settings document.
type Settings struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Mode        Mode   `yaml:"mode"`

	RSSSources        []string `yaml:"rss_sources"`
	SpreadsheetCSVURL string   `yaml:"spreadsheet_csv_url"`
	GoogleSheetCSVURL string   `yaml:"google_sheet_csv_url"` // legacy name for SpreadsheetCSVURL

	Keywords        []string `yaml:"keywords"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`

	MaxItems     *int `yaml:"max_items"`
	DaysLookback *int `yaml:"days_lookback"`

	SiteBase        string `yaml:"site_base"`
	ArticlePageBase string `yaml:"article_page_base"`

	Enrich             *bool `yaml:"enrich"`
	Thumbnails         *bool `yaml:"thumbnails"`
	ExtractReadability bool  `yaml:"extract_readability"`

	Timeout       int `yaml:"timeout"`        // seconds, article and image fetches
	SourceTimeout int `yaml:"source_timeout"` // seconds, feed and CSV fetches
}
