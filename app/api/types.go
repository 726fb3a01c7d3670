package api

import (
	"time"
)

// BuildInfo describes the run whose output is being served.
type BuildInfo struct {
	Title   string
	Items   int
	BuiltAt time.Time
	Version string
}

type Handler struct {
	outputDir string
	build     BuildInfo
}
