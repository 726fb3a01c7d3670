package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/rss-pulse/app/site"
)

func NewHandler(outputDir string, build BuildInfo) *Handler {
	return &Handler{
		outputDir: outputDir,
		build:     build,
	}
}

// GetFeed serves the generated feed with the same metadata headers the
// feed proxy used to send.
func (h *Handler) GetFeed(c *gin.Context) {
	data, err := os.ReadFile(filepath.Join(h.outputDir, site.FeedFile))
	if err != nil {
		slog.Error("Feed not readable", "dir", h.outputDir, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("X-Feed-Items", strconv.Itoa(h.build.Items))
	c.Header("X-Feed-Name", h.build.Title)
	c.Header("X-Last-Updated", h.build.BuiltAt.Format(time.RFC3339))

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", data)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"items":     h.build.Items,
		"built_at":  h.build.BuiltAt.Format(time.RFC3339),
		"version":   h.build.Version,
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}
