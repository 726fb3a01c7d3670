package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/lysyi3m/rss-pulse/app/fetcher"
	_ "golang.org/x/image/webp"
)

// MaxPixels bounds the decoded size of a source image.
const MaxPixels = 50_000_000

var ErrImageTooLarge = errors.New("image too large")

// Generator downloads source images and writes cover-fit JPEG thumbnails.
type Generator struct {
	client  *fetcher.Client
	timeout time.Duration
}

func NewGenerator(client *fetcher.Client, timeout time.Duration) *Generator {
	return &Generator{client: client, timeout: timeout}
}

// Run downloads imageURL and writes the thumbnail to path, replacing any
// previous file.
func (g *Generator) Run(ctx context.Context, imageURL, path string) error {
	data, err := g.client.Get(ctx, imageURL, g.timeout, "")
	if err != nil {
		return fmt.Errorf("failed to download image: %w", err)
	}

	if err := CheckSize(data); err != nil {
		return err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return fmt.Errorf("image has no pixels")
	}

	return Write(Cover(img, Width, Height), path)
}

// CheckSize reads only the image header and rejects images whose pixel
// count exceeds MaxPixels.
func CheckSize(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("image has no pixels")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	return nil
}

// Write encodes img as a baseline JPEG and atomically replaces path.
func Write(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace thumbnail: %w", err)
	}

	return nil
}
