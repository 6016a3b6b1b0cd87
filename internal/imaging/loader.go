package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache keeps decoded source photos in memory so that a client can
// inspect a photo and then build several patterns from it without decoding it
// again. Entries are keyed by absolute path, so "photo.jpg" and
// "/home/me/photo.jpg" share one entry.
//
// ImageCache is safe for concurrent use. Cached photos stay in memory until
// Evict or Clear; a photo that changes on disk is not noticed until then.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]image.Image)}
}

// Load returns the photo at path, decoding it with Open on first use.
func (c *ImageCache) Load(path string) (image.Image, error) {
	key, err := cacheKey(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	img, ok := c.images[key]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err = Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.images[key]; ok {
		img = cached
	} else {
		c.images[key] = img
	}
	c.mu.Unlock()
	return img, nil
}

// Len reports how many photos are cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear drops every cached photo.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict drops the photo at path, if cached.
func (c *ImageCache) Evict(path string) {
	key, err := cacheKey(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	delete(c.images, key)
	c.mu.Unlock()
}

func cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// Open decodes a photo, rotating it according to its EXIF orientation tag so
// that phone pictures come out upright. The format is detected from the file
// content.
func Open(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Save encodes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// ImageInfo describes a source photo.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is named after the file extension ("png", "jpeg", "gif", "bmp",
	// "tiff") or "unknown".
	Format string `json:"format"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// StitchRows returns how many rows of stitches the photo yields when it is
// scaled to the given number of stitches per row.
func (i *ImageInfo) StitchRows(width int) int {
	return scaledHeight(i.Width, i.Height, width)
}

// LoadImageInfo loads a photo through the cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
