// Package config loads the render queue settings from JSON, TOML or YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"GopherQueue/internal/queue"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// QueueConfig configures a RenderQueue and the frame loop around it
type QueueConfig struct {
	// InitialListSize is the starting capacity of every bucket list
	InitialListSize int `json:"initial_list_size" toml:"initial_list_size" yaml:"initial_list_size"`
	// Comparators maps bucket names to comparator names, buckets left out
	// keep their default comparator
	Comparators map[string]string `json:"comparators" toml:"comparators" yaml:"comparators"`
	// GuiDescending draws higher Z gui geometries first
	GuiDescending  bool `json:"gui_descending" toml:"gui_descending" yaml:"gui_descending"`
	FrustumCulling bool `json:"frustum_culling" toml:"frustum_culling" yaml:"frustum_culling"`
	// RenderTranslucent draws the Translucent bucket with the viewport
	RenderTranslucent bool `json:"render_translucent" toml:"render_translucent" yaml:"render_translucent"`

	LogLevel       string `json:"log_level" toml:"log_level" yaml:"log_level"`
	LogDevelopment bool   `json:"log_development" toml:"log_development" yaml:"log_development"`
}

func Default() QueueConfig {
	return QueueConfig{
		InitialListSize:   queue.DefaultSize,
		Comparators:       map[string]string{},
		FrustumCulling:    true,
		RenderTranslucent: true,
		LogLevel:          "info",
	}
}

// Load reads path on top of the defaults, the format follows the extension
func Load(path string) (QueueConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks bucket and comparator names and the list size
func (c QueueConfig) Validate() error {
	if c.InitialListSize < 0 {
		return fmt.Errorf("%w: initial_list_size %d", ErrInvalidConfig, c.InitialListSize)
	}
	for bucketName, cmpName := range c.Comparators {
		b, err := queue.ParseBucket(bucketName)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if b == queue.Inherit {
			return fmt.Errorf("%w: comparator for Inherit bucket", ErrInvalidConfig)
		}
		if _, err := queue.NewComparator(cmpName); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// BuildQueue creates a render queue with the configured comparators
func BuildQueue(c QueueConfig, log *zap.Logger) (*queue.RenderQueue, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	q := queue.NewRenderQueue(queue.WithListSize(c.InitialListSize), queue.WithLogger(log))
	if err := Apply(c, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Apply installs the configured comparators on q. Content already queued in
// the affected buckets is dropped, so call it between frames.
func Apply(c QueueConfig, q *queue.RenderQueue) error {
	for bucketName, cmpName := range c.Comparators {
		b, err := queue.ParseBucket(bucketName)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cmp, err := queue.NewComparator(cmpName)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if gui, ok := cmp.(*queue.GuiComparator); ok {
			gui.Descending = c.GuiDescending
		}
		if err := q.SetGeometryComparator(b, cmp); err != nil {
			return err
		}
	}

	if _, overridden := lookupBucket(c.Comparators, queue.Gui); !overridden && c.GuiDescending {
		if err := q.SetGeometryComparator(queue.Gui, &queue.GuiComparator{Descending: true}); err != nil {
			return err
		}
	}
	return nil
}

func lookupBucket(comparators map[string]string, b queue.Bucket) (string, bool) {
	for name, cmp := range comparators {
		if strings.EqualFold(name, b.String()) {
			return cmp, true
		}
	}
	return "", false
}
