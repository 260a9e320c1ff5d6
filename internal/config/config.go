package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings padview reads from its config file.
type Config struct {
	APIURL         string
	PageSize       int
	RequestTimeout time.Duration
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/padview/config.toml"
	defaultAPIURL         = "https://api.spacexdata.com/v4/launchpads"
	defaultPageSize       = 5
	defaultRequestTimeout = 10 * time.Second
	defaultLogFile        = "~/.local/state/padview/padview.log"
)

// allowedPageSizes mirrors the options offered by the page-size selector.
var allowedPageSizes = []int{5, 10, 15}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		PageSize:       defaultPageSize,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the padview config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string  `toml:"api_url"`
		PageSize       int     `toml:"page_size"`
		RequestTimeout string  `toml:"request_timeout"`
		LogFile        *string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if api := strings.TrimSpace(raw.APIURL); api != "" {
		cfg.APIURL = api
	}

	if raw.PageSize != 0 {
		if !ValidPageSize(raw.PageSize) {
			return Config{}, fmt.Errorf("page_size %d must be one of 5, 10, 15", raw.PageSize)
		}
		cfg.PageSize = raw.PageSize
	}

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("request_timeout must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	// An explicit empty log_file disables logging.
	if raw.LogFile != nil {
		logFile := strings.TrimSpace(*raw.LogFile)
		if logFile == "" {
			cfg.LogFile = ""
		} else {
			cfg.LogFile = mustExpand(logFile)
		}
	}

	return cfg, nil
}

// ValidPageSize reports whether size is one of the selectable page sizes.
func ValidPageSize(size int) bool {
	for _, allowed := range allowedPageSizes {
		if size == allowed {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
