// Package config provides the configuration loader for sectx.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the settings for documents in dir. The nearest config file
// found walking up from dir is merged over the defaults.
func (l *Loader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, err := l.findConfiguration(dir)
	if err != nil {
		return cfg, err
	}
	if configPath == "" {
		return cfg, nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return cfg, zerr.With(err, "path", configPath)
	}
	if err := l.apply(&cfg, &file, filepath.Dir(configPath)); err != nil {
		return cfg, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

// findConfiguration returns the nearest config file at or above dir, or ""
// when there is none.
func (l *Loader) findConfiguration(dir string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) apply(cfg *domain.Config, file *Configfile, configDir string) error {
	if file.Enabled != nil {
		cfg.Enabled = *file.Enabled
	}
	if file.AutoUpdate != nil {
		cfg.AutoUpdate = *file.AutoUpdate
	}
	if file.CacheSuffix != "" {
		cfg.CacheSuffix = file.CacheSuffix
	}
	if file.CacheDir != "" {
		cfg.CacheDir = resolvePath(configDir, file.CacheDir)
	}
	if file.SummaryTag != "" {
		cfg.SummaryTag = file.SummaryTag
	}
	if file.FilesTag != "" {
		cfg.FilesTag = file.FilesTag
	}
	if file.AttachmentDir != "" {
		cfg.AttachmentDir = file.AttachmentDir
	}
	if file.BinaryProbeBytes != nil {
		if *file.BinaryProbeBytes > 0 {
			cfg.BinaryProbeBytes = *file.BinaryProbeBytes
		} else {
			l.Logger.Warn(fmt.Sprintf("'binary_probe_bytes' must be positive, using %d", cfg.BinaryProbeBytes))
		}
	}

	if s := file.Summarizer; s != nil {
		cfg.Summarizer.Command = s.Command
		if s.SystemPrompt != "" {
			cfg.Summarizer.SystemPrompt = s.SystemPrompt
		}
		if s.Timeout != "" {
			timeout, err := time.ParseDuration(s.Timeout)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidTimeout.Error()), "timeout", s.Timeout)
			}
			if timeout <= 0 {
				return zerr.With(domain.ErrInvalidTimeout, "timeout", s.Timeout)
			}
			cfg.Summarizer.Timeout = timeout
		}
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the document
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
