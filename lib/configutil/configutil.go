package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// reads a json5 configuration file, merging `<name>.local.<ext>` on top
// of `<name>.<ext>` when it exists, so secrets and machine-specific
// overrides stay out of the committed config.
func ReadConfig[T any](name string) (T, error) {
	var out T

	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(name, ext)
	localName := fmt.Sprintf("%s.local%s", prefix, ext)

	found := false
	for _, f := range []string{name, localName} {
		contents, err := os.ReadFile(f)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return out, err
		}

		var layer T
		err = json5.Unmarshal(contents, &layer)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", f, err)
		}
		err = mergo.Merge(&out, layer, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		if f == localName {
			slog.Info("merging config with local overrides", "local", localName)
		}
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it walks up the filesystem from the cwd until it finds
// a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			parent := filepath.Dir(current)
			if parent == current {
				return defaultOut, os.ErrNotExist
			}
			current = parent
			continue
		}
		return config, err
	}
}
