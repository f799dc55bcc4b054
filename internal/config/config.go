// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

const (
	envFile  = "WORDLE_CFG_FILE"
	fileName = "wordle.yaml"
)

// Type is a loaded wordle.yaml. Namespace is the running command ("match",
// "info", ...); keys under it shadow the top-level ones.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration.
var Config Type

func init() {
	_, _ = Load()
}

// GetInt returns the int at key. YAML may decode whole numbers as int, int64
// or float64; all are accepted and floats are truncated.
func GetInt(key string, defaultValue ...int) (int, error) {
	return value(key, defaultValue, func(v any) (int, bool) {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
		return 0, false
	})
}

// GetString returns the string at key.
func GetString(key string, defaultValue ...string) (string, error) {
	return value(key, defaultValue, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

// value resolves key and converts it. A single default is returned when the
// key is absent; a present value of the wrong type is always an error.
func value[T any](key string, defaults []T, convert func(any) (T, bool)) (T, error) {
	var zero T
	raw, err := lookup(key)
	if err != nil {
		if len(defaults) == 1 {
			return defaults[0], nil
		}
		return zero, err
	}
	v, ok := convert(raw)
	if !ok {
		return zero, fmt.Errorf("%s: value is a %T, want %T", key, raw, zero)
	}
	return v, nil
}

// Load reads the config file into Config, keeping the current Namespace.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

// Path returns the config file location, or "" when there is none.
func Path() string {
	path, _ := getConfigFile()
	return path
}

func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// keys lists the candidates for key, namespaced first.
func (cfg *Type) keys(key string) []string {
	if cfg.Namespace == "" {
		return []string{key}
	}
	return []string{cfg.Namespace + "." + key, key}
}

func (cfg *Type) get(key string) (any, error) {
	candidates := cfg.keys(key)
	for _, k := range candidates {
		if v, ok := walk(cfg.Data, strings.Split(k, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no valid path found among: %v", candidates)
}

// walk descends a decoded YAML tree along path.
func walk(node any, path []string) (any, bool) {
	for _, part := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[part]; !ok {
			return nil, false
		}
	}
	return node, true
}

// getConfigFile returns $WORDLE_CFG_FILE when set, else wordle.yaml in
// os.UserConfigDir. The file must exist and must not be a directory.
func getConfigFile() (string, error) {
	if path := os.Getenv(envFile); path != "" {
		if err := regularFile(path); err != nil {
			return "", fmt.Errorf("%s: %w", envFile, err)
		}
		log.Debugf("using config file from %s: %s", envFile, path)
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName)
	if err := regularFile(path); err != nil {
		return "", errors.New("no config file found in standard locations")
	}
	log.Debugf("using config file: %s", path)
	return path, nil
}

func regularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("config path is a directory: %s", path)
	}
	return nil
}
