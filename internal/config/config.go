/*
 * MIT License
 *
 * Copyright (c) 2026 Nguyen Thanh Phuong
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Modes selects which metric families go into the status line.
type Modes struct {
	Net       bool // network throughput (down, up)
	CPU       bool // CPU utilization percentage
	Mem       bool // memory usage
	MemDetail bool // render memory as used/total sizes instead of a percentage
}

// Any reports whether at least one metric family is selected.
func (m Modes) Any() bool {
	return m.Net || m.CPU || m.Mem
}

// Config represents application configuration.
type Config struct {
	Modes     Modes
	WithIcons bool          // glyph prefixes instead of text labels
	FixLength bool          // width-fitted values instead of fixed two decimals
	Interval  time.Duration // repeat interval; zero means single-shot
	Count     int           // stop after N lines in repeating mode (0 = until signal)

	// Filters
	IncludeInterfaces []string // Network interfaces to monitor (empty = all physical)
	ExcludeInterfaces []string // Network interfaces to exclude

	// Logging
	LogLevel string // Log level: debug, info, warn, error
	LogFile  string // Log file path (empty = stderr)
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
	MaxInterval     = 1 * time.Hour
	MaxLineCount    = 1_000_000
)

// fileConfig mirrors the optional YAML config file. Pointer fields
// distinguish "not set" from an explicit zero value.
type fileConfig struct {
	WithIcons         *bool    `yaml:"with_icons"`
	FixLength         *bool    `yaml:"fix_length"`
	IntervalSec       *int     `yaml:"interval_sec"`
	Count             *int     `yaml:"count"`
	IncludeInterfaces []string `yaml:"include_interfaces"`
	ExcludeInterfaces []string `yaml:"exclude_interfaces"`
	LogLevel          *string  `yaml:"log_level"`
	LogFile           *string  `yaml:"log_file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// ApplyFile merges settings from a YAML file into the config. Only
// keys present in the file are applied, so explicit flags can still
// override afterwards.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.WithIcons != nil {
		c.WithIcons = *fc.WithIcons
	}
	if fc.FixLength != nil {
		c.FixLength = *fc.FixLength
	}
	if fc.IntervalSec != nil {
		c.Interval = time.Duration(*fc.IntervalSec) * time.Second
	}
	if fc.Count != nil {
		c.Count = *fc.Count
	}
	if len(fc.IncludeInterfaces) > 0 {
		c.IncludeInterfaces = fc.IncludeInterfaces
	}
	if len(fc.ExcludeInterfaces) > 0 {
		c.ExcludeInterfaces = fc.ExcludeInterfaces
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		c.LogFile = *fc.LogFile
	}

	return nil
}

// ParseCommaSeparated parses a comma-separated string into a slice of
// trimmed strings.
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Modes.Any() {
		return errors.New("no metric mode selected")
	}

	if c.Interval < 0 {
		return errors.New("interval must not be negative")
	}

	if c.Interval > MaxInterval {
		return fmt.Errorf("interval must not exceed %v", MaxInterval)
	}

	if c.Count < 0 {
		return errors.New("count must not be negative")
	}

	if c.Count > MaxLineCount {
		return fmt.Errorf("count must not exceed %d", MaxLineCount)
	}

	if c.Count > 0 && c.Interval <= 0 {
		return errors.New("count requires a positive interval")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// String returns a human-readable representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Net=%t, CPU=%t, Mem=%t, WithIcons=%t, Interval=%v, Count=%d}",
		c.Modes.Net, c.Modes.CPU, c.Modes.Mem, c.WithIcons, c.Interval, c.Count)
}
