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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "Single value",
			input:    "eth0",
			expected: []string{"eth0"},
		},
		{
			name:     "Multiple values",
			input:    "eth0,wlan0",
			expected: []string{"eth0", "wlan0"},
		},
		{
			name:     "Whitespace handling",
			input:    " eth0 , wlan0 ",
			expected: []string{"eth0", "wlan0"},
		},
		{
			name:     "Empty parts",
			input:    "eth0,,wlan0",
			expected: []string{"eth0", "wlan0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommaSeparated(tt.input)
			if len(got) != len(tt.expected) {
				t.Errorf("ParseCommaSeparated() length = %v, want %v", len(got), len(tt.expected))
				return
			}
			for i, v := range got {
				if v != tt.expected[i] {
					t.Errorf("ParseCommaSeparated()[%d] = %v, want %v", i, v, tt.expected[i])
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "Valid single-shot net mode",
			config: Config{
				Modes:    Modes{Net: true},
				LogLevel: "info",
			},
			wantErr: false,
		},
		{
			name: "Valid repeating cpu-mem mode",
			config: Config{
				Modes:    Modes{CPU: true, Mem: true},
				Interval: 2 * time.Second,
				LogLevel: "debug",
			},
			wantErr: false,
		},
		{
			name: "No mode selected",
			config: Config{
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "Negative interval",
			config: Config{
				Modes:    Modes{Net: true},
				Interval: -1 * time.Second,
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "Interval too large",
			config: Config{
				Modes:    Modes{Net: true},
				Interval: 2 * time.Hour,
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "Count without interval",
			config: Config{
				Modes:    Modes{Net: true},
				Count:    3,
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "Negative count",
			config: Config{
				Modes:    Modes{Net: true},
				Interval: time.Second,
				Count:    -1,
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "Invalid log level",
			config: Config{
				Modes:    Modes{Net: true},
				LogLevel: "verbose",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ApplyFile(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "statbar.yaml")
	content := `
with_icons: true
interval_sec: 5
count: 10
exclude_interfaces:
  - docker0
  - virbr0
log_level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	cfg.FixLength = true // not in file, must survive the merge
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("ApplyFile() error = %v", err)
	}

	if !cfg.WithIcons {
		t.Error("ApplyFile() WithIcons = false, want true")
	}
	if cfg.Interval != 5*time.Second {
		t.Errorf("ApplyFile() Interval = %v, want 5s", cfg.Interval)
	}
	if cfg.Count != 10 {
		t.Errorf("ApplyFile() Count = %d, want 10", cfg.Count)
	}
	if len(cfg.ExcludeInterfaces) != 2 || cfg.ExcludeInterfaces[0] != "docker0" {
		t.Errorf("ApplyFile() ExcludeInterfaces = %v, want [docker0 virbr0]", cfg.ExcludeInterfaces)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("ApplyFile() LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if !cfg.FixLength {
		t.Error("ApplyFile() clobbered FixLength not present in the file")
	}
}

func TestConfig_ApplyFileMissing(t *testing.T) {
	cfg := New()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ApplyFile() error = nil for missing file, want error")
	}
}

func TestConfig_ApplyFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("with_icons: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.ApplyFile(path); err == nil {
		t.Error("ApplyFile() error = nil for invalid YAML, want error")
	}
}
