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

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/internal/format"
	"github.com/statbar/statbar/internal/runner"
	"github.com/statbar/statbar/internal/sampler"
	"github.com/statbar/statbar/internal/source"
	"github.com/statbar/statbar/pkg/version"
)

var (
	// Status-line flags
	modeNet           bool
	modeCPU           bool
	modeMem           bool
	modeCPUMem        bool
	memDetail         bool
	withIcons         bool
	fixLength         bool
	intervalSec       int
	lineCount         int
	includeInterfaces string
	excludeInterfaces string
)

func init() {
	flags := rootCmd.Flags()

	// Mode selection
	flags.BoolVar(&modeNet, "net", false,
		"Show network throughput (down, up)")
	flags.BoolVar(&modeCPU, "cpu", false,
		"Show CPU utilization")
	flags.BoolVar(&modeMem, "mem", false,
		"Show memory usage")
	flags.BoolVar(&modeCPUMem, "cpu-mem", false,
		"Show CPU utilization and memory usage")

	// Display options
	flags.BoolVar(&withIcons, "with-icons", false,
		"Use glyph prefixes instead of text labels")
	flags.BoolVar(&memDetail, "mem-detail", false,
		"Render memory as used/total sizes instead of a percentage")
	flags.BoolVar(&fixLength, "fix-length", false,
		"Fit values into a fixed width instead of two decimals")

	// Loop control
	flags.IntVar(&intervalSec, "interval", 0,
		"Repeat every N seconds (0 = single-shot)")
	flags.IntVar(&lineCount, "count", 0,
		"Stop after N lines in repeating mode (0 = until signal)")

	// Filter flags
	flags.StringVar(&includeInterfaces, "include-interfaces", "",
		"Comma-separated list of network interfaces to monitor (empty = all physical)")
	flags.StringVar(&excludeInterfaces, "exclude-interfaces", "",
		"Comma-separated list of network interfaces to exclude")
}

// buildConfig creates a Config from the config file and parsed flags.
// Explicit flags override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New()

	if configFile != "" {
		if err := cfg.ApplyFile(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("with-icons") {
		cfg.WithIcons = withIcons
	}
	if flags.Changed("fix-length") {
		cfg.FixLength = fixLength
	}
	if flags.Changed("interval") {
		cfg.Interval = time.Duration(intervalSec) * time.Second
	}
	if flags.Changed("count") {
		cfg.Count = lineCount
	}
	if flags.Changed("include-interfaces") {
		cfg.IncludeInterfaces = config.ParseCommaSeparated(includeInterfaces)
	}
	if flags.Changed("exclude-interfaces") {
		cfg.ExcludeInterfaces = config.ParseCommaSeparated(excludeInterfaces)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	// Mode flags always come from the command line.
	cfg.Modes = config.Modes{
		Net:       modeNet,
		CPU:       modeCPU || modeCPUMem,
		Mem:       modeMem || modeCPUMem,
		MemDetail: memDetail,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// runLine is the status-line entry point.
func runLine(cmd *cobra.Command, args []string) error {
	if !modeNet && !modeCPU && !modeMem && !modeCPUMem {
		return cmd.Help()
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := InitLogger(cfg.LogLevel, cfg.LogFile)
	logger.Debug("Starting statbar",
		"version", version.Info(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"config", cfg.String(),
	)

	// Setup context cancelled by process signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Debug("Received signal, stopping", "signal", sig)
		cancel()
	}()

	src := source.NewSystem(cfg.IncludeInterfaces, cfg.ExcludeInterfaces)
	smp := sampler.New(src, cfg.Modes)
	fmtr := format.Formatter{WithIcons: cfg.WithIcons, FixLength: cfg.FixLength}

	return runner.New(smp, fmtr, cfg, os.Stdout, logger).Run(ctx)
}
