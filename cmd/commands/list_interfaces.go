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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statbar/statbar/internal/devices"
)

var listInterfacesCmd = &cobra.Command{
	Use:   "list-interfaces",
	Short: "List available network interfaces",
	Long: `List all network interfaces with their addresses and cumulative
traffic counters. This helps to configure include/exclude filters
accurately.

Examples:
  # List all available interfaces
  statbar list-interfaces

  # Use the output to configure filters
  statbar --net --include-interfaces="eth0"`,
	RunE: runListInterfaces,
}

func init() {
	rootCmd.AddCommand(listInterfacesCmd)
}

func runListInterfaces(cmd *cobra.Command, args []string) error {
	interfaces, err := devices.ListInterfaces()
	if err != nil {
		return fmt.Errorf("failed to list network interfaces: %w", err)
	}

	if len(interfaces) == 0 {
		fmt.Println("No network interfaces found.")
		return nil
	}

	fmt.Print(devices.FormatInterfacesTable(interfaces))

	fmt.Println("\nExample usage:")
	fmt.Printf("  statbar --net --include-interfaces=\"%s\"\n", interfaces[0].Name)
	if len(interfaces) > 1 {
		fmt.Printf("  statbar --net --exclude-interfaces=\"%s\"\n", interfaces[1].Name)
	}
	fmt.Println("\nNotes:")
	fmt.Println("  - Use comma to separate multiple interfaces: --exclude-interfaces=\"lo,docker0\"")
	fmt.Println("  - Exclude filters take priority over include filters")
	fmt.Println("  - Without filters, loopback and virtual interfaces are skipped")

	return nil
}
