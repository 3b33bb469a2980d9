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

package devices

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/net"
)

// Dependency injection points for testing
var (
	netInterfaces = net.Interfaces
	netIOCounters = net.IOCounters
)

// InterfaceInfo represents a network interface with its cumulative
// traffic counters.
type InterfaceInfo struct {
	Name       string
	MacAddress string
	Addresses  []string
	RxBytes    uint64
	TxBytes    uint64
}

// ListInterfaces returns the network interfaces that carry addresses,
// joined with their cumulative byte counters.
func ListInterfaces() ([]InterfaceInfo, error) {
	interfaces, err := netInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get network interfaces: %w", err)
	}

	counters := make(map[string]net.IOCountersStat)
	ioCounters, err := netIOCounters(true)
	if err == nil {
		for _, counter := range ioCounters {
			counters[counter.Name] = counter
		}
	}
	// Counter errors are not fatal for listing; interfaces still show
	// with zero counters.

	result := make([]InterfaceInfo, 0)

	for _, iface := range interfaces {
		if len(iface.Addrs) == 0 {
			continue
		}

		addresses := make([]string, 0, len(iface.Addrs))
		for _, addr := range iface.Addrs {
			addresses = append(addresses, addr.Addr)
		}

		info := InterfaceInfo{
			Name:       iface.Name,
			MacAddress: iface.HardwareAddr,
			Addresses:  addresses,
		}
		if counter, ok := counters[iface.Name]; ok {
			info.RxBytes = counter.BytesRecv
			info.TxBytes = counter.BytesSent
		}

		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// FormatInterfacesTable formats interface information as a table.
func FormatInterfacesTable(interfaces []InterfaceInfo) string {
	var sb strings.Builder

	sb.WriteString("\nAvailable Network Interfaces:\n")
	sb.WriteString(strings.Repeat("=", 90))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-20s %-17s %16s %16s %s\n", "INTERFACE", "MAC ADDRESS", "RX BYTES", "TX BYTES", "IP ADDRESSES"))
	sb.WriteString(strings.Repeat("-", 90))
	sb.WriteString("\n")

	for _, n := range interfaces {
		mac := n.MacAddress
		if mac == "" {
			mac = "N/A"
		}

		firstIP := "N/A"
		if len(n.Addresses) > 0 {
			firstIP = n.Addresses[0]
		}

		sb.WriteString(fmt.Sprintf("%-20s %-17s %16s %16s %s\n",
			n.Name,
			mac,
			humanize.Comma(int64(n.RxBytes)),
			humanize.Comma(int64(n.TxBytes)),
			firstIP,
		))

		// Additional IPs on their own lines
		for i := 1; i < len(n.Addresses); i++ {
			sb.WriteString(fmt.Sprintf("%-20s %-17s %16s %16s %s\n", "", "", "", "", n.Addresses[i]))
		}
	}

	sb.WriteString(strings.Repeat("=", 90))
	sb.WriteString("\n")

	return sb.String()
}
