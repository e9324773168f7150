// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command spantrace-groupsort reads lines from stdin, groups them by
// length bucket, sorts each group, and dumps the resulting trace as
// Chrome Trace Event Format JSON to stdout. A direct port of cxxtrace's
// example/group_and_sort.cpp, demonstrating a span nested inside a
// parent span per iteration of a loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"code.emberlane.com/spantrace"
	"code.emberlane.com/spantrace/chrometrace"
	"code.emberlane.com/spantrace/clock"
)

var (
	clk     = clock.NewMonotonicClock()
	storage = spantrace.NewGlobalStorage(4096)
	cfg     = spantrace.NewConfig(storage, clk)
)

func main() {
	root := &cobra.Command{
		Use:   "spantrace-groupsort",
		Short: "Group and sort stdin lines by length, printing the Chrome trace JSON",
		RunE:  run,
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	lines := readLines(os.Stdin)
	groups := groupLines(lines)
	sortGroupedLines(groups)
	return dumpTrace()
}

func readLines(r *os.File) []string {
	span := spantrace.Enter(cfg, "example", "read_lines")
	defer span.End()

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func groupLines(lines []string) map[int][]string {
	span := spantrace.Enter(cfg, "example", "group_lines")
	defer span.End()

	groups := make(map[int][]string)
	for _, line := range lines {
		key := len(line) / 8
		groups[key] = append(groups[key], line)
	}
	return groups
}

func sortGroupedLines(groups map[int][]string) {
	span := spantrace.Enter(cfg, "example", "sort_grouped_lines")
	defer span.End()

	for _, lines := range groups {
		groupSpan := spantrace.Enter(cfg, "example", "sort group")
		sort.Strings(lines)
		groupSpan.End()
	}
}

func dumpTrace() error {
	snap, err := storage.TakeAllSamples(clk)
	if err != nil {
		return err
	}
	return chrometrace.NewWriter(os.Stdout).WriteSnapshot(snap)
}
