// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command spantrace-small is a minimal demo: it enters two nested spans
// and dumps the resulting trace as Chrome Trace Event Format JSON to
// stdout. A direct port of cxxtrace's example/small.cpp.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"code.emberlane.com/spantrace"
	"code.emberlane.com/spantrace/chrometrace"
	"code.emberlane.com/spantrace/clock"
)

func main() {
	root := &cobra.Command{
		Use:   "spantrace-small",
		Short: "Trace two nested spans and print the Chrome trace JSON",
		RunE:  run,
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	clk := clock.NewMonotonicClock()
	storage := spantrace.NewGlobalStorage(1024)
	cfg := spantrace.NewConfig(storage, clk)

	func() {
		span := spantrace.Enter(cfg, "example", "main")
		defer span.End()
		inner := spantrace.Enter(cfg, "example", "inner")
		defer inner.End()
	}()

	snap, err := storage.TakeAllSamples(clk)
	if err != nil {
		return err
	}
	return chrometrace.NewWriter(os.Stdout).WriteSnapshot(snap)
}
