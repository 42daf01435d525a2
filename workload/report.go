// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Phase - timing of one phase of a run
type Phase struct {
	Name       string        `json:"name"`
	Operations int           `json:"operations"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Report - the result of a successful run
type Report struct {
	Phases     []Phase    `json:"phases"`
	Keys       int        `json:"keys"`
	Distinct   int        `json:"distinct"`
	Statistics Statistics `json:"statistics"`
	Count      int        `json:"count"`
	Height     int        `json:"height"`
	Allocated  int        `json:"allocated"`
	Free       int        `json:"free"`
}

// HeightBound - the worst case AVL height for n nodes,
// 1.44·log2(n+2)
func HeightBound(n int) int {
	return int(math.Floor(1.4405 * math.Log2(float64(n)+2)))
}

// Print - write a human readable summary
func (report *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "keys:        %d  (distinct: %d)\n", report.Keys, report.Distinct)
	for _, p := range report.Phases {
		perOp := time.Duration(0)
		if p.Operations > 0 {
			perOp = p.Elapsed / time.Duration(p.Operations)
		}
		fmt.Fprintf(w, "%-12s %8d ops  %12s  (%s/op)\n", p.Name+":", p.Operations, p.Elapsed, perOp)
	}
	s := report.Statistics
	fmt.Fprintf(w, "inserts:     %d  replaced: %d\n", s.Inserts, s.Replacements)
	fmt.Fprintf(w, "searches:    %d  hits: %d\n", s.Searches, s.Hits)
	fmt.Fprintf(w, "probes:      %d  bloom maybe: %d\n", s.Probes, s.Maybe)
	fmt.Fprintf(w, "deletes:     %d\n", s.Deletes)
	fmt.Fprintf(w, "final count: %d  height: %d  (bound: %d)\n", report.Count, report.Height, HeightBound(report.Count))
	fmt.Fprintf(w, "nodes:       %d allocated  %d free\n", report.Allocated, report.Free)
}
