// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
)

// operation counters, updated by the runner and read by the reporter
type counters struct {
	inserts      counter.Counter
	replacements counter.Counter
	searches     counter.Counter
	hits         counter.Counter
	deletes      counter.Counter
	probes       counter.Counter
	maybe        counter.Counter
}

// Statistics - a snapshot of the operation counters
type Statistics struct {
	Inserts      uint64 `json:"inserts"`
	Replacements uint64 `json:"replacements"`
	Searches     uint64 `json:"searches"`
	Hits         uint64 `json:"hits"`
	Deletes      uint64 `json:"deletes"`
	Probes       uint64 `json:"probes"`
	Maybe        uint64 `json:"maybe"`
}

func (c *counters) snapshot() Statistics {
	return Statistics{
		Inserts:      c.inserts.Uint64(),
		Replacements: c.replacements.Uint64(),
		Searches:     c.searches.Uint64(),
		Hits:         c.hits.Uint64(),
		Deletes:      c.deletes.Uint64(),
		Probes:       c.probes.Uint64(),
		Maybe:        c.maybe.Uint64(),
	}
}

// Reporter - background process to log the runner's counters at a
// fixed interval
type Reporter struct {
	runner   *Runner
	interval time.Duration
	log      *logger.L
	reports  counter.Counter
}

// NewReporter - create a reporter for a runner
func NewReporter(runner *Runner, interval time.Duration, log *logger.L) *Reporter {
	return &Reporter{
		runner:   runner,
		interval: interval,
		log:      log,
	}
}

// Run - log a line each interval until shutdown
func (reporter *Reporter) Run(args interface{}, shutdown <-chan struct{}) {

	reporter.log.Info("reporter starting…")

	ticker := time.NewTicker(reporter.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s := reporter.runner.Statistics()
			reporter.log.Infof("inserts: %d  replaced: %d  searches: %d  hits: %d  deletes: %d  probes: %d",
				s.Inserts, s.Replacements, s.Searches, s.Hits, s.Deletes, s.Probes)
			reporter.reports.Increment()
		}
	}

	reporter.log.Info("reporter stopped")
}

// Reports - number of lines logged so far
func (reporter *Reporter) Reports() uint64 {
	return reporter.reports.Uint64()
}
