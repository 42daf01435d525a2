// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/willf/bloom"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Map - the ordered map operations exercised by the runner
type Map interface {
	Insert(key avl.Item, value interface{}) bool
	Search(key avl.Item) (interface{}, bool)
	Delete(key avl.Item) (interface{}, bool)
	Count() int
	Height() int
	Check() error
}

// Runner - runs one workload against a map
type Runner struct {
	m        Map
	conf     Configuration
	log      *logger.L
	progress io.Writer
	rand     *rand.Rand
	stats    counters

	distinct []avl.StringKey          // first occurrence order
	latest   map[avl.StringKey]string // last value inserted for each key
	filter   *bloom.BloomFilter
	report   *Report
}

// NewRunner - create a runner
//
// progress bars are drawn on the writer when the configuration asks
// for them and the writer is not nil
func NewRunner(m Map, conf *Configuration, log *logger.L, progress io.Writer) *Runner {
	if !conf.Progress {
		progress = nil
	}
	return &Runner{
		m:        m,
		conf:     *conf,
		log:      log,
		progress: progress,
		rand:     newRand(conf.Seed),
	}
}

// Statistics - current operation counts, safe to call from another
// go routine while Run is in progress
func (r *Runner) Statistics() Statistics {
	return r.stats.snapshot()
}

// Run - execute all phases in order, stopping at the first failure
func (r *Runner) Run(keys []avl.StringKey) (*Report, error) {

	r.distinct = make([]avl.StringKey, 0, len(keys))
	r.latest = make(map[avl.StringKey]string, len(keys))

	n := uint(len(keys))
	if n < 1 {
		n = 1
	}
	r.filter = bloom.NewWithEstimates(n, bloomFalseHit)

	r.report = &Report{
		Keys: len(keys),
	}

	phases := []struct {
		name   string
		verify bool
		run    func([]avl.StringKey) (int, error)
	}{
		{"insert", true, r.insertPhase},
		{"search", false, r.searchPhase},
		{"probe", false, r.probePhase},
		{"delete", true, r.deletePhase},
		{"survivors", false, r.survivorPhase},
	}

	for _, phase := range phases {
		r.log.Infof("phase: %s starting…", phase.name)
		start := time.Now()
		operations, err := phase.run(keys)
		elapsed := time.Since(start)
		if nil != err {
			r.log.Errorf("phase: %s failed with error: %s", phase.name, err)
			return nil, err
		}

		if phase.verify && r.conf.Verify {
			if err := r.m.Check(); nil != err {
				r.log.Errorf("phase: %s check failed with error: %s", phase.name, err)
				return nil, err
			}
		}

		r.log.Infof("phase: %s  operations: %d  elapsed: %s", phase.name, operations, elapsed)
		r.report.Phases = append(r.report.Phases, Phase{
			Name:       phase.name,
			Operations: operations,
			Elapsed:    elapsed,
		})
	}

	r.report.Distinct = len(r.distinct)
	r.report.Statistics = r.Statistics()
	r.report.Count = r.m.Count()
	r.report.Height = r.m.Height()
	r.report.Allocated, r.report.Free = avl.Allocated()

	return r.report, nil
}

// insert every key, a repeated key replaces the previous value
func (r *Runner) insertPhase(keys []avl.StringKey) (int, error) {
	bar := newProgress(r.progress, len(keys), "insert")
	defer bar.finish()

	for i, key := range keys {
		value := fmt.Sprintf("data:%s:%d", key, i)
		added := r.m.Insert(key, value)

		_, seen := r.latest[key]
		if added == seen {
			r.log.Errorf("insert: %q  added: %v  previously seen: %v", key, added, seen)
			return i, fault.ErrCountMismatch
		}
		if added {
			r.stats.inserts.Increment()
			r.distinct = append(r.distinct, key)
			r.filter.AddString(key.String())
		} else {
			r.stats.replacements.Increment()
		}
		r.latest[key] = value
		bar.step()
	}

	if r.m.Count() != len(r.distinct) {
		r.log.Errorf("insert: count: %d  expected: %d", r.m.Count(), len(r.distinct))
		return len(keys), fault.ErrCountMismatch
	}
	return len(keys), nil
}

// every distinct key must hold its latest value
func (r *Runner) searchPhase(keys []avl.StringKey) (int, error) {
	bar := newProgress(r.progress, len(r.distinct), "search")
	defer bar.finish()

	for i, key := range r.distinct {
		if err := r.expect(key, r.latest[key]); nil != err {
			return i, err
		}
		bar.step()
	}
	return len(r.distinct), nil
}

// keys the filter has never seen must not be in the map
func (r *Runner) probePhase(keys []avl.StringKey) (int, error) {
	bar := newProgress(r.progress, r.conf.Probes, "probe")
	defer bar.finish()

	for i := 0; i < r.conf.Probes; i += 1 {
		key := r.probeKey()
		r.stats.probes.Increment()
		bar.step()

		if r.filter.TestString(key.String()) {
			r.stats.maybe.Increment()
			continue
		}

		r.stats.searches.Increment()
		if v, ok := r.m.Search(key); ok {
			r.log.Errorf("probe: %q  unexpected value: %v", key, v)
			return i, fault.ErrUnexpectedKey
		}
	}
	return r.conf.Probes, nil
}

// delete a prefix of the distinct keys and ensure they are gone
func (r *Runner) deletePhase(keys []avl.StringKey) (int, error) {
	n := r.deleteCount()
	bar := newProgress(r.progress, n, "delete")
	defer bar.finish()

	for i, key := range r.distinct[:n] {
		v, ok := r.m.Delete(key)
		if !ok {
			r.log.Errorf("delete: %q  not found", key)
			return i, fault.ErrMissingKey
		}
		if v != r.latest[key] {
			r.log.Errorf("delete: %q  value: %v  expected: %q", key, v, r.latest[key])
			return i, fault.ErrValueMismatch
		}
		r.stats.deletes.Increment()
		bar.step()
	}

	for i, key := range r.distinct[:n] {
		r.stats.searches.Increment()
		if v, ok := r.m.Search(key); ok {
			r.log.Errorf("delete: %q  still present with value: %v", key, v)
			return i, fault.ErrUnexpectedKey
		}
	}

	if expected := len(r.distinct) - n; r.m.Count() != expected {
		r.log.Errorf("delete: count: %d  expected: %d", r.m.Count(), expected)
		return n, fault.ErrCountMismatch
	}
	return n, nil
}

// keys that were not deleted must be unaffected
func (r *Runner) survivorPhase(keys []avl.StringKey) (int, error) {
	n := r.deleteCount()
	survivors := r.distinct[n:]

	for i, key := range survivors {
		if err := r.expect(key, r.latest[key]); nil != err {
			return i, err
		}
	}
	return len(survivors), nil
}

// search for a key that must be present with a specific value
func (r *Runner) expect(key avl.StringKey, value string) error {
	r.stats.searches.Increment()
	v, ok := r.m.Search(key)
	if !ok {
		r.log.Errorf("search: %q  not found", key)
		return fault.ErrMissingKey
	}
	if v != value {
		r.log.Errorf("search: %q  value: %v  expected: %q", key, v, value)
		return fault.ErrValueMismatch
	}
	r.stats.hits.Increment()
	return nil
}

// number of distinct keys the delete phase removes
func (r *Runner) deleteCount() int {
	n := r.conf.Delete
	if n < 0 {
		n = len(r.distinct) / 2
	}
	if n > len(r.distinct) {
		n = len(r.distinct)
	}
	return n
}

// a random key, sometimes one of the generated keys
func (r *Runner) probeKey() avl.StringKey {
	if len(r.distinct) > 0 && 0 == r.rand.Intn(4) {
		return r.distinct[r.rand.Intn(len(r.distinct))]
	}
	width := r.conf.Width
	if width < 1 || width >= maximumWidth {
		width = maximumWidth - 1
	}
	return formatKey(width+1, r.rand.Int63n(powerOfTen(width+1)))
}
