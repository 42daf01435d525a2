// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Keys - produce the list of keys described by the configuration
//
// random keys may contain duplicates
func Keys(conf *Configuration) ([]avl.StringKey, error) {

	switch conf.Source {
	case SourceSequential, SourceRandom:
		if conf.Count < 0 {
			return nil, fault.ErrInvalidCount
		}
		if conf.Width < 1 || conf.Width > maximumWidth {
			return nil, fault.ErrInvalidKeyWidth
		}
	}

	switch conf.Source {
	case SourceSequential:
		keys := make([]avl.StringKey, conf.Count)
		for i := range keys {
			keys[i] = formatKey(conf.Width, int64(i))
		}
		return keys, nil

	case SourceRandom:
		r := newRand(conf.Seed)
		limit := powerOfTen(conf.Width)
		keys := make([]avl.StringKey, conf.Count)
		for i := range keys {
			keys[i] = formatKey(conf.Width, r.Int63n(limit))
		}
		return keys, nil

	case SourceFile:
		if "" == conf.KeyFile {
			return nil, fault.ErrKeyFileRequired
		}
		f, err := os.Open(conf.KeyFile)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		return readKeys(f)

	default:
		return nil, fault.ErrInvalidKeySource
	}
}

// one key per line, surrounding space is removed and blank lines
// are skipped
func readKeys(r io.Reader) ([]avl.StringKey, error) {
	keys := []avl.StringKey{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s {
			continue
		}
		keys = append(keys, avl.StringKey(s))
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return keys, nil
}

func formatKey(width int, n int64) avl.StringKey {
	return avl.StringKey(fmt.Sprintf("%0*d", width, n))
}

func powerOfTen(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i += 1 {
		p *= 10
	}
	return p
}

// zero seed selects a time based seed
func newRand(seed int64) *rand.Rand {
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
