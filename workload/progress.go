// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// a progress bar that does nothing when there is no writer
type progress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, total int, description string) *progress {
	if nil == w || total <= 0 {
		return &progress{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &progress{
		w:   w,
		bar: bar,
	}
}

func (p *progress) step() {
	if nil != p.bar {
		_ = p.bar.Add(1)
	}
}

func (p *progress) finish() {
	if nil != p.bar {
		_ = p.bar.Finish()
		_, _ = io.WriteString(p.w, "\n")
	}
}
