// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/etc/avltool", "log", "/etc/avltool/log"},
		{"/etc/avltool", "/var/log", "/var/log"},
		{"/etc/avltool/", "./log/../data", "/etc/avltool/data"},
		{"/", "x", "/x"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: wrong path", i)
	}
}

func TestEnsureDirectory(t *testing.T) {
	d, err := ioutil.TempDir("", "paths")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(d)

	nested := filepath.Join(d, "one", "two")
	assert.Nil(t, util.EnsureDirectory(nested), "create failed")
	assert.Nil(t, util.EnsureDirectory(nested), "existing directory rejected")

	fileName := filepath.Join(d, "file")
	if err := ioutil.WriteFile(fileName, []byte("x"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	assert.Equal(t, fault.ErrNotADirectory, util.EnsureDirectory(fileName), "file accepted as directory")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("avltool.log"), "plain name rejected")
	assert.False(t, util.IsPlainName(""), "empty name accepted")
	assert.False(t, util.IsPlainName("log/avltool.log"), "relative path accepted")
	assert.False(t, util.IsPlainName("/tmp/avltool.log"), "absolute path accepted")
}
