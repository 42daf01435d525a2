// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type section struct {
	Source string `gluamapper:"source" yaml:"source"`
	Count  int    `gluamapper:"count" yaml:"count"`
	Verify bool   `gluamapper:"verify" yaml:"verify"`
}

type testConfiguration struct {
	Name    string            `gluamapper:"name" yaml:"name"`
	Section section           `gluamapper:"section" yaml:"section"`
	Levels  map[string]string `gluamapper:"levels" yaml:"levels"`
}

const luaText = `
local count = 40 + 2
return {
    name = "lua " .. arg[0]:match("[^/]*$"),
    section = {
        count = count,
    },
    levels = {
        main = "info",
    },
}
`

const yamlText = `
name: yaml
section:
  count: 17
  verify: false
levels:
  main: debug
`

func writeFile(t *testing.T, dir string, name string, text string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write: %q error: %s", fileName, err)
	}
	return fileName
}

func defaults() *testConfiguration {
	return &testConfiguration{
		Name: "default",
		Section: section{
			Source: "sequential",
			Count:  1000,
			Verify: true,
		},
	}
}

func TestLua(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.lua", luaText)

	config := defaults()
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "lua test.lua", config.Name, "wrong name")
	assert.Equal(t, 42, config.Section.Count, "wrong count")
	assert.Equal(t, "sequential", config.Section.Source, "default not kept")
	assert.True(t, config.Section.Verify, "default not kept")
	assert.Equal(t, "info", config.Levels["main"], "wrong level")
}

func TestYAML(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.yaml", yamlText)

	config := defaults()
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "yaml", config.Name, "wrong name")
	assert.Equal(t, 17, config.Section.Count, "wrong count")
	assert.Equal(t, "sequential", config.Section.Source, "default not kept")
	assert.False(t, config.Section.Verify, "verify not overridden")
	assert.Equal(t, "debug", config.Levels["main"], "wrong level")
}

func TestErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	luaFile := writeFile(t, dir, "test.lua", luaText)
	notTable := writeFile(t, dir, "number.lua", "return 42\n")
	badLua := writeFile(t, dir, "bad.lua", "return {\n")
	unknown := writeFile(t, dir, "test.json", "{}")

	config := defaults()

	err = configuration.ParseConfigurationFile(luaFile, *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value accepted")

	n := 0
	err = configuration.ParseConfigurationFile(luaFile, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "int pointer accepted")

	err = configuration.ParseConfigurationFile(notTable, config)
	assert.Equal(t, fault.ErrNoConfigurationTable, err, "number accepted")

	err = configuration.ParseConfigurationFile(badLua, config)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(unknown, config)
	assert.Equal(t, fault.ErrUnsupportedConfiguration, err, "json accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.yaml"), config)
	assert.NotNil(t, err, "missing file accepted")
}
