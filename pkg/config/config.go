// Copyright (c) 2025 Chakib Ben Ziane <contact@blob42.xyz>  and [`temply` contributors](https://github.com/blob42/temply/graphs/contributors).
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of Temply.
//
// Temply is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// Temply is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with temply.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads the optional TOML configuration file. Packages own
// their configuration section: they declare a struct with defaults and
// register it with RegisterConfigurator from an init function.
//
//	var Config = &watcherConf{Debounce: 100 * time.Millisecond}
//
//	func init() {
//		config.RegisterConfigurator("watcher", config.AsConfigurator(Config))
//	}
//
// Sections missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"

	"github.com/blob42/temply/pkg/logging"
)

const TagName = "toml"

var (
	log = logging.GetLogger("config")

	mu            sync.Mutex
	configurators = map[string]Configurator{}
)

// A Configurator owns one section of the configuration file.
type Configurator interface {
	// Decode loads a raw TOML section into the underlying struct.
	Decode(section any) error

	// Map returns the current values keyed by their TOML names.
	Map() map[string]any
}

type structConfigurator struct {
	ptr any
}

// AsConfigurator wraps a pointer to a struct with `toml` tags.
func AsConfigurator(ptr any) Configurator {
	return &structConfigurator{ptr}
}

func (sc *structConfigurator) Decode(section any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          TagName,
		Result:           sc.ptr,
	})
	if err != nil {
		return err
	}
	return dec.Decode(section)
}

func (sc *structConfigurator) Map() map[string]any {
	s := structs.New(sc.ptr)
	s.TagName = TagName
	return s.Map()
}

func RegisterConfigurator(name string, c Configurator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := configurators[name]; exists {
		panic(fmt.Sprintf("config section %q registered twice", name))
	}
	configurators[name] = c
}

// Sections returns the registered section names in sorted order.
func Sections() []string {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(configurators))
	for name := range configurators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile decodes the TOML file at path into the registered sections. A
// missing file is not an error.
func LoadFile(path string) error {
	if path == "" {
		return nil
	}

	var raw map[string]any
	_, err := toml.DecodeFile(path, &raw)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("no config file at %s, using defaults", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err = apply(raw); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	log.Debugf("loaded config from %s", path)
	return nil
}

// Load decodes TOML from r into the registered sections.
func Load(r io.Reader) error {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return err
	}
	return apply(raw)
}

func apply(raw map[string]any) error {
	mu.Lock()
	defer mu.Unlock()

	for name, section := range raw {
		c, ok := configurators[name]
		if !ok {
			log.Warningf("unknown config section [%s]", name)
			continue
		}
		if err := c.Decode(section); err != nil {
			return fmt.Errorf("section [%s]: %w", name, err)
		}
	}
	return nil
}

// Dump writes the effective configuration, one `section.key = value` line
// per setting.
func Dump(w io.Writer) error {
	for _, name := range Sections() {
		mu.Lock()
		values := configurators[name].Map()
		mu.Unlock()

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "%s.%s = %v\n", name, k, values[k]); err != nil {
				return err
			}
		}
	}
	return nil
}
