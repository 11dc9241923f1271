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

// Package database keeps the template list and its backing text file in
// sync. The file holds one escaped template per line. Every local mutation
// rewrites the whole file and every reload replaces the whole list: the last
// writer wins.
package database

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/gofrs/flock"

	"github.com/blob42/temply"
	"github.com/blob42/temply/pkg/logging"
)

const (
	DefaultReadRetries = 3
	DefaultRetryDelay  = 50 * time.Millisecond
)

var (
	log = logging.GetLogger("database")

	ErrEmptyTemplate = errors.New("empty template")
)

type Store struct {
	mu sync.RWMutex

	path string

	// Guards the file against concurrent writers. Lives beside the
	// database since the database itself is replaced on every write.
	lock *flock.Flock

	templates []temply.Template

	// xxhash of the file content last read or written by this store
	checksum uint64

	retries    int
	retryDelay time.Duration
}

type Option func(*Store)

// WithRetries sets how many times a failing read is attempted and the pause
// between attempts.
func WithRetries(attempts int, delay time.Duration) Option {
	return func(s *Store) {
		if attempts < 1 {
			attempts = 1
		}
		s.retries = attempts
		s.retryDelay = delay
	}
}

func New(path string, opts ...Option) *Store {
	s := &Store{
		path:       path,
		lock:       flock.New(path + ".lock"),
		retries:    DefaultReadRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a store from the [database] config section.
func NewFromConfig() *Store {
	return New(ResolvePath(Config.Path), WithRetries(Config.ReadRetries, Config.RetryDelay))
}

func (s *Store) Path() string {
	return s.path
}

// Templates returns a sorted copy of the current list.
func (s *Store) Templates() []temply.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]temply.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

func (s *Store) Contains(t temply.Template) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(t) >= 0
}

// Checksum returns the hash of the content last read or written.
func (s *Store) Checksum() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checksum
}

// Load reads the database file, creating it empty if it does not exist, and
// returns the sorted templates.
func (s *Store) Load() ([]temply.Template, error) {
	data, err := s.readWithRetry()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.replace(data)
	s.mu.Unlock()

	log.Debugf("loaded %d templates from %s", s.Len(), s.path)
	return s.Templates(), nil
}

// Reload re-reads the file after an external change. It reports false
// without touching the list when the content is the one this store last
// read or wrote.
func (s *Store) Reload() (bool, error) {
	data, err := s.readWithRetry()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if xxhash.Checksum64(data) == s.checksum {
		return false, nil
	}
	s.replace(data)
	log.Infof("reloaded %d templates from %s", len(s.templates), s.path)
	return true, nil
}

// Add escapes text and appends it unless an identical template exists. It
// reports whether the list changed. On a failed write the list is left as it
// was.
func (s *Store) Add(text string) (bool, error) {
	if text == "" {
		return false, ErrEmptyTemplate
	}
	t := temply.New(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(t) >= 0 {
		log.Debugf("template %q already present", t)
		return false, nil
	}

	prev := slices.Clone(s.templates)
	s.templates = append(s.templates, t)
	sortTemplates(s.templates)

	if err := s.persist(); err != nil {
		s.templates = prev
		return false, err
	}
	log.Infof("added template %q", t)
	return true, nil
}

// Remove deletes the template if present and reports whether the list
// changed. On a failed write the list is left as it was.
func (s *Store) Remove(t temply.Template) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(t)
	if i < 0 {
		return false, nil
	}

	prev := slices.Clone(s.templates)
	s.templates = append(s.templates[:i], s.templates[i+1:]...)

	if err := s.persist(); err != nil {
		s.templates = prev
		return false, err
	}
	log.Infof("removed template %q", t)
	return true, nil
}

// Persist writes the whole list to the database file.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

func (s *Store) persist() error {
	data := encode(s.templates)

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", s.path, err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			log.Warningf("unlocking %s: %s", s.path, err)
		}
	}()

	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.checksum = xxhash.Checksum64(data)
	return nil
}

func (s *Store) readWithRetry() ([]byte, error) {
	var errs []error

	for attempt := 1; attempt <= s.retries; attempt++ {
		data, err := s.read()
		if err == nil {
			return data, nil
		}

		errs = append(errs, fmt.Errorf("attempt %d: %w", attempt, err))
		log.Warningf("reading %s (attempt %d/%d): %s", s.path, attempt, s.retries, err)

		if attempt < s.retries && s.retryDelay > 0 {
			time.Sleep(s.retryDelay)
		}
	}

	return nil, fmt.Errorf("reading %s: %w", s.path, errors.Join(errs...))
}

func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Infof("creating empty database %s", s.path)
		if err = os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return nil, err
		}
		return nil, os.WriteFile(s.path, nil, 0644)
	}
	return data, err
}

// replace must be called with s.mu held.
func (s *Store) replace(data []byte) {
	s.templates = decode(data)
	s.checksum = xxhash.Checksum64(data)
}

func (s *Store) indexOf(t temply.Template) int {
	for i, existing := range s.templates {
		if existing == t {
			return i
		}
	}
	return -1
}

func decode(data []byte) []temply.Template {
	var templates []temply.Template
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}
		templates = append(templates, temply.Template(line))
	}
	sortTemplates(templates)
	return templates
}

func encode(templates []temply.Template) []byte {
	var buf bytes.Buffer
	for _, t := range templates {
		buf.WriteString(string(t))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func sortTemplates(templates []temply.Template) {
	sort.Slice(templates, func(i, j int) bool {
		return templates[i] < templates[j]
	})
}

// writeFile replaces path with data through a temporary file in the same
// directory so readers never see a partial file.
func writeFile(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
