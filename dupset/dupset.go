// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package dupset provides a set of identifiers for detecting duplicates.
package dupset

import (
	"sort"
	"sync"
)

// A Set records which identifiers have been observed. Identifiers are never
// removed. The zero value is an empty set. A Set is safe to use from multiple
// concurrent goroutines and must not be copied after first use.
type Set struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// New returns a new set that has already observed the given identifiers.
func New(ids ...string) *Set {
	s := &Set{seen: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.seen[id] = struct{}{}
	}
	return s
}

// IsDuplicate reports whether id has been observed before and marks it as
// observed. The first call for a given id returns false; every later call
// returns true. Concurrent callers are serialized, so exactly one of them
// sees false for a new id.
func (s *Set) IsDuplicate(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seen[id]; dup {
		return true
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[id] = struct{}{}
	return false
}

// Has reports whether id has been observed without marking it.
func (s *Set) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of distinct identifiers observed.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// IDs returns the observed identifiers in sorted order.
func (s *Set) IDs() []string {
	s.mu.Lock()
	ids := make([]string, 0, len(s.seen))
	for id := range s.seen {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Strings(ids)
	return ids
}
