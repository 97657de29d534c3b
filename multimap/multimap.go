// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package multimap provides a map that accumulates every value seen for a key.
package multimap

import (
	"sort"
	"sync"
)

// A Map associates each key with the list of values added for it, in the
// order they were added. Values are not deduplicated. The zero value is an
// empty map. A Map is safe to use from multiple concurrent goroutines and must
// not be copied after first use.
type Map struct {
	mu     sync.Mutex
	values map[string][]string
}

// New returns a new empty map.
func New() *Map {
	return &Map{values: make(map[string][]string)}
}

// Accumulate appends value to the list for key and reports whether the key
// already had values before the call. For a new key, the list becomes
// []string{value} and Accumulate returns false.
func (m *Map) Accumulate(key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	prev, exists := m.values[key]
	m.values[key] = append(prev, value)
	return exists
}

// Values returns a copy of the values added for key, or nil if there are none.
func (m *Map) Values(key string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := m.values[key]
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

// Get returns the last value added for key. If there are no values associated
// with the key, Get returns the empty string.
func (m *Map) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := m.values[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Len returns the number of distinct keys.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	m.mu.Lock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	sort.Strings(keys)
	return keys
}
