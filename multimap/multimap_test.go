// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package multimap

import (
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulate(t *testing.T) {
	type step struct {
		key, value string
		want       bool
		wantValues []string
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "SingleKey",
			steps: []step{
				{"1", "1,er,gh,45,epp", false, []string{"1,er,gh,45,epp"}},
				{"1", "1,as,vb,45,abb", true, []string{"1,er,gh,45,epp", "1,as,vb,45,abb"}},
			},
		},
		{
			name: "OrderAndDuplicatesKept",
			steps: []step{
				{"1", "a", false, []string{"a"}},
				{"1", "b", true, []string{"a", "b"}},
				{"1", "a", true, []string{"a", "b", "a"}},
			},
		},
		{
			name: "IndependentKeys",
			steps: []step{
				{"1", "a", false, []string{"a"}},
				{"2", "b", false, []string{"b"}},
				{"1", "c", true, []string{"a", "c"}},
				{"2", "d", true, []string{"b", "d"}},
			},
		},
		{
			name: "EmptyStrings",
			steps: []step{
				{"", "", false, []string{""}},
				{"", "", true, []string{"", ""}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New()
			for i, s := range test.steps {
				if got := m.Accumulate(s.key, s.value); got != s.want {
					t.Errorf("step %d: Accumulate(%q, %q) = %t; want %t", i+1, s.key, s.value, got, s.want)
				}
				if diff := cmp.Diff(s.wantValues, m.Values(s.key)); diff != "" {
					t.Errorf("step %d: Values(%q) (-want +got):\n%s", i+1, s.key, diff)
				}
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	m := new(Map)
	if got := m.Values("x"); got != nil {
		t.Errorf("Values(\"x\") = %q; want nil", got)
	}
	if got := m.Get("x"); got != "" {
		t.Errorf("Get(\"x\") = %q; want empty", got)
	}
	if m.Accumulate("x", "1") {
		t.Error("Accumulate(\"x\", \"1\") = true; want false")
	}
	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	m := New()
	m.Accumulate("k", "a")
	m.Accumulate("k", "b")
	got := m.Values("k")
	got[0] = "mutated"
	if diff := cmp.Diff([]string{"a", "b"}, m.Values("k")); diff != "" {
		t.Errorf("Values(\"k\") after mutating copy (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	m := New()
	m.Accumulate("k", "first")
	m.Accumulate("k", "last")
	if got := m.Get("k"); got != "last" {
		t.Errorf("Get(\"k\") = %q; want %q", got, "last")
	}
}

func TestKeys(t *testing.T) {
	m := New()
	for _, k := range []string{"b", "a", "c", "a"} {
		m.Accumulate(k, "v")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
}

func TestConcurrentAccumulate(t *testing.T) {
	const goroutines = 16
	m := new(Map)
	var mu sync.Mutex
	firsts := 0
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			if !m.Accumulate("k", strconv.Itoa(g)) {
				mu.Lock()
				firsts++
				mu.Unlock()
			}
		}(g)
	}
	wg.Wait()
	if firsts != 1 {
		t.Errorf("Accumulate returned false %d times; want 1", firsts)
	}
	if got := len(m.Values("k")); got != goroutines {
		t.Errorf("len(Values(\"k\")) = %d; want %d", got, goroutines)
	}
}
