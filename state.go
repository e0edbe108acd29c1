/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package goap

import "sort"

// WorldState is the key/value store the core reads and writes. Hosts supply
// their own implementation (agent memory, ECS component store, etc);
// MapWorldState below is a minimal reference implementation used by
// internal/domainconfig and the tests.
//
// Keys are declared by the host at setup. The core neither adds nor removes
// keys, only reads and writes values at existing keys (spec.md section 3).
type WorldState interface {
	// Get returns the current value for key, and false if key was never
	// declared.
	Get(key string) (value Value, ok bool)
	// Set writes value to an already-declared key.
	Set(key string, value Value)
	// Keys enumerates every declared key, for the initial consistency
	// check (spec.md section 3).
	Keys() []string
}

// MapWorldState is a non-concurrent-safe WorldState backed by a plain map.
type MapWorldState map[string]Value

// NewWorldState builds a MapWorldState from an initial key/value set.
func NewWorldState(initial map[string]Value) MapWorldState {
	w := make(MapWorldState, len(initial))
	for k, v := range initial {
		w[k] = v
	}
	return w
}

func (w MapWorldState) Get(key string) (Value, bool) {
	v, ok := w[key]
	return v, ok
}

func (w MapWorldState) Set(key string, value Value) { w[key] = value }

func (w MapWorldState) Keys() []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
