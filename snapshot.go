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

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is the partially-resolved goal-state captured alongside a plan
// step: the set of (key, required-value) pairs still outstanding when the
// step was expanded, plus resolved bindings for any Any effect the step's
// action produced. It is the value passed into lifecycle callbacks
// (spec.md section 3).
type Snapshot map[string]Value

func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// normalize renders the snapshot deterministically, sorted by key, for use
// as a visited-set key during search (spec.md section 4.2, "Search
// representation").
func (s Snapshot) normalize() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%#v;", k, s[k])
	}
	return b.String()
}

// String renders the snapshot's bindings as "[k=v, k2=v2]" sorted by key,
// for Plan.String and visualize output.
func (s Snapshot) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, s[k])
	}
	b.WriteByte(']')
	return b.String()
}
