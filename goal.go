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

// Goal is a candidate desired partial world state, scored by the Director
// against other goals before being handed to the Planner (spec.md section
// 3).
type Goal struct {
	// Name identifies the goal for logging/visualisation; optional.
	Name string
	// State is the desired partial world state. Values here must be
	// concrete: a goal cannot demand Any or a Reference (spec.md section 9,
	// "Open Questions").
	State map[string]Value
	// Priority is the relevance returned when Relevance is nil.
	Priority float64
	// Relevance optionally overrides Priority with a world-state-dependent
	// score; a non-positive result means "not currently applicable".
	Relevance func(world WorldState) float64
}

// GetRelevance returns g.Relevance(world) if set, else g.Priority.
func (g *Goal) GetRelevance(world WorldState) float64 {
	if g.Relevance != nil {
		return g.Relevance(world)
	}
	return g.Priority
}
