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

// Director scores candidate goals, picks the best achievable one, and owns
// the live Plan instance (spec.md section 4.4).
type Director struct {
	planner *Planner
	world   WorldState
	goals   []*Goal
	current *Plan
}

// NewDirector validates world against planner's registered actions
// (spec.md section 3's key-declaration invariant), then constructs a
// Director over the given candidate goals.
func NewDirector(planner *Planner, world WorldState, goals []*Goal) (*Director, error) {
	if err := planner.ValidateWorldState(world); err != nil {
		return nil, err
	}
	return &Director{
		planner: planner,
		world:   world,
		goals:   append([]*Goal(nil), goals...),
	}, nil
}

// Current returns the Director's live Plan, or nil if idle.
func (d *Director) Current() *Plan { return d.current }

// FindBestPlan scores every goal via GetRelevance, drops non-positive
// scores, sorts descending by relevance, and returns the first plan
// produced for a goal in that order. It returns ErrNoApplicableGoal if no
// goal scores positively or none yields a plan (spec.md section 4.4).
func (d *Director) FindBestPlan() (*Plan, error) {
	type candidate struct {
		goal      *Goal
		relevance float64
	}

	var candidates []candidate
	for _, g := range d.goals {
		if r := g.GetRelevance(d.world); r > 0 {
			candidates = append(candidates, candidate{g, r})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].relevance > candidates[j].relevance
	})

	for _, c := range candidates {
		plan, err := d.planner.Plan(c.goal, d.world)
		if err == nil {
			return plan, nil
		}
	}
	return nil, ErrNoApplicableGoal
}

// Update is the per-tick entry point a host calls. If there is no current
// plan, or the current plan's status is terminal, it calls FindBestPlan and
// installs the result; otherwise it ticks the current plan. It returns the
// resulting status and, when idle (no applicable goal), ErrNoApplicableGoal
// alongside Running so the host can distinguish "idle" from "busy" without
// treating idle as a fatal condition (spec.md section 7).
func (d *Director) Update() (Status, error) {
	if d.current == nil || d.current.Status() != Running {
		plan, err := d.FindBestPlan()
		if err != nil {
			d.current = nil
			return Running, err
		}
		d.current = plan
		return d.current.Status(), nil
	}
	return d.current.Update(), nil
}
