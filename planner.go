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
	"container/heap"
	"fmt"
	"sort"
)

// Planner holds the registered action library and performs the backward,
// best-first search described in spec.md section 4.2.
type Planner struct {
	actions []Action
}

// NewPlanner registers the given actions, owned by the Planner for the
// lifetime of every Plan it produces (spec.md section 3, "Lifecycle /
// ownership").
func NewPlanner(actions []Action) *Planner {
	return &Planner{actions: append([]Action(nil), actions...)}
}

// ValidateWorldState checks that every key referenced by any registered
// action's Preconditions or Effects exists in world, per spec.md section 3's
// invariant. Hosts should call this once at setup.
func (p *Planner) ValidateWorldState(world WorldState) error {
	declared := make(map[string]struct{})
	for _, k := range world.Keys() {
		declared[k] = struct{}{}
	}
	for _, a := range p.actions {
		for k := range a.Preconditions() {
			if _, ok := declared[k]; !ok {
				return fmt.Errorf("%w: %q", ErrUndeclaredKey, k)
			}
		}
		for k := range a.Effects() {
			if _, ok := declared[k]; !ok {
				return fmt.Errorf("%w: %q", ErrUndeclaredKey, k)
			}
		}
	}
	return nil
}

// searchNode is a frontier entry: the set of (key, required-value) pairs
// still to be achieved, the cumulative cost to reach it, and the path of
// steps taken so far, in goal-to-start order.
type searchNode struct {
	goalState Snapshot
	g         float64
	h         float64
	path      []PlanStep
	seq       int
	index     int // heap.Interface bookkeeping
}

func (n *searchNode) f() float64 { return n.g + n.h }

type nodeHeap []*searchNode

func (q nodeHeap) Len() int { return len(q) }
func (q nodeHeap) Less(i, j int) bool {
	if q[i].f() != q[j].f() {
		return q[i].f() < q[j].f()
	}
	return q[i].seq < q[j].seq // ties broken by insertion order
}
func (q nodeHeap) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *nodeHeap) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Plan runs the backward search for goal against world, returning an
// ordered sequence of PlanSteps wrapped in a *Plan, or ErrNoPlan if the
// frontier empties without reaching a terminal node (spec.md section 4.2).
func (p *Planner) Plan(goal *Goal, world WorldState) (*Plan, error) {
	if err := validateConcreteGoal(goal.State); err != nil {
		return nil, err
	}

	start := &searchNode{goalState: Snapshot(cloneValueMap(goal.State))}
	start.h = p.heuristic(start.goalState, world)

	frontier := &nodeHeap{}
	heap.Init(frontier)
	seq := 0
	push := func(n *searchNode) {
		n.seq = seq
		seq++
		heap.Push(frontier, n)
	}
	push(start)

	visited := make(map[string]float64)

	for frontier.Len() > 0 {
		n := heap.Pop(frontier).(*searchNode)

		if p.satisfied(n.goalState, world) {
			return newPlan(reverseSteps(n.path), world), nil
		}

		key := n.goalState.normalize()
		if best, ok := visited[key]; ok && best <= n.g {
			continue
		}
		visited[key] = n.g

		// Every key in goalState gets a chance at expansion, not just the
		// ones world doesn't already satisfy: a key that's already true can
		// still need an explicit action if a sibling expansion's
		// precondition would otherwise displace it (see the conflict check
		// below). Leaving it un-expanded is still the cheaper, and usually
		// winning, branch.
		for _, k := range allKeys(n.goalState) {
			required := n.goalState[k]
			for _, action := range p.actions {
				eff, ok := action.Effects()[k]
				if !ok {
					continue
				}
				if !IsAny(eff) && !Equal(eff, required) {
					continue
				}

				snapshot, satisfiedKeys := p.bindSnapshot(n.goalState, action, world)
				if !containsKey(satisfiedKeys, k) {
					continue
				}
				if !action.CheckProceduralPrecondition(world, snapshot, true) {
					continue
				}

				next := snapshot.clone()
				for _, sk := range satisfiedKeys {
					delete(next, sk)
				}
				conflict := false
				for pk, pv := range action.Preconditions() {
					resolved := resolveReference(pv, snapshot)
					if existing, ok := next[pk]; ok && !Equal(existing, resolved) {
						// pk is already a pending requirement from deeper in
						// the goal (closer to the original goal) with a
						// different value: this action's precondition would
						// silently clobber it, losing track of a still-
						// outstanding requirement. Reject the candidate
						// rather than produce an unsound plan.
						conflict = true
						break
					}
					next[pk] = resolved
				}
				if conflict {
					continue
				}

				step := PlanStep{Action: action, Snapshot: snapshot}
				path := make([]PlanStep, len(n.path)+1)
				copy(path, n.path)
				path[len(n.path)] = step

				push(&searchNode{
					goalState: next,
					g:         n.g + action.Cost(),
					h:         p.heuristic(next, world),
					path:      path,
				})
			}
		}
	}

	return nil, ErrNoPlan
}

// bindSnapshot returns a copy of goalState with every outstanding key the
// action's effects can satisfy resolved: concrete effects must equal the
// requirement, Any effects bind to it. It also returns which keys were
// satisfied, so the caller can remove them from the next goal-state.
func (p *Planner) bindSnapshot(goalState Snapshot, action Action, world WorldState) (Snapshot, []string) {
	snapshot := goalState.clone()
	var satisfied []string
	for k, required := range goalState {
		eff, ok := action.Effects()[k]
		if !ok {
			continue
		}
		if IsAny(eff) {
			snapshot[k] = required
			satisfied = append(satisfied, k)
		} else if Equal(eff, required) {
			satisfied = append(satisfied, k)
		}
	}
	return snapshot, satisfied
}

// satisfied reports whether every (key, value) in goalState already holds
// in world (spec.md section 4.2, "Terminal test").
func (p *Planner) satisfied(goalState Snapshot, world WorldState) bool {
	for k, v := range goalState {
		wv, ok := world.Get(k)
		if !ok || !Equal(wv, v) {
			return false
		}
	}
	return true
}

// unsatisfiedKeys returns the keys of goalState not yet satisfied by world,
// sorted for deterministic iteration order.
func (p *Planner) unsatisfiedKeys(goalState Snapshot, world WorldState) []string {
	var keys []string
	for k, v := range goalState {
		wv, ok := world.Get(k)
		if !ok || !Equal(wv, v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// allKeys returns every key of goalState, sorted for deterministic
// expansion order.
func allKeys(goalState Snapshot) []string {
	keys := make([]string, 0, len(goalState))
	for k := range goalState {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// heuristic counts keys in goalState not yet satisfied by world: admissible,
// since each requires at least one action (spec.md section 4.2).
func (p *Planner) heuristic(goalState Snapshot, world WorldState) float64 {
	return float64(len(p.unsatisfiedKeys(goalState, world)))
}

func validateConcreteGoal(state map[string]Value) error {
	for k, v := range state {
		if IsAny(v) {
			return fmt.Errorf("%w: %q is Any", ErrSymbolicGoalValue, k)
		}
		if _, ok := v.(Reference); ok {
			return fmt.Errorf("%w: %q is a Reference", ErrSymbolicGoalValue, k)
		}
	}
	return nil
}

func cloneValueMap(m map[string]Value) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func containsKey(keys []string, k string) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}

// reverseSteps reverses a goal-to-start path into forward execution order
// (spec.md section 4.2, "Output assembly").
func reverseSteps(path []PlanStep) []PlanStep {
	out := make([]PlanStep, len(path))
	for i, s := range path {
		out[len(path)-1-i] = s
	}
	return out
}
