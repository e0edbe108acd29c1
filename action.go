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

	bt "github.com/joeycumines/go-behaviortree"
)

// Status is the tri-state lifecycle/search outcome shared by Action and by
// Plan/Step execution. It reuses go-behaviortree's vocabulary: the teacher
// library already models exactly this outcome set for ticked behavior, and
// spec.md's {running, success, failure} result is structurally identical.
type Status = bt.Status

const (
	Running = bt.Running
	Success = bt.Success
	Failure = bt.Failure
)

// Preconditions maps keys to the value required for an Action to run. A
// concrete value must equal the live WorldState value; a Reference forwards
// to whatever value is demanded of another key within the same expansion
// (spec.md section 4.1).
type Preconditions map[string]Value

// Effects maps keys to the value an Action produces. A concrete value is
// written as-is; Any unifies with whatever value the planner currently
// demands for that key (spec.md section 4.1).
type Effects map[string]Value

// Action is a parameterized, declarative unit of planning and execution.
// Implementations are registered with a Planner by the host; the core never
// discovers actions on its own (spec.md section 9).
type Action interface {
	// Preconditions declares what must hold before this action may run.
	Preconditions() Preconditions
	// Effects declares what this action produces.
	Effects() Effects
	// Cost is the scalar cost added to a plan's cumulative cost when this
	// action is selected.
	Cost() float64
	// ApplyEffectsOnExit reports whether effects commit on successful exit
	// (true, the default) or immediately after OnEnter (false, for actions
	// whose effect is achieved by external machinery while running).
	ApplyEffectsOnExit() bool

	// CheckProceduralPrecondition is a runtime filter consulted both during
	// planning (isPlanning true) and during execution gating (false).
	CheckProceduralPrecondition(world WorldState, goalState Snapshot, isPlanning bool) bool
	// OnEnter is called once when a step becomes active.
	OnEnter(world WorldState, goalState Snapshot)
	// GetStatus is polled each executor tick while the step is active.
	GetStatus(world WorldState, goalState Snapshot) Status
	// OnExit is called once when a step leaves Running.
	OnExit(world WorldState, goalState Snapshot)
}

// Named is implemented by actions that want a friendly name in Plan.String
// and in visualize output. Actions that don't implement it fall back to
// their Go type name.
type Named interface {
	Name() string
}

// BaseAction provides the default lifecycle described in spec.md section 3:
// cost 1.0, effects committed on exit, no procedural precondition gating, a
// GetStatus that succeeds immediately, and no-op OnEnter/OnExit. Embed it
// and override only the hooks a concrete action needs.
type BaseAction struct{}

func (BaseAction) Cost() float64           { return 1.0 }
func (BaseAction) ApplyEffectsOnExit() bool { return true }

func (BaseAction) CheckProceduralPrecondition(WorldState, Snapshot, bool) bool { return true }
func (BaseAction) OnEnter(WorldState, Snapshot)                                {}
func (BaseAction) GetStatus(WorldState, Snapshot) Status                      { return Success }
func (BaseAction) OnExit(WorldState, Snapshot)                                {}

func actionName(a Action) string {
	if n, ok := a.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}
