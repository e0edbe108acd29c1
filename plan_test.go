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

import "testing"

// immediateAction commits its effect right after OnEnter rather than on
// exit, modeling spec.md section 8 scenario S5 ("an action with
// apply_effects_on_exit=false ... commits its effect after on_enter").
type immediateAction struct {
	BaseAction
	entered bool
}

func (*immediateAction) ApplyEffectsOnExit() bool { return false }
func (*immediateAction) Preconditions() Preconditions { return nil }
func (*immediateAction) Effects() Effects             { return Effects{"in_weapons_range": true} }
func (a *immediateAction) OnEnter(WorldState, Snapshot) { a.entered = true }
func (a *immediateAction) GetStatus(WorldState, Snapshot) Status {
	if !a.entered {
		return Failure
	}
	return Success
}

type attackAction struct{ BaseAction }

func (attackAction) Preconditions() Preconditions {
	return Preconditions{"in_weapons_range": true}
}
func (attackAction) Effects() Effects { return Effects{"target_is_dead": true} }

func TestPlan_S5_immediateEffectAction(t *testing.T) {
	world := NewWorldState(map[string]Value{
		"in_weapons_range": false,
		"target_is_dead":   false,
	})
	chase := &immediateAction{}
	steps := []PlanStep{
		{Action: chase, Snapshot: Snapshot{}},
		{Action: attackAction{}, Snapshot: Snapshot{}},
	}
	plan := newPlan(steps, world)

	// Tick 1: validity check passes (in_weapons_range not yet required),
	// OnEnter fires, and since ApplyEffectsOnExit is false the effect
	// commits immediately, before attack's own OnEnter (and hence before
	// its first validity check) ever happens.
	if status := plan.Update(); status != Running {
		t.Fatalf("tick 1 status = %v, want Running", status)
	}
	if v, _ := world.Get("in_weapons_range"); v != true {
		t.Fatalf("in_weapons_range after tick 1 = %v, want true", v)
	}

	// Tick 2: chase's GetStatus succeeds, cursor advances to attack.
	if status := plan.Update(); status != Running {
		t.Fatalf("tick 2 status = %v, want Running", status)
	}
	if plan.Cursor() != 1 {
		t.Fatalf("cursor after tick 2 = %d, want 1", plan.Cursor())
	}

	// Tick 3: attack's own validity check passes because in_weapons_range
	// was already committed by chase.
	if status := plan.Update(); status != Running {
		t.Fatalf("tick 3 status = %v, want Running", status)
	}

	// Tick 4: attack succeeds and commits target_is_dead.
	if status := plan.Update(); status != Success {
		t.Fatalf("tick 4 status = %v, want Success", status)
	}
	if v, _ := world.Get("target_is_dead"); v != true {
		t.Fatalf("target_is_dead = %v, want true", v)
	}
}

func TestPlan_S6_invalidationMidPlan(t *testing.T) {
	world := woodcuttingWorld()
	planner := woodcuttingPlanner()
	goal := &Goal{State: map[string]Value{"has_wood": true}}

	plan, err := planner.Plan(goal, world)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// Drive the plan until CutTrees (the last step) is about to enter.
	for plan.Cursor() < 3 {
		if status := plan.Update(); status != Running {
			t.Fatalf("unexpected status %v before CutTrees entered", status)
		}
	}

	// Externally invalidate has_axe right before CutTrees's validity check.
	world.Set("has_axe", false)

	if status := plan.Update(); status != Failure {
		t.Fatalf("status after invalidation = %v, want Failure", status)
	}
	if plan.FailureReason() != ErrPreconditionInvalidated {
		t.Fatalf("FailureReason = %v, want ErrPreconditionInvalidated", plan.FailureReason())
	}

	// Director-style replan: the planner is invoked fresh given the
	// (partially regressed) world, and should reproduce the same plan
	// shape since has_axe is false again.
	replanned, err := planner.Plan(goal, world)
	if err != nil {
		t.Fatalf("replan: %v", err)
	}
	want := []string{"GoTo", "GetAxe", "GoTo", "CutTrees"}
	if got := stepNames(replanned.Steps()); !equalSlices(got, want) {
		t.Fatalf("replanned steps = %v, want %v", got, want)
	}
}

func TestPlan_idempotentOnTerminalStatus(t *testing.T) {
	world := woodcuttingWorld()
	planner := woodcuttingPlanner()
	goal := &Goal{State: map[string]Value{"has_wood": true}}

	plan, err := planner.Plan(goal, world)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	for status := plan.Update(); status == Running; status = plan.Update() {
	}
	if plan.Status() != Success {
		t.Fatalf("plan.Status() = %v, want Success", plan.Status())
	}

	before := plan.Cursor()
	for i := 0; i < 3; i++ {
		if status := plan.Update(); status != Success {
			t.Fatalf("Update() after terminal = %v, want Success", status)
		}
	}
	if plan.Cursor() != before {
		t.Fatalf("cursor mutated after terminal status: %d != %d", plan.Cursor(), before)
	}
}
