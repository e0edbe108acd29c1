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
	"errors"
	"testing"
)

// woodcutting domain actions, ground truth for spec.md section 8 scenario S1.

type goToAction struct{ BaseAction }

func (goToAction) Preconditions() Preconditions { return nil }
func (goToAction) Effects() Effects             { return Effects{"at_location": Any} }
func (goToAction) Name() string { return "GoTo" }

type getAxeAction struct{ BaseAction }

func (getAxeAction) Preconditions() Preconditions {
	return Preconditions{"at_location": "axe"}
}
func (getAxeAction) Effects() Effects { return Effects{"has_axe": true} }
func (getAxeAction) Name() string     { return "GetAxe" }

type cutTreesAction struct{ BaseAction }

func (cutTreesAction) Preconditions() Preconditions {
	return Preconditions{"at_location": "forest", "has_axe": true}
}
func (cutTreesAction) Effects() Effects { return Effects{"has_wood": true} }
func (cutTreesAction) Name() string     { return "CutTrees" }

func woodcuttingWorld() MapWorldState {
	return NewWorldState(map[string]Value{
		"at_location": nil,
		"has_axe":     false,
		"has_wood":    false,
	})
}

func woodcuttingPlanner() *Planner {
	return NewPlanner([]Action{goToAction{}, getAxeAction{}, cutTreesAction{}})
}

func stepNames(steps []PlanStep) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = actionName(s.Action)
	}
	return names
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestPlanner_S1_basicTreeCutting exercises spec.md section 8 scenario S1.
func TestPlanner_S1_basicTreeCutting(t *testing.T) {
	world := woodcuttingWorld()
	planner := woodcuttingPlanner()
	goal := &Goal{Name: "CutTreesGoal", State: map[string]Value{"has_wood": true}}

	plan, err := planner.Plan(goal, world)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	want := []string{"GoTo", "GetAxe", "GoTo", "CutTrees"}
	got := stepNames(plan.Steps())
	if !equalSlices(got, want) {
		t.Fatalf("plan steps = %v, want %v", got, want)
	}

	// GoTo's bound at_location must match what the following step demands.
	steps := plan.Steps()
	if v := steps[0].Snapshot["at_location"]; v != "axe" {
		t.Errorf("steps[0] (GoTo) bound at_location = %v, want axe", v)
	}
	if v := steps[2].Snapshot["at_location"]; v != "forest" {
		t.Errorf("steps[2] (GoTo) bound at_location = %v, want forest", v)
	}

	for status := plan.Update(); status == Running; status = plan.Update() {
	}
	if plan.Status() != Success {
		t.Fatalf("plan.Status() = %v, want Success", plan.Status())
	}

	if v, _ := world.Get("at_location"); v != "forest" {
		t.Errorf("final at_location = %v, want forest", v)
	}
	if v, _ := world.Get("has_axe"); v != true {
		t.Errorf("final has_axe = %v, want true", v)
	}
	if v, _ := world.Get("has_wood"); v != true {
		t.Errorf("final has_wood = %v, want true", v)
	}
}

// TestPlanner_S2_referenceForwarding exercises spec.md section 8 scenario
// S2: a NosyBlackbird action with an Any effect, and a GoTo precondition
// that forwards the bound at_location via Reference.
func TestPlanner_S2_referenceForwarding(t *testing.T) {
	world := NewWorldState(map[string]Value{
		"at_location":       nil,
		"has_axe":           false,
		"has_wood":          false,
		"seen_by_blackbird": nil,
	})

	actions := []Action{
		goToRefAction{},
		blackbirdAction{},
		getAxeAction{},
		cutTreesAction{},
	}
	planner := NewPlanner(actions)
	goal := &Goal{State: map[string]Value{"has_wood": true}}

	plan, err := planner.Plan(goal, world)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	steps := plan.Steps()
	for i, s := range steps {
		if _, ok := s.Action.(goToRefAction); !ok {
			continue
		}
		if i == 0 {
			t.Fatalf("GoTo at step 0 has no preceding NosyBlackbird")
		}
		prev := steps[i-1]
		if _, ok := prev.Action.(blackbirdAction); !ok {
			t.Fatalf("step %d GoTo not preceded by NosyBlackbird, got %T", i, prev.Action)
		}
		wantBinding := s.Snapshot["at_location"]
		gotBinding := prev.Snapshot["seen_by_blackbird"]
		if gotBinding != wantBinding {
			t.Errorf("NosyBlackbird before GoTo[%v] bound seen_by_blackbird=%v, want %v", wantBinding, gotBinding, wantBinding)
		}
	}

	for status := plan.Update(); status == Running; status = plan.Update() {
	}
	if plan.Status() != Success {
		t.Fatalf("plan.Status() = %v, want Success", plan.Status())
	}
}

type goToRefAction struct{ BaseAction }

func (goToRefAction) Preconditions() Preconditions {
	return Preconditions{"seen_by_blackbird": Ref("at_location")}
}
func (goToRefAction) Effects() Effects { return Effects{"at_location": Any} }
func (goToRefAction) Name() string     { return "GoTo" }

type blackbirdAction struct{ BaseAction }

func (blackbirdAction) Preconditions() Preconditions { return nil }
func (blackbirdAction) Effects() Effects             { return Effects{"seen_by_blackbird": Any} }
func (blackbirdAction) Name() string { return "NosyBlackbird" }

// TestPlanner_S3_noPlan exercises spec.md section 8 scenario S3: removing
// GoTo makes at_location unreachable, so the planner must report ErrNoPlan.
func TestPlanner_S3_noPlan(t *testing.T) {
	world := woodcuttingWorld()
	planner := NewPlanner([]Action{getAxeAction{}, cutTreesAction{}})
	goal := &Goal{State: map[string]Value{"has_wood": true}}

	_, err := planner.Plan(goal, world)
	if !errors.Is(err, ErrNoPlan) {
		t.Fatalf("Plan err = %v, want ErrNoPlan", err)
	}
}

func TestPlanner_rejectsSymbolicGoalValue(t *testing.T) {
	world := woodcuttingWorld()
	planner := woodcuttingPlanner()

	for _, goal := range []*Goal{
		{State: map[string]Value{"has_wood": Any}},
		{State: map[string]Value{"has_wood": Ref("has_axe")}},
	} {
		if _, err := planner.Plan(goal, world); !errors.Is(err, ErrSymbolicGoalValue) {
			t.Errorf("Plan err = %v, want ErrSymbolicGoalValue", err)
		}
	}
}

func TestPlanner_ValidateWorldState(t *testing.T) {
	planner := woodcuttingPlanner()
	complete := woodcuttingWorld()
	if err := planner.ValidateWorldState(complete); err != nil {
		t.Fatalf("ValidateWorldState(complete) = %v, want nil", err)
	}

	incomplete := NewWorldState(map[string]Value{"at_location": nil})
	if err := planner.ValidateWorldState(incomplete); !errors.Is(err, ErrUndeclaredKey) {
		t.Fatalf("ValidateWorldState(incomplete) = %v, want ErrUndeclaredKey", err)
	}
}
