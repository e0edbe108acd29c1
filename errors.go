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

import "errors"

// Error kinds, all recoverable at the Director level (spec.md section 7).
var (
	// ErrNoPlan is returned when the planner's frontier is exhausted for a
	// requested goal.
	ErrNoPlan = errors.New("goap: no plan")
	// ErrPreconditionInvalidated is recorded against a Plan when a step's
	// precondition fails at runtime, after the world changed since planning.
	ErrPreconditionInvalidated = errors.New("goap: precondition invalidated")
	// ErrActionReportedFailure is recorded against a Plan when a step's
	// GetStatus returns Failure.
	ErrActionReportedFailure = errors.New("goap: action reported failure")
	// ErrNoApplicableGoal is returned by Director.Update when every goal
	// scored non-positive relevance, or no goal yielded a plan.
	ErrNoApplicableGoal = errors.New("goap: no applicable goal")
	// ErrSymbolicGoalValue is returned when a Goal's State holds Any or a
	// Reference: goal values must be concrete (spec.md section 9, "Open
	// Questions").
	ErrSymbolicGoalValue = errors.New("goap: goal state values must be concrete")
	// ErrUndeclaredKey is returned when an action references a WorldState
	// key that wasn't present at setup (spec.md section 3, invariants).
	ErrUndeclaredKey = errors.New("goap: action references an undeclared world state key")
)
