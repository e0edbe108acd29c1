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

// PlanStep pairs an Action with the goal-state Snapshot that existed when
// the backward search selected it. Each step's Snapshot is owned by the
// step (spec.md section 3, "Lifecycle / ownership").
type PlanStep struct {
	Action   Action
	Snapshot Snapshot
}

// runtimeStep adds the per-execution bookkeeping a PlanStep needs once it's
// part of a live Plan: whether OnEnter has fired yet.
type runtimeStep struct {
	PlanStep
	entered bool
}
