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

// Package goap implements the core of a goal-oriented action planner: a
// backward, best-first search over a library of parameterized actions,
// producing a plan that an executor steps through against a live
// WorldState, and a director that chooses among candidate goals.
//
// The package has no dependency on logging, configuration, or CLI tooling;
// see cmd/goap-demo and cmd/goap-server for hosts that wire those in.
package goap
