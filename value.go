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

// Value is a reading or writing of a WorldState key, or a declaration-time
// value inside an Action's Preconditions/Effects. The concrete domain
// (boolean, integer, string, or opaque handle) is chosen by the host; Value
// must be comparable with ==, since identity for planning purposes is
// structural equality (spec.md section 3).
//
// Any and Reference are permitted only in declaration positions
// (Preconditions/Effects); a live WorldState must never hold either.
type Value = any

// anyValue is the concrete type behind the Any sentinel.
type anyValue struct{}

// Any is the effect-position sentinel meaning "this action produces
// whatever value the caller currently demands for this key"; during search
// it unifies with the requester's required value (spec.md section 4.1).
var Any Value = anyValue{}

// IsAny reports whether v is the Any sentinel.
func IsAny(v Value) bool {
	_, ok := v.(anyValue)
	return ok
}

// Reference is a precondition-position sentinel: "my required value equals
// whatever value is currently demanded of Key in the goal state being
// expanded" (spec.md section 4.1). It forwards a variable binding from one
// precondition to another within the same action.
type Reference struct{ Key string }

// Ref constructs a Reference precondition value for key.
func Ref(key string) Value { return Reference{Key: key} }

// Equal reports structural equality between two concrete Values. It must
// never be called with an Any or Reference operand.
func Equal(a, b Value) bool { return a == b }

// resolveReference returns v unchanged unless it is a Reference, in which
// case it returns the value currently demanded for the referenced key in
// snapshot (spec.md section 4.1, "Reference resolution").
func resolveReference(v Value, snapshot Snapshot) Value {
	ref, ok := v.(Reference)
	if !ok {
		return v
	}
	return snapshot[ref.Key]
}
