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

// Package domainconfig loads a YAML declaration of a WorldState, an action
// library and a goal set, shared by goap-demo and goap-server so both
// binaries point at the same on-disk domain format.
package domainconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goap"
)

// File is the decoded form of a domain YAML document. Actions and goals
// are data, not code: values map 1:1 onto goap.Preconditions/goap.Effects,
// with the literal string "any" standing in for goap.Any and "ref:<key>"
// for a goap.Reference.
type File struct {
	World   map[string]yaml.Node  `yaml:"world"`
	Actions map[string]ActionDecl `yaml:"actions"`
	Goals   map[string]GoalDecl   `yaml:"goals"`
}

type ActionDecl struct {
	Preconditions map[string]string `yaml:"preconditions"`
	Effects       map[string]string `yaml:"effects"`
	Cost          float64           `yaml:"cost"`
}

type GoalDecl struct {
	State    map[string]string `yaml:"state"`
	Priority float64           `yaml:"priority"`
}

// Load reads and decodes the domain file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open domain file: %w", err)
	}
	defer f.Close()

	var df File
	if err := yaml.NewDecoder(f).Decode(&df); err != nil {
		return nil, fmt.Errorf("decode domain file: %w", err)
	}
	return &df, nil
}

// declaredAction is a generic goap.Action driven entirely by a File entry:
// no procedural precondition, default cost/lifecycle from goap.BaseAction
// unless overridden.
type declaredAction struct {
	goap.BaseAction
	name string
	pre  goap.Preconditions
	eff  goap.Effects
	cost float64
}

func (a *declaredAction) Name() string                      { return a.name }
func (a *declaredAction) Preconditions() goap.Preconditions { return a.pre }
func (a *declaredAction) Effects() goap.Effects             { return a.eff }
func (a *declaredAction) Cost() float64 {
	if a.cost > 0 {
		return a.cost
	}
	return 1
}

func decodeValue(s string) goap.Value {
	if s == "any" {
		return goap.Any
	}
	if len(s) > 4 && s[:4] == "ref:" {
		return goap.Ref(s[4:])
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null", "nil":
		return nil
	default:
		return s
	}
}

// BuildPlanner constructs a goap.Planner from df's action declarations.
func BuildPlanner(df *File) *goap.Planner {
	actions := make([]goap.Action, 0, len(df.Actions))
	for name, decl := range df.Actions {
		pre := make(goap.Preconditions, len(decl.Preconditions))
		for k, v := range decl.Preconditions {
			pre[k] = decodeValue(v)
		}
		eff := make(goap.Effects, len(decl.Effects))
		for k, v := range decl.Effects {
			eff[k] = decodeValue(v)
		}
		actions = append(actions, &declaredAction{name: name, pre: pre, eff: eff, cost: decl.Cost})
	}
	return goap.NewPlanner(actions)
}

// BuildWorld constructs the initial goap.MapWorldState from df's world
// declaration.
func BuildWorld(df *File) goap.MapWorldState {
	initial := make(map[string]goap.Value, len(df.World))
	for k, node := range df.World {
		var v any
		_ = node.Decode(&v)
		initial[k] = v
	}
	return goap.NewWorldState(initial)
}

// BuildGoals constructs the candidate goap.Goal set from df's goal
// declarations.
func BuildGoals(df *File) []*goap.Goal {
	goals := make([]*goap.Goal, 0, len(df.Goals))
	for name, decl := range df.Goals {
		state := make(map[string]goap.Value, len(decl.State))
		for k, v := range decl.State {
			state[k] = decodeValue(v)
		}
		goals = append(goals, &goap.Goal{Name: name, State: state, Priority: decl.Priority})
	}
	return goals
}
