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

// Package visualize renders a goap.Plan for human inspection: a static
// indented tree (Tree) for logs and reports, and a live terminal view
// (RenderTUI, in tui.go) for watching a Director execute.
package visualize

import (
	"fmt"

	"github.com/xlab/treeprint"

	"goap"
)

// Tree renders plan as an indented tree: one branch per step, annotated
// with the action's bound snapshot and, once ticked, its runtime status.
// The root carries the plan's tag, if set.
func Tree(plan *goap.Plan) string {
	root := treeprint.New()
	if tag := plan.Tag(); tag != "" {
		root.SetValue(fmt.Sprintf("plan[%s]", tag))
	} else {
		root.SetValue("plan")
	}

	steps := plan.Steps()
	cursor := plan.Cursor()
	for i, step := range steps {
		label := stepLabel(step)
		switch {
		case i < cursor || (i == cursor && plan.Status() == goap.Success):
			label += " (done)"
		case i == cursor && plan.Status() == goap.Running:
			label += " (active)"
		case i == cursor && plan.Status() == goap.Failure:
			label += " (failed)"
		}
		root.AddNode(label)
	}
	return root.String()
}

func stepLabel(step goap.PlanStep) string {
	return fmt.Sprintf("%s%s", actionLabel(step.Action), step.Snapshot.String())
}

func actionLabel(a goap.Action) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}
