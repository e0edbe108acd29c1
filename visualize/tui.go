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

package visualize

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"goap"
)

// RenderTUI drives a live terminal view of director, ticking it once per
// interval until ctx is cancelled or the screen receives a quit key (q,
// Ctrl-C, Esc). Screen setup and signal-driven cancellation follow the
// teacher's tcell-pick-and-place example; the content rendered each frame
// is a goap.Director's current plan instead of a sprite grid.
func RenderTUI(ctx context.Context, director *goap.Director, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("visualize: screen init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("visualize: screen init: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, ctx.Done())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		drawFrame(screen, director)

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quitKey(ev) {
				return nil
			}
		case <-ticker.C:
			if _, err := director.Update(); err != nil {
				drawStatusLine(screen, err.Error())
				screen.Show()
			}
		}
	}
}

func quitKey(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	return key.Rune() == 'q'
}

func drawFrame(screen tcell.Screen, director *goap.Director) {
	screen.Clear()
	plan := director.Current()
	if plan == nil {
		drawLine(screen, 0, "(idle, no applicable goal)")
		screen.Show()
		return
	}
	for y, line := range splitLines(Tree(plan)) {
		drawLine(screen, y, line)
	}
	screen.Show()
}

func drawStatusLine(screen tcell.Screen, msg string) {
	w, h := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, tcell.StyleDefault)
	}
	drawLine(screen, h-1, msg)
}

func drawLine(screen tcell.Screen, y int, line string) {
	for x, r := range line {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
