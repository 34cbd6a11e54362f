// Package carousel holds the slide index state machine behind the media page
// carousel. Transitions are pure so they can be tested without a DOM.
package carousel

import "fmt"

// State is the current slide of a carousel with Count slides.
// Index is always 0 when Count <= 1.
type State struct {
	Index int
	Count int
}

// New returns the initial state for a carousel with count slides.
func New(count int) State {
	if count < 0 {
		count = 0
	}
	return State{Index: 0, Count: count}
}

// NavigationVisible reports whether prev/next controls and dots should show.
func (s State) NavigationVisible() bool {
	return s.Count > 1
}

// Goto moves to slide k. Indexes below zero wrap to the last slide and indexes
// past the end wrap to the first one.
func (s State) Goto(k int) State {
	if !s.NavigationVisible() {
		return State{Index: 0, Count: s.Count}
	}
	switch {
	case k < 0:
		s.Index = s.Count - 1
	case k >= s.Count:
		s.Index = 0
	default:
		s.Index = k
	}
	return s
}

// Next advances one slide, wrapping from the last slide to the first.
func (s State) Next() State {
	return s.Goto(s.Index + 1)
}

// Prev goes back one slide, wrapping from the first slide to the last.
func (s State) Prev() State {
	return s.Goto(s.Index - 1)
}

// Active reports whether slide (or dot) i is the current one.
func (s State) Active(i int) bool {
	return s.Count > 0 && i == s.Index
}

// Offset is the track translation in percent.
func (s State) Offset() int {
	return -s.Index * 100
}

// TrackTransform is the CSS transform applied to the carousel track.
func (s State) TrackTransform() string {
	return fmt.Sprintf("translateX(%d%%)", s.Offset())
}
