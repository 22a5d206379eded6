// Package viewstate holds the options the user picks in the viewer.
package viewstate

import (
	"errors"
	"fmt"

	"shape-viewer/internal/shapes"
	"shape-viewer/internal/theme"
)

// ErrUnknownShape is returned by SetShape for ids outside shapes.All.
var ErrUnknownShape = errors.New("unknown shape")

// ViewState is the complete user-selected state. CustomColor is empty when
// the theme color is in use, otherwise a normalized #rrggbb string.
type ViewState struct {
	Shape       shapes.ID
	Wireframe   bool
	DarkMode    bool
	CustomColor string
}

// Default is the state the viewer opens with when nothing is configured.
func Default() ViewState {
	return ViewState{Shape: shapes.Cube, DarkMode: true}
}

// Material derives the mesh style from the state.
func (s ViewState) Material() theme.MaterialStyle {
	return theme.Material(s.DarkMode, s.Wireframe, s.CustomColor)
}

// Scene derives background and lights from the state.
func (s ViewState) Scene() theme.SceneConfig {
	return theme.Scene(s.DarkMode)
}

// Listener is called after every change with the previous and new state.
type Listener func(prev, next ViewState)

// Store owns the current ViewState. It is used from the frame loop only and
// is not safe for concurrent use.
type Store struct {
	state     ViewState
	listeners []Listener
}

// NewStore returns a store holding initial.
func NewStore(initial ViewState) *Store {
	return &Store{state: initial}
}

// Subscribe registers l to be called after each change.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() ViewState {
	return s.state
}

func (s *Store) set(next ViewState) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	for _, l := range s.listeners {
		l(prev, next)
	}
}

// SetShape selects a shape.
func (s *Store) SetShape(id shapes.ID) error {
	if !shapes.Valid(id) {
		return fmt.Errorf("%w: %q", ErrUnknownShape, id)
	}
	next := s.state
	next.Shape = id
	s.set(next)
	return nil
}

// SetWireframe turns the wireframe overlay on or off.
func (s *Store) SetWireframe(on bool) {
	next := s.state
	next.Wireframe = on
	s.set(next)
}

// SetDarkMode switches between the dark and light theme.
func (s *Store) SetDarkMode(on bool) {
	next := s.state
	next.DarkMode = on
	s.set(next)
}

// SetCustomColor replaces the theme color with c. An empty c clears it.
func (s *Store) SetCustomColor(c string) error {
	if c == "" {
		s.ClearCustomColor()
		return nil
	}
	norm, err := theme.NormalizeColor(c)
	if err != nil {
		return err
	}
	next := s.state
	next.CustomColor = norm
	s.set(next)
	return nil
}

// ClearCustomColor goes back to the theme color.
func (s *Store) ClearCustomColor() {
	next := s.state
	next.CustomColor = ""
	s.set(next)
}
