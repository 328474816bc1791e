// Package gallery implements the navigation and hover state of the annotated
// image gallery.
//
// The state holds the index of the displayed image and the index of the
// hovered annotation on that image. Hover never survives an image switch:
// every navigation operation clears it.
package gallery

import (
	"errors"
	"fmt"

	"github.com/colonyops/accessihome/internal/core/report"
)

var (
	// ErrNoImages is returned when a gallery is created without images.
	ErrNoImages = errors.New("gallery requires at least one image")
	// ErrIndexOutOfRange is returned for image or annotation indexes outside
	// the current sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

const noHover = -1

// State is the gallery view state.
type State struct {
	images  []report.Image
	current int
	hovered int
}

// New creates a gallery positioned on the first image with nothing hovered.
func New(images []report.Image) (*State, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return &State{
		images:  images,
		current: 0,
		hovered: noHover,
	}, nil
}

// Len returns the number of images.
func (s *State) Len() int {
	return len(s.images)
}

// Current returns the index of the displayed image.
func (s *State) Current() int {
	return s.current
}

// CurrentImage returns the displayed image.
func (s *State) CurrentImage() report.Image {
	return s.images[s.current]
}

// Images returns the image sequence.
func (s *State) Images() []report.Image {
	return s.images
}

// Hovered returns the hovered annotation index on the current image.
func (s *State) Hovered() (int, bool) {
	return s.hovered, s.hovered != noHover
}

// Next advances to the following image, wrapping past the last one.
func (s *State) Next() {
	s.current = (s.current + 1) % len(s.images)
	s.hovered = noHover
}

// Previous moves to the preceding image, wrapping from the first to the last.
func (s *State) Previous() {
	s.current = (s.current - 1 + len(s.images)) % len(s.images)
	s.hovered = noHover
}

// GoTo shows the image at index. Out of range indexes leave the state
// untouched.
func (s *State) GoTo(index int) error {
	if index < 0 || index >= len(s.images) {
		return fmt.Errorf("go to image %d of %d: %w", index, len(s.images), ErrIndexOutOfRange)
	}
	s.current = index
	s.hovered = noHover
	return nil
}

// HoverEnter marks the annotation at index on the current image as hovered.
func (s *State) HoverEnter(index int) error {
	n := len(s.images[s.current].Annotations)
	if index < 0 || index >= n {
		return fmt.Errorf("hover annotation %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	s.hovered = index
	return nil
}

// HoverLeave clears the hovered annotation.
func (s *State) HoverLeave() {
	s.hovered = noHover
}
