// Package admin holds the media carousel editor: the pure list editing model,
// the scraper that reads the deployed carousel back out of media.html, and the
// browser console that drives both.
package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

var (
	ErrEmptyURL   = errors.New("Please enter a YouTube URL")
	ErrInvalidURL = errors.New("Invalid YouTube URL")
	ErrNoVideos   = errors.New("Please add at least one video")
	ErrOutOfRange = errors.New("video index out of range")
)

// Editor is the admin's working copy of the carousel list. It is owned by a
// single page session and is not safe for concurrent use.
type Editor struct {
	videos []model.VideoRecord
	dirty  bool
}

// Load replaces the working copy and clears the dirty flag.
func (e *Editor) Load(videos []model.VideoRecord) {
	e.videos = append([]model.VideoRecord(nil), videos...)
	e.renumber()
	e.dirty = false
}

// Insert appends a video parsed from rawURL. An empty title becomes
// "Performance N" where N is the new list length.
func (e *Editor) Insert(rawURL, title string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}
	id, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return ErrInvalidURL
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle(len(e.videos))
	}
	e.videos = append(e.videos, model.VideoRecord{VideoID: id, Title: title})
	e.renumber()
	e.dirty = true
	return nil
}

// Delete removes the video at index i. Callers confirm with the user first.
func (e *Editor) Delete(i int) error {
	if i < 0 || i >= len(e.videos) {
		return fmt.Errorf("delete %d: %w", i, ErrOutOfRange)
	}
	e.videos = append(e.videos[:i], e.videos[i+1:]...)
	e.renumber()
	e.dirty = true
	return nil
}

// Move swaps the video at i with its neighbour in direction dir (-1 up, +1
// down). It reports false and changes nothing when the target is outside the
// list.
func (e *Editor) Move(i, dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	j := i + dir
	if i < 0 || i >= len(e.videos) || j < 0 || j >= len(e.videos) {
		return false
	}
	e.videos[i], e.videos[j] = e.videos[j], e.videos[i]
	e.renumber()
	e.dirty = true
	return true
}

// SetTitle replaces the title of the video at i, typically after a remote
// title lookup completes.
func (e *Editor) SetTitle(i int, title string) bool {
	title = strings.TrimSpace(title)
	if i < 0 || i >= len(e.videos) || title == "" || e.videos[i].Title == title {
		return false
	}
	e.videos[i].Title = title
	e.dirty = true
	return true
}

// Save builds the deployable markup for the current list and clears the dirty
// flag. It never publishes anything.
func (e *Editor) Save() (Artifact, error) {
	if len(e.videos) == 0 {
		return Artifact{}, ErrNoVideos
	}
	artifact := BuildArtifact(e.videos)
	e.dirty = false
	return artifact, nil
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// Videos returns a copy of the working list.
func (e *Editor) Videos() []model.VideoRecord {
	return append([]model.VideoRecord(nil), e.videos...)
}

// Len returns the number of videos in the working list.
func (e *Editor) Len() int { return len(e.videos) }

func (e *Editor) renumber() {
	for i := range e.videos {
		e.videos[i].ID = i
		e.videos[i].Order = model.VideoOrder(i + 1)
	}
}

// DefaultTitle is the fallback title for the video at index i.
func DefaultTitle(i int) string {
	return fmt.Sprintf("Performance %d", i+1)
}
