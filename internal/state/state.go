package state

import (
	"context"

	"github.com/abhisek/contextlens/internal/audio"
	"github.com/abhisek/contextlens/internal/llm"
	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/reframe"
	"github.com/abhisek/contextlens/internal/store"
)

// App bundles the shared services and the active learner selection that
// screens need. A single instance is created at startup and passed by
// pointer; Bubble Tea updates run on one goroutine so no locking is needed.
type App struct {
	Version string

	Repo    *profile.Repo
	Events  store.EventRepo
	Reframe *reframe.Service
	Speech  llm.SpeechProvider
	Player  *audio.Player

	currentID string
}

// SetCurrent records the active learner id. An empty id clears selection.
func (a *App) SetCurrent(id string) {
	a.currentID = id
}

// CurrentID returns the active learner id, or "" if none selected.
func (a *App) CurrentID() string {
	return a.currentID
}

// CurrentLearner re-reads the active learner from the repository so the
// caller always sees the latest library contents. Returns false if no
// learner is selected or the selected id no longer exists.
func (a *App) CurrentLearner(ctx context.Context) (profile.Learner, bool) {
	if a.currentID == "" {
		return profile.Learner{}, false
	}
	learner, ok := a.Repo.Get(ctx, a.currentID)
	if !ok {
		// Profile was deleted out from under the selection.
		a.currentID = ""
	}
	return learner, ok
}

// CanSpeak reports whether read-aloud is available: a speech provider is
// configured and a system audio player exists.
func (a *App) CanSpeak() bool {
	return a.Speech != nil && a.Player != nil && audio.Available()
}
