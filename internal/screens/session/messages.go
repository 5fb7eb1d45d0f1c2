package session

import "time"

// autoplayTickMsg fires once per autoplay step interval.
type autoplayTickMsg time.Time

// attemptSavedMsg confirms the start event was persisted.
type attemptSavedMsg struct {
	Err error
}
