package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nookmarket/nook-cli/internal/terminal"
)

// SyncResult is the outcome of a profile synchronization
type SyncResult int

// set of profile synchronization outcomes
const (
	SyncSkipped SyncResult = iota
	SyncFailed
	SyncApplied
)

func (r SyncResult) String() string {
	switch r {
	case SyncSkipped:
		return "skipped"
	case SyncFailed:
		return "failed"
	case SyncApplied:
		return "applied"
	}
	return "unknown"
}

// ProfileFetcher fetches the server's copy of a user profile as raw fields
type ProfileFetcher interface {
	ProfileFields(ctx context.Context, name string) (map[string]json.RawMessage, error)
}

// Hydrator re-renders whatever displays the cached identity
type Hydrator interface {
	Hydrate()
}

var errNoSession = errors.New("no session to merge into")

// Synchronizer reconciles the cached profile fields with the server's copy
type Synchronizer struct {
	store    *Store
	profiles ProfileFetcher
	hydrator Hydrator
	logger   Logger
}

// NewSynchronizer creates a new profile synchronizer
func NewSynchronizer(store *Store, profiles ProfileFetcher, hydrator Hydrator, logger Logger) *Synchronizer {
	return &Synchronizer{store, profiles, hydrator, loggerOrNoop(logger)}
}

// Sync fetches the cached user's profile and merges it into the session.
// With no cached user nothing is requested and SyncSkipped is returned.
// Failures leave the session untouched and return SyncFailed.
func (s *Synchronizer) Sync(ctx context.Context) (Record, SyncResult) {
	rec, ok := s.store.CurrentUser()
	if !ok || rec.Name == "" {
		return Record{}, SyncSkipped
	}

	fields, err := s.profiles.ProfileFields(ctx, rec.Name)
	if err != nil {
		s.logger.Print(terminal.NewDebugLog("Could not refresh profile: %s", err))
		return rec, SyncFailed
	}
	if fields == nil {
		s.logger.Print(terminal.NewDebugLog("Could not refresh profile: the response carried no profile"))
		return rec, SyncFailed
	}

	return s.MergeProfile(fields)
}

// MergeProfile merges the provided server profile fields into the session,
// keeping the cached credentials, and then hydrates
func (s *Synchronizer) MergeProfile(fields map[string]json.RawMessage) (Record, SyncResult) {
	var mergeErr error
	merged, ok, err := s.store.Update(func(cur *Record) bool {
		next, err := cur.Merge(fields)
		if err != nil {
			mergeErr = err
			return false
		}
		*cur = next
		return true
	})
	if err == nil {
		err = mergeErr
	}
	if err == nil && !ok {
		err = errNoSession
	}
	if err != nil {
		s.logger.Print(terminal.NewDebugLog("Could not refresh profile: %s", err))
		return merged, SyncFailed
	}

	if s.hydrator != nil {
		s.hydrator.Hydrate()
	}
	return merged, SyncApplied
}
