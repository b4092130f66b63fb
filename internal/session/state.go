package session

// State is the lifecycle state of the CLI session
type State string

// set of session lifecycle states
const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateKeyed         State = "authenticated (keyed)"
)

// StateOf reports the lifecycle state of the provided session
func StateOf(rec Record, ok bool) State {
	switch {
	case !ok || rec.AccessToken == "":
		return StateAnonymous
	case rec.APIKey == "":
		return StateAuthenticated
	default:
		return StateKeyed
	}
}

// State reports the lifecycle state of the persisted session
func (s *Store) State() State {
	return StateOf(s.CurrentUser())
}
