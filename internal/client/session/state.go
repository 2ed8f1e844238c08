// Package session keeps track of who is logged in on this client.
//
// State changes only through Reduce, a pure function of the previous state
// and an Action. Session wraps the reducer with persistence of the token in
// the local metadata repository and synchronous change notifications.
package session

// Identity is the logged-in user as read from the credential.
type Identity struct {
	ID       string
	Email    string
	UserName string
	Token    string
}

// State is the whole session state. User is nil when logged out.
type State struct {
	User *Identity
}

func (s State) LoggedIn() bool { return s.User != nil }

// Action is one of Login, Register or Logout.
type Action interface {
	isAction()
}

type Login struct{ Payload Identity }

type Register struct{ Payload Identity }

type Logout struct{}

func (Login) isAction()    {}
func (Register) isAction() {}
func (Logout) isAction()   {}

// Reduce returns the state after applying a. Login and Register both make
// the payload the current user; Logout clears it. The previous state is
// never modified.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Login:
		u := a.Payload
		return State{User: &u}
	case Register:
		u := a.Payload
		return State{User: &u}
	case Logout:
		return State{}
	default:
		return s
	}
}
