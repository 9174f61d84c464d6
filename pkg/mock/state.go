// Package mock tracks which test doubles a test context has activated.
//
// A test context embeds State (or returns one from Mocks) and wraps each
// setup routine with Activation. The wrapped routine runs its setup at most
// once per context, and never for names the context has masked:
//
//	type httpContext struct {
//	    mock.State
//	    client *fakeClient
//	}
//
//	var mockClient = mock.Activation("net.http.Client", func(c *httpContext) error {
//	    c.client = newFakeClient()
//	    return nil
//	})
//
//	active, err := mockClient(ctx)
package mock

import "strings"

// Context is implemented by test contexts that track mock activation.
type Context interface {
	Mocks() *State
}

// State holds a test context's mask and activation flags. The zero value is
// ready to use. State is not safe for concurrent use.
type State struct {
	mask  map[string]struct{}
	flags map[string]bool
}

// NewState returns a State that masks the given names.
func NewState(masked ...string) *State {
	s := &State{}
	s.Mask(masked...)

	return s
}

// Mocks returns s, so embedding State satisfies Context.
func (s *State) Mocks() *State {
	return s
}

// Mask suppresses activation of the given names.
func (s *State) Mask(names ...string) {
	if s.mask == nil {
		s.mask = make(map[string]struct{}, len(names))
	}

	for _, name := range names {
		s.mask[name] = struct{}{}
	}
}

// Masked reports whether name is masked.
func (s *State) Masked(name string) bool {
	_, ok := s.mask[name]
	return ok
}

// Active reports the flag stored for name. Unknown names are inactive.
func (s *State) Active(name string) bool {
	return s.flags[Sanitize(name)]
}

// Flags returns a copy of the stored flags keyed by sanitized name.
func (s *State) Flags() map[string]bool {
	flags := make(map[string]bool, len(s.flags))
	for key, value := range s.flags {
		flags[key] = value
	}

	return flags
}

func (s *State) set(key string, active bool) {
	if s.flags == nil {
		s.flags = make(map[string]bool)
	}

	s.flags[key] = active
}

// Sanitize maps a symbol name to its flag key: dots become underscores and
// leading or trailing underscores are removed ("a.b.c" -> "a_b_c").
func Sanitize(name string) string {
	return strings.Trim(strings.ReplaceAll(name, ".", "_"), "_")
}
