package mock

import "log/slog"

// Activation wraps setup so it runs at most once per context for name.
//
// The wrapper returns false without calling setup when name is masked, true
// without calling setup when the flag is already set, and otherwise calls
// setup and returns true. The flag is then overwritten with the result, so a
// masked call clears a flag set by an earlier run. An error from setup is
// returned unchanged and leaves the flag as it was.
func Activation[C Context](name string, setup func(C) error) func(C) (bool, error) {
	return func(c C) (bool, error) {
		return activate(c.Mocks(), name, func() error {
			return setup(c)
		})
	}
}

// ActivationWith is Activation for setup routines that take an argument.
func ActivationWith[C Context, A any](name string, setup func(C, A) error) func(C, A) (bool, error) {
	return func(c C, arg A) (bool, error) {
		return activate(c.Mocks(), name, func() error {
			return setup(c, arg)
		})
	}
}

func activate(state *State, name string, setup func() error) (bool, error) {
	slog.Info("starting mock", "name", name)

	key := Sanitize(name)
	active := false

	switch {
	case state.Masked(name):
		slog.Info("stopping mock", "name", name, "state", "masked")
	case state.flags[key]:
		active = true

		slog.Info("stopping mock", "name", name, "state", "exists")
	default:
		if err := setup(); err != nil {
			slog.Error("mock setup failed", "name", name, "error", err)
			return false, err
		}

		active = true

		slog.Info("stopping mock", "name", name)
	}

	state.set(key, active)

	return active, nil
}
