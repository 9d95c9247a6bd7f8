package i

// Environment accepts actions and answers with stimuli.
type Environment[A, S any] interface {
	// InitialStimulus reports the state of the environment before any action.
	InitialStimulus() S

	// Update applies an action and reports the resulting stimulus.
	// It returns an error when the action cannot be executed.
	Update(action A) (S, error)
}

// Agent acts on an environment of type E one discrete step at a time.
type Agent[E any] interface {
	// Act performs a single step against the environment.
	Act(env E) error

	// ShouldStop reports whether the agent has nothing left to do.
	ShouldStop() bool
}
