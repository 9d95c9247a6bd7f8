package i

// Renderer draws an environment of type E. Render receives a read-only view;
// implementations must not mutate it.
type Renderer[E any] interface {
	Setup() error
	Render(env E) error
	Teardown() error
}
