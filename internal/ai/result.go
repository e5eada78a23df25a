package ai

// Result carries an AI answer together with whether the call actually
// succeeded. Callers always get a usable Value; OK tells them whether it
// came from the model or from a fallback.
type Result[T any] struct {
	OK    bool
	Value T
}

func ok[T any](v T) Result[T]       { return Result[T]{OK: true, Value: v} }
func fallback[T any](v T) Result[T] { return Result[T]{Value: v} }
