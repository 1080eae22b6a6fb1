// Package viewstate models the lifecycle of data a page loads from the API.
//
// A State is exactly one of Loading, Ready (with data) or Failed (with an
// error); the kinds are mutually exclusive by construction.
package viewstate

// Kind identifies the variant of a State.
type Kind int

const (
	Loading Kind = iota
	Ready
	Failed
)

func (k Kind) String() string {
	switch k {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// State is a tagged union over the load lifecycle of a T.
// The zero value is Loading.
type State[T any] struct {
	kind Kind
	data T
	err  error
}

// NewLoading returns a Loading state.
func NewLoading[T any]() State[T] { return State[T]{} }

// NewReady returns a Ready state holding data.
func NewReady[T any](data T) State[T] { return State[T]{kind: Ready, data: data} }

// NewFailed returns a Failed state holding err.
func NewFailed[T any](err error) State[T] { return State[T]{kind: Failed, err: err} }

// From returns Failed when err is non-nil, Ready otherwise.
func From[T any](data T, err error) State[T] {
	if err != nil {
		return NewFailed[T](err)
	}
	return NewReady(data)
}

func (s State[T]) Kind() Kind      { return s.kind }
func (s State[T]) IsLoading() bool { return s.kind == Loading }
func (s State[T]) IsReady() bool   { return s.kind == Ready }
func (s State[T]) IsFailed() bool  { return s.kind == Failed }

// Data returns the payload; it is the zero value unless the state is Ready.
func (s State[T]) Data() T { return s.data }

// Err returns the failure; it is nil unless the state is Failed.
func (s State[T]) Err() error { return s.err }
