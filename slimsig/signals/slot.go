package signals

// Void is the argument type of signals that carry no parameters.
type Void = struct{}

// Slot is anything that can be invoked with a signal's arguments.
type Slot[A any] interface {
	Invoke(args A)
}

// SlotFunc adapts a plain function, closure or bound method value to Slot.
type SlotFunc[A any] func(A)

func (f SlotFunc[A]) Invoke(args A) {
	f(args)
}

// Ignore adapts a function that takes no arguments to a slot of any signature.
func Ignore[A any](fn func()) SlotFunc[A] {
	return func(A) { fn() }
}

type extendedSlot[A any] struct {
	conn Connection
	fn   func(Connection, A)
}

func (s *extendedSlot[A]) Invoke(args A) {
	s.fn(s.conn, args)
}
