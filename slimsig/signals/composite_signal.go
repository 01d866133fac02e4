package signals

import (
	"github.com/krew-solutions/slimsig-go/slimsig/disposable"
)

// CompositeSignal fans every operation out to its delegates, in order.
type CompositeSignal[A any] struct {
	delegates []Emitter[A]
}

func NewCompositeSignal[A any](delegates ...Emitter[A]) *CompositeSignal[A] {
	return &CompositeSignal[A]{delegates: delegates}
}

// Attach connects slot to every delegate. Disposing the result disconnects it from all of them.
func (s *CompositeSignal[A]) Attach(slot Slot[A]) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		disposables = append(disposables, delegate.Attach(slot))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (s *CompositeSignal[A]) Emit(args A) {
	for _, delegate := range s.delegates {
		delegate.Emit(args)
	}
}

func (s *CompositeSignal[A]) DisconnectAll() {
	for _, delegate := range s.delegates {
		delegate.DisconnectAll()
	}
}

func (s *CompositeSignal[A]) SlotCount() int {
	count := 0
	for _, delegate := range s.delegates {
		count += delegate.SlotCount()
	}
	return count
}

func (s *CompositeSignal[A]) Empty() bool {
	for _, delegate := range s.delegates {
		if !delegate.Empty() {
			return false
		}
	}
	return true
}
