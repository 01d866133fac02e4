package mediator

import (
	"reflect"
	"slices"

	"github.com/krew-solutions/slimsig-go/slimsig/signals"
)

type closer interface {
	Close()
}

// Mediator routes events to subscribers by the event's static type.
// Each event type gets its own signal, so subscribers of one type never
// see events of another.
type Mediator struct {
	opts    []signals.Option
	signals map[reflect.Type]closer
}

// NewMediator creates a mediator; opts are applied to every per-type signal it creates.
func NewMediator(opts ...signals.Option) *Mediator {
	return &Mediator{
		opts:    opts,
		signals: make(map[reflect.Type]closer),
	}
}

func signalFor[E any](m *Mediator, create bool) *signals.Signal[E] {
	eventType := reflect.TypeFor[E]()
	if s, ok := m.signals[eventType]; ok {
		return s.(*signals.Signal[E])
	}
	if !create {
		return nil
	}
	opts := append(slices.Clone(m.opts), signals.WithName(eventType.String()))
	s := signals.NewSignal[E](opts...)
	m.signals[eventType] = s
	return s
}

// Subscribe connects handler to events of type E.
func Subscribe[E any](m *Mediator, handler func(E)) signals.Connection {
	return signalFor[E](m, true).ConnectFunc(handler)
}

// Publish delivers event to every subscriber of type E, in subscription order.
func Publish[E any](m *Mediator, event E) {
	if s := signalFor[E](m, false); s != nil {
		s.Emit(event)
	}
}

// TryPublish is Publish with subscribers isolated from each other's panics.
func TryPublish[E any](m *Mediator, event E) error {
	if s := signalFor[E](m, false); s != nil {
		return s.TryEmit(event)
	}
	return nil
}

func SubscriberCount[E any](m *Mediator) int {
	if s := signalFor[E](m, false); s != nil {
		return s.SlotCount()
	}
	return 0
}

// Close disconnects every subscription of every event type.
func (m *Mediator) Close() {
	for eventType, s := range m.signals {
		s.Close()
		delete(m.signals, eventType)
	}
}
