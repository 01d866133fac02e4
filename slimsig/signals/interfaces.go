package signals

import (
	"github.com/krew-solutions/slimsig-go/slimsig/disposable"
)

type Emitter[A any] interface {
	Attach(slot Slot[A]) disposable.Disposable
	Emit(args A)
	DisconnectAll()
	SlotCount() int
	Empty() bool
}
