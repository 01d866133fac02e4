package signals

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/slimsig-go/slimsig/disposable"
	"github.com/krew-solutions/slimsig-go/slimsig/internal/slots"
)

// Signal invokes its connected slots, in connection order, each time Emit is called.
//
// Slots may connect, disconnect and emit on the same signal while they run.
// An emission works on the slots that were connected when it started: slots
// connected meanwhile wait for the next emission, and slots disconnected
// before their turn are skipped.
//
// The zero value is an empty signal ready to use. A Signal must not be used
// from several goroutines at once.
//
// Copies of a Signal value share its slots. To replace a signal use Reset or
// Close: overwriting the variable with a new signal leaves the old
// connections reporting Connected until the old slots are garbage collected.
type Signal[A any] struct {
	table  *slots.Table
	name   string
	logger hclog.Logger
}

// NewSignal creates an empty signal configured by opts.
func NewSignal[A any](opts ...Option) *Signal[A] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Signal[A]{
		name:   o.name,
		logger: o.logger,
	}
	s.tableOrInit()
	return s
}

// current returns the live table, or nil when there is none yet or another
// copy of the signal closed it.
func (s *Signal[A]) current() *slots.Table {
	if s.table == nil || s.table.Closed() {
		return nil
	}
	return s.table
}

func (s *Signal[A]) tableOrInit() *slots.Table {
	if s.current() == nil {
		s.table = slots.NewTable()
		if s.name == "" {
			s.name = s.table.TableID().String()
		}
	}
	return s.table
}

func (s *Signal[A]) log() hclog.Logger {
	if s.logger == nil {
		return hclog.NewNullLogger()
	}
	return s.logger
}

// Name returns the name given by WithName, or the UUID of the signal's first slot table.
func (s *Signal[A]) Name() string {
	s.tableOrInit()
	return s.name
}

// Connect registers slot. The slot is not invoked until the next Emit.
func (s *Signal[A]) Connect(slot Slot[A]) Connection {
	table := s.tableOrInit()
	conn := newConnection(table, table.Insert(slot))
	if logger := s.log(); logger.IsTrace() {
		logger.Trace("slot connected", "signal", s.name, "connection", conn.String(), "slots", table.CountAlive())
	}
	return conn
}

func (s *Signal[A]) ConnectFunc(fn func(A)) Connection {
	return s.Connect(SlotFunc[A](fn))
}

// ConnectExtended registers a slot that receives its own connection, so it
// can disconnect itself.
func (s *Signal[A]) ConnectExtended(fn func(Connection, A)) Connection {
	slot := &extendedSlot[A]{fn: fn}
	slot.conn = s.Connect(slot)
	return slot.conn
}

// ConnectOnce registers a slot that is disconnected the first time it is invoked.
func (s *Signal[A]) ConnectOnce(fn func(A)) Connection {
	return s.ConnectExtended(func(conn Connection, args A) {
		conn.Disconnect()
		fn(args)
	})
}

// Attach is Connect for callers that only need to undo the registration.
func (s *Signal[A]) Attach(slot Slot[A]) disposable.Disposable {
	return s.Connect(slot)
}

// Emit invokes every connected slot with args. A panicking slot is not
// recovered: the panic reaches the caller and the remaining slots of this
// emission are not invoked.
func (s *Signal[A]) Emit(args A) {
	table := s.current()
	if table == nil {
		return
	}
	table.ForEachSnapshot(func(slot any) {
		slot.(Slot[A]).Invoke(args)
	})
}

// TryEmit is Emit with every slot isolated from the others. Panics are
// recovered and returned together as one error once all slots have run.
func (s *Signal[A]) TryEmit(args A) error {
	table := s.current()
	if table == nil {
		return nil
	}
	var result *multierror.Error
	table.ForEachSnapshot(func(slot any) {
		if err := invokeRecovering(slot.(Slot[A]), args); err != nil {
			s.log().Warn("slot panicked", "signal", s.name, "error", err)
			result = multierror.Append(result, err)
		}
	})
	return result.ErrorOrNil()
}

func invokeRecovering[A any](slot Slot[A], args A) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "slot panicked")
			} else {
				err = errors.Errorf("slot panicked: %v", r)
			}
		}
	}()
	slot.Invoke(args)
	return nil
}

// DisconnectAll disconnects every slot. Outstanding connections report false
// from Connected afterwards.
func (s *Signal[A]) DisconnectAll() {
	table := s.current()
	if table == nil {
		return
	}
	table.Clear()
	s.log().Trace("all slots disconnected", "signal", s.name)
}

// SlotCount returns the number of connected slots, including ones connected
// or disconnected by a slot that is still running.
func (s *Signal[A]) SlotCount() int {
	table := s.current()
	if table == nil {
		return 0
	}
	return table.CountAlive()
}

func (s *Signal[A]) Empty() bool {
	return s.SlotCount() == 0
}

// Close destroys the signal's slots without invoking them. Every connection
// handed out so far becomes permanently disconnected. The signal itself can
// still be used and starts over empty.
func (s *Signal[A]) Close() {
	table := s.current()
	s.table = nil
	if table == nil {
		return
	}
	table.Close()
	s.log().Trace("signal closed", "signal", s.name)
}

// Reset replaces the signal with a fresh, empty one, as if a new signal had been assigned.
func (s *Signal[A]) Reset() {
	s.Close()
	s.tableOrInit()
}
