package signals

import (
	"fmt"
	"weak"

	"github.com/krew-solutions/slimsig-go/slimsig/internal/slots"
)

// Connection refers to one slot registration. It is a small value: copies
// refer to the same registration, and disconnecting through any of them is
// visible through all of them.
//
// A Connection does not keep its signal alive. Once the signal is closed,
// reset or garbage collected the connection reports false from Connected and
// Disconnect does nothing. The zero value is a connection to nothing.
type Connection struct {
	table weak.Pointer[slots.Table]
	id    slots.ID
}

func newConnection(table *slots.Table, id slots.ID) Connection {
	return Connection{table: weak.Make(table), id: id}
}

func (c Connection) resolve() *slots.Table {
	if c.id == 0 {
		return nil
	}
	table := c.table.Value()
	if table == nil || table.Closed() {
		return nil
	}
	return table
}

// Connected reports whether the slot will be invoked by the next emission.
func (c Connection) Connected() bool {
	table := c.resolve()
	return table != nil && table.IsAlive(c.id)
}

// Disconnect removes the slot from its signal. Calling it again, or after the
// signal is gone, is a no-op.
func (c Connection) Disconnect() {
	if table := c.resolve(); table != nil {
		table.MarkDead(c.id)
	}
}

// Dispose makes Connection a disposable.Disposable.
func (c Connection) Dispose() {
	c.Disconnect()
}

func (c Connection) String() string {
	table := c.table.Value()
	if c.id == 0 || table == nil {
		return "disconnected"
	}
	return fmt.Sprintf("%s#%d", table.TableID(), c.id)
}
