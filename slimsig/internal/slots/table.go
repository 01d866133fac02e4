package slots

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTableClosed is the panic value of Insert on a closed table.
var ErrTableClosed = errors.New("slots: table is closed")

// ID identifies one registration within a Table. IDs are issued in increasing
// order starting at 1 and are never reused; 0 means "no slot".
type ID uint64

type record struct {
	id    ID
	slot  any
	alive bool
}

// Table is the ordered slot storage behind a signal.
//
// Records are only marked dead while an emission is running; physical
// removal waits until the outermost emission has returned.
type Table struct {
	tableID uuid.UUID

	records []*record
	live    map[ID]*record

	lastID ID

	// number of ForEachSnapshot calls currently on the stack
	depth int

	dead   int
	closed bool
}

// NewTable creates an empty table with a fresh UUID.
func NewTable() *Table {
	return &Table{
		tableID: uuid.New(),
		live:    make(map[ID]*record),
	}
}

// TableID identifies the table in log records and connection strings.
func (t *Table) TableID() uuid.UUID {
	return t.tableID
}

// Insert appends a live record holding slot and returns its ID.
func (t *Table) Insert(slot any) ID {
	if t.closed {
		panic(ErrTableClosed)
	}
	t.lastID++
	rec := &record{id: t.lastID, slot: slot, alive: true}
	t.records = append(t.records, rec)
	t.live[rec.id] = rec
	return rec.id
}

// MarkDead kills the record with the given ID. Unknown and already dead IDs are ignored.
func (t *Table) MarkDead(id ID) {
	rec, ok := t.live[id]
	if !ok {
		return
	}
	t.kill(rec)
	t.maybeCompact()
}

func (t *Table) IsAlive(id ID) bool {
	_, ok := t.live[id]
	return ok
}

func (t *Table) CountAlive() int {
	return len(t.live)
}

// Len returns the number of stored records, dead ones included.
func (t *Table) Len() int {
	return len(t.records)
}

// ForEachSnapshot calls fn with the slot of every record that is live when the
// call begins, in insertion order. A record killed before its turn is skipped;
// records inserted meanwhile are left for the next call.
func (t *Table) ForEachSnapshot(fn func(slot any)) {
	if len(t.live) == 0 {
		return
	}

	snapshot := make([]*record, 0, len(t.live))
	for _, rec := range t.records {
		if rec.alive {
			snapshot = append(snapshot, rec)
		}
	}

	t.depth++
	defer func() {
		t.depth--
		t.maybeCompact()
	}()

	for _, rec := range snapshot {
		if !rec.alive {
			continue
		}
		fn(rec.slot)
	}
}

// Clear kills every record.
func (t *Table) Clear() {
	for _, rec := range t.records {
		if rec.alive {
			t.kill(rec)
		}
	}
	t.maybeCompact()
}

// Close clears the table and refuses further inserts.
func (t *Table) Close() {
	t.closed = true
	t.Clear()
}

func (t *Table) Closed() bool {
	return t.closed
}

func (t *Table) kill(rec *record) {
	rec.alive = false
	rec.slot = nil
	delete(t.live, rec.id)
	t.dead++
}

func (t *Table) maybeCompact() {
	if t.depth > 0 || t.dead == 0 || t.dead*2 < len(t.records) {
		return
	}

	kept := t.records[:0]
	for _, rec := range t.records {
		if rec.alive {
			kept = append(kept, rec)
		}
	}
	// drop references held by the tail so dead slots can be collected
	clear(t.records[len(kept):])
	t.records = kept
	t.dead = 0
}
