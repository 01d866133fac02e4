package signals

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_Connected(t *testing.T) {
	s := NewSignal[Void]()
	conn := s.Connect(Ignore[Void](func() {}))
	assert.True(t, conn.Connected())

	s.DisconnectAll()
	assert.False(t, conn.Connected())
}

func TestConnection_Disconnect(t *testing.T) {
	s := NewSignal[Void]()
	fired := false
	conn := s.Connect(Ignore[Void](func() { fired = true }))

	conn.Disconnect()
	s.Emit(Void{})

	assert.False(t, fired)
	assert.False(t, conn.Connected())
	assert.Equal(t, 0, s.SlotCount())
}

func TestConnection_DisconnectTwiceIsNoop(t *testing.T) {
	s := NewSignal[Void]()
	conn := s.Connect(Ignore[Void](func() {}))
	other := s.Connect(Ignore[Void](func() {}))

	assert.NotPanics(t, func() {
		conn.Disconnect()
		conn.Disconnect()
	})
	assert.True(t, other.Connected())
	assert.Equal(t, 1, s.SlotCount())
}

func TestConnection_ConsistentAcrossCopies(t *testing.T) {
	s := NewSignal[Void]()
	conn1 := s.Connect(Ignore[Void](func() {}))
	conn2 := conn1

	conn1.Disconnect()

	assert.Equal(t, conn1.Connected(), conn2.Connected())
	assert.False(t, conn2.Connected())
}

func TestConnection_DoesNotAffectSlotLifetime(t *testing.T) {
	s := NewSignal[Void]()
	fired := false
	func() {
		_ = s.Connect(Ignore[Void](func() { fired = true }))
	}()

	s.Emit(Void{})

	assert.True(t, fired)
}

func TestConnection_ZeroValue(t *testing.T) {
	var conn Connection
	assert.False(t, conn.Connected())
	conn.Disconnect() // should not panic
	assert.Equal(t, "disconnected", conn.String())
}

func TestConnection_SignalClosed(t *testing.T) {
	var conn Connection
	func() {
		scoped := NewSignal[Void]()
		conn = scoped.Connect(Ignore[Void](func() {}))
		scoped.Close()
	}()

	assert.False(t, conn.Connected())
	assert.NotPanics(t, conn.Disconnect)
}

func TestConnection_SignalCollected(t *testing.T) {
	conn := connectToUnreachableSignal()

	require.Eventually(t, func() bool {
		runtime.GC()
		return !conn.Connected()
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotPanics(t, conn.Disconnect)
}

//go:noinline
func connectToUnreachableSignal() Connection {
	s := NewSignal[Void]()
	return s.Connect(Ignore[Void](func() {}))
}

func TestConnection_DoesNotMatchLaterSlot(t *testing.T) {
	s := NewSignal[Void]()
	stale := s.Connect(Ignore[Void](func() {}))
	stale.Disconnect()

	fresh := s.Connect(Ignore[Void](func() {}))
	stale.Disconnect()

	assert.False(t, stale.Connected())
	assert.True(t, fresh.Connected())
	assert.NotEqual(t, stale, fresh)
}

func TestConnection_String(t *testing.T) {
	s := NewSignal[Void]()
	conn := s.Connect(Ignore[Void](func() {}))
	assert.True(t, strings.HasSuffix(conn.String(), "#1"))
	assert.True(t, strings.HasPrefix(conn.String(), s.Name()))
}

func TestConnection_Dispose(t *testing.T) {
	s := NewSignal[Void]()
	conn := s.Connect(Ignore[Void](func() {}))
	conn.Dispose()
	assert.False(t, conn.Connected())
}
