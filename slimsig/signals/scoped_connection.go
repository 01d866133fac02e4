package signals

// ScopedConnection owns a Connection and disconnects it when disposed.
// Typical use is tying a slot to the enclosing function:
//
//	scoped := signals.MakeScoped(sig.ConnectFunc(handle))
//	defer scoped.Dispose()
type ScopedConnection struct {
	conn  Connection
	owned bool
}

func MakeScoped(conn Connection) *ScopedConnection {
	return &ScopedConnection{conn: conn, owned: true}
}

// Dispose disconnects the owned connection once. Later calls, calls on a
// released scope and calls on the zero value do nothing.
func (s *ScopedConnection) Dispose() {
	if s == nil || !s.owned {
		return
	}
	s.owned = false
	s.conn.Disconnect()
	s.conn = Connection{}
}

// Release hands the connection back to the caller; Dispose will no longer disconnect it.
func (s *ScopedConnection) Release() Connection {
	if s == nil || !s.owned {
		return Connection{}
	}
	conn := s.conn
	s.owned = false
	s.conn = Connection{}
	return conn
}

func (s *ScopedConnection) Connection() Connection {
	if s == nil {
		return Connection{}
	}
	return s.conn
}

func (s *ScopedConnection) Connected() bool {
	return s.Connection().Connected()
}
