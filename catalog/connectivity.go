package catalog

// Connectivity is the probe outcome threaded through Resolve. It replaces the
// shared "connected" flag the UI used to read: the resolver only ever sees an
// explicit value.
type Connectivity int

const (
	ConnectivityUnknown Connectivity = iota
	ConnectivityDisconnected
	ConnectivityConnected
)

func (c Connectivity) String() string {
	switch c {
	case ConnectivityConnected:
		return "connected"
	case ConnectivityDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
