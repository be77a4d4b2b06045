package mattress

import (
	"fmt"

	"github.com/google/uuid"
)

type ConnectMethod int

const (
	ConnectQR ConnectMethod = iota
	ConnectSerial
)

func (m ConnectMethod) String() string {
	if m == ConnectSerial {
		return "serial"
	}
	return "qr"
}

// Link records how the user reached the mattress. Nothing is actually
// paired; every attempt succeeds.
type Link struct {
	Method  ConnectMethod
	Serial  string
	Session string
}

func NewLink(method ConnectMethod, serial string) Link {
	return Link{
		Method:  method,
		Serial:  serial,
		Session: uuid.NewString(),
	}
}

func (l Link) Label() string {
	switch l.Method {
	case ConnectSerial:
		return fmt.Sprintf("Serial %s", l.Serial)
	default:
		return "QR pairing (demo)"
	}
}

// ShortSession is the first block of the session id.
func (l Link) ShortSession() string {
	if len(l.Session) < 8 {
		return l.Session
	}
	return l.Session[:8]
}
