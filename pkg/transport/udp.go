package transport

import (
	"fmt"
	"net"
)

// Sender delivers one encoded frame as a single best-effort datagram.
// There is no acknowledgment, retry or ordering guarantee; a failed send
// means that frame's data is simply gone.
type Sender interface {
	Send(payload []byte) error

	// Close releases the socket
	Close() error
}

// UDPSender writes datagrams to a fixed destination over a connected
// UDP socket.
type UDPSender struct {
	conn *net.UDPConn
	addr string
}

// NewUDPSender resolves the destination and connects the socket.
// "Connecting" a UDP socket only pins the destination; no traffic is
// exchanged, so an unreachable consumer does not fail here.
func NewUDPSender(addr string) (*UDPSender, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve destination %s: %w", addr, err)
	}

	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("open socket to %s: %w", addr, err)
	}

	return &UDPSender{
		conn: conn,
		addr: addr,
	}, nil
}

// Send writes one datagram. Callers log and drop on error; the next
// frame is attempted regardless.
func (s *UDPSender) Send(payload []byte) error {
	if _, err := s.conn.Write(payload); err != nil {
		return fmt.Errorf("send to %s: %w", s.addr, err)
	}
	return nil
}

// Addr returns the configured destination.
func (s *UDPSender) Addr() string {
	return s.addr
}

// Close closes the socket.
func (s *UDPSender) Close() error {
	return s.conn.Close()
}
