package transport

import (
	"net"
	"testing"
	"time"
)

// startReceiver opens a loopback UDP listener and returns its address
// plus a channel delivering received payloads.
func startReceiver(t *testing.T) (string, chan []byte) {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	received := make(chan []byte, 16)
	go func() {
		buf := make([]byte, 64*1024)
		for {
			conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			n, _, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			payload := make([]byte, n)
			copy(payload, buf[:n])
			received <- payload
		}
	}()

	return conn.LocalAddr().String(), received
}

func TestUDPSender_DeliversDatagram(t *testing.T) {
	addr, received := startReceiver(t)

	sender, err := NewUDPSender(addr)
	if err != nil {
		t.Fatalf("NewUDPSender: %v", err)
	}
	defer sender.Close()

	payload := []byte("[640.0, 360.0, 128.0]")
	if err := sender.Send(payload); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-received:
		if string(got) != string(payload) {
			t.Errorf("received %q, want %q", got, payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("datagram not received")
	}
}

func TestUDPSender_OneDatagramPerSend(t *testing.T) {
	addr, received := startReceiver(t)

	sender, err := NewUDPSender(addr)
	if err != nil {
		t.Fatalf("NewUDPSender: %v", err)
	}
	defer sender.Close()

	for i := 0; i < 3; i++ {
		if err := sender.Send([]byte{byte('a' + i)}); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
	}

	for i := 0; i < 3; i++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatalf("datagram %d not received", i)
		}
	}

	select {
	case extra := <-received:
		t.Errorf("unexpected extra datagram %q", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUDPSender_SendAfterCloseFails(t *testing.T) {
	addr, _ := startReceiver(t)

	sender, err := NewUDPSender(addr)
	if err != nil {
		t.Fatalf("NewUDPSender: %v", err)
	}
	sender.Close()

	if err := sender.Send([]byte("late")); err == nil {
		t.Error("Send after Close should fail")
	}
}

func TestNewUDPSender_BadAddress(t *testing.T) {
	if _, err := NewUDPSender("not-an-address"); err == nil {
		t.Error("NewUDPSender should reject an unparseable address")
	}
}
