// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"net"
	"sync"
	"testing"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port not handed out before in this test binary.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	for {
		listener, err := net.Listen("tcp", ":0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		p := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}

		portMutex.Lock()
		_, taken := usedPorts[p]
		if !taken {
			usedPorts[p] = struct{}{}
		}
		portMutex.Unlock()

		if !taken {
			return p
		}
	}
}

// GetClosedAddress returns a localhost address that nothing is listening on.
func GetClosedAddress(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve address: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("Failed to close listener: %v", err)
	}
	return addr
}
