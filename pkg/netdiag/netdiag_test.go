// pkg/netdiag/netdiag_test.go

package netdiag

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortOpen(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	assert.True(t, PortOpen(context.Background(), "127.0.0.1", port))

	ln.Close()
	assert.False(t, PortOpen(context.Background(), "127.0.0.1", port))
}

func TestLookupLocalhost(t *testing.T) {
	t.Parallel()

	addrs, _, err := Lookup(context.Background(), "localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, addrs)
}

func TestCertAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr         string
		wantHost     string
		wantHostPort string
	}{
		{"example.com", "example.com", "example.com:443"},
		{"example.com:8443", "example.com", "example.com:8443"},
		{"::1", "::1", "[::1]:443"},
		{"[::1]", "::1", "[::1]:443"},
		{"[::1]:8443", "::1", "[::1]:8443"},
		{"10.0.0.1", "10.0.0.1", "10.0.0.1:443"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()
			host, hostPort := certAddr(tt.addr)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantHostPort, hostPort)
		})
	}
}

func TestCertBadAddress(t *testing.T) {
	t.Parallel()

	_, err := Cert(context.Background(), "not a host:port:extra")
	assert.Error(t, err)
}
