// pkg/netdiag/netdiag.go

// Package netdiag reimplements the bundle's quick network checks: DNS
// shortcuts, external IP discovery, port reachability and certificate
// expiry.
package netdiag

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
)

const probeTimeout = 5 * time.Second

// Lookup resolves host and returns its addresses plus the CNAME when one
// exists, roughly what the old dig shortcut printed.
func Lookup(ctx context.Context, host string) ([]string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var r net.Resolver
	addrs, err := r.LookupHost(ctx, host)
	if err != nil {
		return nil, "", cerr.Wrapf(err, "resolve %s", host)
	}
	sort.Strings(addrs)

	cname, _ := r.LookupCNAME(ctx, host)
	cname = strings.TrimSuffix(cname, ".")
	if cname == host {
		cname = ""
	}
	return addrs, cname, nil
}

// ExternalIP asks a public what's-my-ip endpoint for the address this
// machine egresses from.
func ExternalIP(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://checkip.amazonaws.com", nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", cerr.Wrap(err, "external IP lookup")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}
	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", cerr.Newf("unexpected response %q", ip)
	}
	return ip, nil
}

// PortOpen reports whether a TCP connection to host:port succeeds.
func PortOpen(ctx context.Context, host string, port int) bool {
	d := net.Dialer{Timeout: probeTimeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, fmt.Sprint(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// CertInfo summarizes the leaf certificate served at addr.
type CertInfo struct {
	Subject  string
	Issuer   string
	NotAfter time.Time
	DaysLeft int
}

// certAddr normalizes addr into the TLS server name and a dialable
// host:port, defaulting to 443. Bare IPv6 literals count as hosts, not
// as host:port.
func certAddr(addr string) (host, hostPort string) {
	if h, _, err := net.SplitHostPort(addr); err == nil {
		return h, addr
	}
	h := strings.Trim(addr, "[]")
	return h, net.JoinHostPort(h, "443")
}

// Cert connects to addr (host or host:port, default 443) and returns the
// leaf certificate summary the old openssl wrapper printed.
func Cert(ctx context.Context, addr string) (*CertInfo, error) {
	host, hostPort := certAddr(addr)

	d := tls.Dialer{
		NetDialer: &net.Dialer{Timeout: probeTimeout},
		Config:    &tls.Config{ServerName: host},
	}
	conn, err := d.DialContext(ctx, "tcp", hostPort)
	if err != nil {
		return nil, cerr.Wrapf(err, "TLS connect %s", addr)
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, cerr.Newf("no certificate from %s", addr)
	}
	leaf := state.PeerCertificates[0]
	return &CertInfo{
		Subject:  leaf.Subject.CommonName,
		Issuer:   leaf.Issuer.CommonName,
		NotAfter: leaf.NotAfter,
		DaysLeft: int(time.Until(leaf.NotAfter).Hours() / 24),
	}, nil
}
