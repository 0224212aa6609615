package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nextep-cli/nextep/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// SpoofedTransport sends requests over TLS connections carrying a Chrome
// client hello. HTTP/2 is tried first; when that fails the request is
// replayed over HTTP/1.1.
type SpoofedTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

// NewSpoofedTransport returns a SpoofedTransport whose dials and handshakes
// are bounded by timeout.
func NewSpoofedTransport(timeout time.Duration) *SpoofedTransport {
	dialer := &net.Dialer{Timeout: timeout}

	return &SpoofedTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, dialer, network, addr, nil)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, dialer, network, addr, []string{"http/1.1"})
			},
			ResponseHeaderTimeout: timeout,
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *SpoofedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	log.WithField("url", req.URL.String()).Debugf("h2 failed, retrying over http/1.1: %s", err)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}
	return t.h1.RoundTrip(retry)
}

func dialChrome(ctx context.Context, dialer *net.Dialer, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	return tlsConn, nil
}
