// Package network provides the HTTP clients used to talk to the episode source site.
package network

import (
	"net/http"
	"time"

	"github.com/nextep-cli/nextep/key"
	"github.com/spf13/viper"
)

// DefaultTimeout applies when fetch.timeout is unset or not positive.
const DefaultTimeout = 30 * time.Second

// Client is the shared client for plain requests. Its transport keeps
// enough idle connections per host for a full concurrent tracking run.
var Client = &http.Client{
	Timeout:   DefaultTimeout,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 64
	t.MaxIdleConnsPerHost = 32
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = DefaultTimeout
	return t
}

// Timeout returns the per-request timeout configured by fetch.timeout.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.FetchTimeout)
	if seconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(seconds) * time.Second
}

// New builds a client honoring fetch.timeout and fetch.spoof_tls.
func New() *http.Client {
	timeout := Timeout()
	if viper.GetBool(key.FetchSpoofTLS) {
		return &http.Client{
			Timeout:   timeout,
			Transport: NewSpoofedTransport(timeout),
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: Client.Transport,
	}
}
