package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/log"
	"github.com/nextep-cli/nextep/network"
	"github.com/spf13/viper"
)

// NextEpisode fetches show pages with a single GET per attempt.
type NextEpisode struct {
	BaseURL string
	Client  *http.Client

	// Retries is the number of extra attempts after a temporary failure.
	Retries int

	// MinDelay and MaxDelay bound the wait between attempts.
	MinDelay, MaxDelay time.Duration
}

// NewNextEpisode returns a fetcher configured from source.* and fetch.* keys.
func NewNextEpisode() *NextEpisode {
	return &NextEpisode{
		BaseURL:  viper.GetString(key.SourceBaseURL),
		Client:   network.New(),
		Retries:  max(viper.GetInt(key.FetchRetries), 0),
		MinDelay: 500 * time.Millisecond,
		MaxDelay: 5 * time.Second,
	}
}

func (n *NextEpisode) URL(id string) string {
	return strings.TrimSuffix(n.BaseURL, "/") + "/" + url.PathEscape(id)
}

func (n *NextEpisode) Fetch(ctx context.Context, id string) ([]byte, error) {
	boff := backoff.Backoff{
		Min:    n.MinDelay,
		Max:    n.MaxDelay,
		Factor: 2,
		Jitter: true,
	}

	entry := log.WithField("show", id)
	for {
		body, err := n.get(ctx, id)
		if err == nil {
			entry.Debugf("fetched %d bytes", len(body))
			return body, nil
		}

		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) || !fetchErr.Temporary() || int(boff.Attempt()) >= n.Retries {
			entry.Warnf("fetch failed: %s", err)
			return nil, err
		}

		wait := boff.Duration()
		entry.Infof("fetch failed, retrying in %s: %s", wait, err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &FetchError{ID: id, URL: n.URL(id), Err: ctx.Err()}
		case <-timer.C:
		}
	}
}

func (n *NextEpisode) get(ctx context.Context, id string) ([]byte, error) {
	address := n.URL(id)
	fail := func(status int, err error) error {
		return &FetchError{ID: id, URL: address, Status: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, fail(0, err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	client := n.Client
	if client == nil {
		client = network.Client
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fail(0, ctxErr)
		}
		return nil, fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fail(resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(0, err)
	}
	return body, nil
}
