// Package fetch retrieves vote definition documents and their detached
// signatures over HTTP(S). Fetching is pure I/O: the fetcher hands back the
// exact bytes of the response body and never looks into them, so that nothing
// is interpreted before the signature check had a chance to run.
//
// Documentation Last Review: 10.02.2025
package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// SignatureSuffix is appended to a definition URL to derive the URL of its
// detached signature. The suffix names the digest the signature covers.
const SignatureSuffix = ".rmd160"

// Fetcher is the abstraction to retrieve the raw bytes of a remote document.
type Fetcher interface {
	// Fetch returns the bytes published at the URL, or a *TransportError
	// when they cannot be retrieved. It does not retry.
	Fetch(url string) ([]byte, error)
}

// SignatureURL derives the URL of the detached signature of the definition
// published at the given URL.
func SignatureURL(url string) string {
	return url + SignatureSuffix
}

// TransportError indicates that a network fetch failed, and for which URL. It
// is never retried; the caller reports it and stops.
type TransportError struct {
	URL string
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("couldn't fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// httpFetcher is a fetcher using the HTTP(S) transport.
//
// - implements fetch.Fetcher
type httpFetcher struct {
	logger zerolog.Logger

	getFn func(url string) (*http.Response, error)
}

// NewHTTPFetcher creates a new fetcher using the given HTTP client, or the
// default client when nil.
func NewHTTPFetcher(client *http.Client, logger zerolog.Logger) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return httpFetcher{
		logger: logger,
		getFn:  client.Get,
	}
}

// Fetch implements fetch.Fetcher. It performs a single GET request and
// returns the body bytes, or a *TransportError on any failure including a
// non-success status.
func (f httpFetcher) Fetch(url string) ([]byte, error) {
	f.logger.Debug().Str("url", url).Msg("fetching document")

	resp, err := f.getFn(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			URL: url,
			Err: xerrors.Errorf("unexpected status: %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	f.logger.Debug().Str("url", url).Int("size", len(data)).Msg("document fetched")

	return data, nil
}
