package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neverpanic/mp-vote/internal/testing/fake"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSignatureURL(t *testing.T) {
	url := "https://example.com/votes/def.xml"

	require.Equal(t, "https://example.com/votes/def.xml.rmd160", SignatureURL(url))
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/def.xml":
			w.Write([]byte("some definition"))
		default:
			http.NotFound(w, r)
		}
	}))

	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client(), zerolog.Nop())

	data, err := fetcher.Fetch(srv.URL + "/def.xml")
	require.NoError(t, err)
	require.Equal(t, []byte("some definition"), data)
}

func TestHTTPFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())

	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.Client(), zerolog.Nop())

	_, err := fetcher.Fetch(srv.URL + "/missing.xml")
	require.Error(t, err)

	terr := &TransportError{}
	require.ErrorAs(t, err, &terr)
	require.Equal(t, srv.URL+"/missing.xml", terr.URL)
	require.Contains(t, err.Error(), "unexpected status: 404")
}

func TestHTTPFetcher_TransportFailure(t *testing.T) {
	fetcher := NewHTTPFetcher(nil, zerolog.Nop()).(httpFetcher)

	fetcher.getFn = func(url string) (*http.Response, error) {
		return nil, fake.GetError()
	}

	_, err := fetcher.Fetch("https://example.com/def.xml")
	require.EqualError(t, err,
		"couldn't fetch https://example.com/def.xml: fake error")
}
