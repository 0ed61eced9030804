//
// Documentation Last Review: 10.02.2025
//

package vote

import (
	"github.com/neverpanic/mp-vote/crypto"
	"github.com/neverpanic/mp-vote/fetch"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Gate resolves a definition URL into a validated definition. It fetches the
// document and its detached signature, authenticates the document against the
// trusted key, and only then lets the bytes through to the parser. The
// ordering is a security boundary: the parser must never see bytes that did
// not pass the signature check.
type Gate struct {
	fetcher  fetch.Fetcher
	verifier crypto.Verifier
	logger   zerolog.Logger

	parseFn func(data []byte, sourceURL string) (*Definition, error)
}

// NewGate creates a gate over the given fetcher and verifier. The logger is
// injected so that verbosity stays a decision of the caller.
func NewGate(fetcher fetch.Fetcher, verifier crypto.Verifier, logger zerolog.Logger) Gate {
	return Gate{
		fetcher:  fetcher,
		verifier: verifier,
		logger:   logger,
		parseFn:  parseDefinition,
	}
}

// Resolve fetches, authenticates and parses the definition published at the
// URL. The document and signature fetches are independent and run
// concurrently; verification only starts once both have completed.
func (g Gate) Resolve(url string) (*Definition, error) {
	logger := g.logger.With().Stringer("resolution", xid.New()).Logger()

	type result struct {
		data []byte
		err  error
	}

	sigCh := make(chan result, 1)

	go func() {
		data, err := g.fetcher.Fetch(fetch.SignatureURL(url))
		sigCh <- result{data: data, err: err}
	}()

	doc, err := g.fetcher.Fetch(url)

	sig := <-sigCh

	if err != nil {
		return nil, xerrors.Errorf("while fetching definition: %w", err)
	}

	if sig.err != nil {
		return nil, xerrors.Errorf("while fetching signature: %w", sig.err)
	}

	if len(sig.data) == 0 {
		return nil, crypto.ErrSignature
	}

	err = g.verifier.Verify(doc, sig.data)
	if err != nil {
		// The document failed authentication. It is dropped here and never
		// reaches the parser.
		return nil, err
	}

	logger.Debug().Str("url", url).Msg("document authenticated")

	def, err := g.parseFn(doc, url)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("uuid", def.UUID()).Msg("definition resolved")

	return def, nil
}
