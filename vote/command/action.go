package command

import (
	"fmt"
	"io"
	"time"

	mpvote "github.com/neverpanic/mp-vote"
	"github.com/neverpanic/mp-vote/cli"
	"github.com/neverpanic/mp-vote/config"
	"github.com/neverpanic/mp-vote/crypto/loader"
	"github.com/neverpanic/mp-vote/crypto/pkcs1"
	"github.com/neverpanic/mp-vote/fetch"
	"github.com/neverpanic/mp-vote/vote"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// action defines the different cli actions of the voting client. Defining
// functions and the printer helps in testing the commands.
type action struct {
	printer io.Writer

	now     func() time.Time
	resolve func(flags cli.Flags, url string) (*vote.Definition, error)
}

func (a action) showAction(flags cli.Flags) error {
	def, err := a.resolve(flags, flags.String("url"))
	if err != nil {
		return xerrors.Errorf("couldn't resolve definition: %v", err)
	}

	def.Render(a.printer)

	return nil
}

func (a action) statusAction(flags cli.Flags) error {
	def, err := a.resolve(flags, flags.String("url"))
	if err != nil {
		return xerrors.Errorf("couldn't resolve definition: %v", err)
	}

	switch def.CheckEligible(a.now()) {
	case vote.NotYetOpen:
		fmt.Fprintf(a.printer, "Vote %s is not yet open, it opens on %s\n",
			def.UUID(), def.Start().Local().Format(time.RFC1123))
	case vote.Closed:
		fmt.Fprintf(a.printer, "Vote %s is closed since %s\n",
			def.UUID(), def.End().Local().Format(time.RFC1123))
	default:
		fmt.Fprintf(a.printer, "Vote %s is open, a ballot may be cast\n",
			def.UUID())
	}

	return nil
}

// resolve builds the full pipeline out of the flags and the client
// configuration, then runs it for the given URL.
func resolve(flags cli.Flags, url string) (*vote.Definition, error) {
	cfg, err := config.Load(flags.Path("config"))
	if err != nil {
		return nil, xerrors.Errorf("couldn't load configuration: %v", err)
	}

	if path := flags.Path("key"); path != "" {
		cfg.TrustedKey = path
	}

	logger := mpvote.Logger
	if cfg.Verbose || flags.Bool("verbose") {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// A missing or garbled trusted key means this installation is broken,
	// which is a different failure than anything the remote server sends.
	material, err := loader.NewFileLoader(cfg.TrustedKey).Load()
	if err != nil {
		return nil, xerrors.Errorf("client installation is broken: "+
			"couldn't load trusted key: %v", err)
	}

	pubkey, err := pkcs1.NewPublicKey(material)
	if err != nil {
		return nil, xerrors.Errorf("client installation is broken: "+
			"invalid trusted key: %v", err)
	}

	gate := vote.NewGate(
		fetch.NewHTTPFetcher(nil, logger),
		pkcs1.NewVerifier(pubkey),
		logger,
	)

	return gate.Resolve(url)
}
