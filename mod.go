// Package mpvote implements a client for authenticated vote definitions. A
// definition is published at a URL alongside a detached signature; the client
// fetches both, verifies the signature against a pinned trusted public key and
// only then parses the document into a vote definition that a ballot-casting
// workflow can consume.
package mpvote

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// Logger is a globally available logger instance. Components take their own
// logger at construction; this one is the default they derive from.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	Level(zerolog.WarnLevel)
