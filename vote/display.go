package vote

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
)

// wrapWidth is the column at which description paragraphs are wrapped.
const wrapWidth = 72

// Render writes a human-readable rendering of the definition: identifier,
// validity window in local time, the description with each paragraph wrapped,
// and the ballot options in presentation order.
func (d *Definition) Render(w io.Writer) {
	fmt.Fprintf(w, "Vote %s\n", d.uuid)
	fmt.Fprintf(w, "Open from %s until %s\n",
		d.start.Local().Format(time.RFC1123),
		d.end.Local().Format(time.RFC1123))

	for _, par := range strings.Split(d.description, "\n\n") {
		par = strings.Join(strings.Fields(par), " ")
		if par == "" {
			continue
		}

		fmt.Fprintf(w, "\n%s\n", wordwrap.WrapString(par, wrapWidth))
	}

	fmt.Fprint(w, "\nBallot options:\n")

	for i, opt := range d.ballot {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}
}
