// Package vote implements the vote definition domain model and the pipeline
// that produces it: fetch the published document and its detached signature,
// authenticate the document against the pinned trusted key, then parse and
// validate it. The parser is unexported on purpose; the gate is the only call
// path into it, so a document that failed authentication can never be parsed.
//
// Documentation Last Review: 10.02.2025
package vote

import (
	"fmt"
	"time"

	"github.com/neverpanic/mp-vote/crypto/pkcs1"
)

// SupportedVersion is the single definition schema version this client
// accepts. Any other version is refused, there is no best-effort parsing of
// future formats.
const SupportedVersion = "1"

// InvalidXMLError indicates that the document does not match the expected
// structural shape: it is not well-formed, has the wrong root element, or
// fails the version gate.
type InvalidXMLError struct {
	Reason string
}

// Error implements error.
func (e *InvalidXMLError) Error() string {
	return fmt.Sprintf("invalid definition document: %s", e.Reason)
}

// InvalidDefinitionError indicates a well-formed document that is
// semantically invalid: a required field is missing or blank, a date does not
// parse, key material is malformed, or the ballot is too small.
type InvalidDefinitionError struct {
	Field  string
	Reason string
}

// Error implements error.
func (e *InvalidDefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid vote definition: %s", e.Reason)
	}

	return fmt.Sprintf("invalid vote definition: %s: %s", e.Field, e.Reason)
}

// Template gathers the raw values of a definition before they are validated.
// It exists so that a definition can also be built from somewhere else than a
// published document while going through the exact same invariant checks.
type Template struct {
	SourceURL     string
	FormatVersion string
	UUID          string
	Description   string
	Start         time.Time
	End           time.Time
	InnerKey      string
	OuterKey      string
	Ballot        []string
}

// Definition is the validated, immutable description of one vote instance:
// its identity, its voting window, the key material a cast ballot will be
// sealed with, and the ballot options in presentation order.
type Definition struct {
	sourceURL     string
	formatVersion string
	uuid          string
	description   string
	start         time.Time
	end           time.Time
	innerKey      string
	outerKey      string
	ballot        []string
}

// NewDefinition validates the template and returns the definition when every
// invariant holds. The window bounds are not ordered against each other, only
// checked for presence.
func NewDefinition(tmpl Template) (*Definition, error) {
	def := &Definition{
		sourceURL:     tmpl.SourceURL,
		formatVersion: tmpl.FormatVersion,
		uuid:          tmpl.UUID,
		description:   tmpl.Description,
		start:         tmpl.Start,
		end:           tmpl.End,
		innerKey:      tmpl.InnerKey,
		outerKey:      tmpl.OuterKey,
		ballot:        append([]string(nil), tmpl.Ballot...),
	}

	err := def.verify()
	if err != nil {
		return nil, err
	}

	return def, nil
}

// verify checks the definition invariants in a fixed order and stops at the
// first violation.
func (d *Definition) verify() error {
	if d.formatVersion != SupportedVersion {
		return &InvalidDefinitionError{
			Field:  "version",
			Reason: fmt.Sprintf("unsupported format version '%s'", d.formatVersion),
		}
	}

	scalars := []struct {
		name  string
		value string
	}{
		{"uuid", d.uuid},
		{"description", d.description},
	}

	for _, field := range scalars {
		if field.value == "" {
			return &InvalidDefinitionError{Field: field.name, Reason: "missing or blank"}
		}
	}

	if d.start.IsZero() {
		return &InvalidDefinitionError{Field: "start", Reason: "missing"}
	}

	if d.end.IsZero() {
		return &InvalidDefinitionError{Field: "end", Reason: "missing"}
	}

	keys := []struct {
		name  string
		value string
	}{
		{"innerkey", d.innerKey},
		{"outerkey", d.outerKey},
	}

	for _, field := range keys {
		_, err := pkcs1.NewPublicKey([]byte(field.value))
		if err != nil {
			return &InvalidDefinitionError{
				Field:  field.name,
				Reason: fmt.Sprintf("invalid key material: %v", err),
			}
		}
	}

	if len(d.ballot) < 2 {
		return &InvalidDefinitionError{
			Field:  "ballot",
			Reason: fmt.Sprintf("a ballot needs at least two options, got %d", len(d.ballot)),
		}
	}

	return nil
}

// SourceURL returns the canonical URL the definition was fetched from.
func (d *Definition) SourceURL() string {
	return d.sourceURL
}

// FormatVersion returns the schema version tag of the source document.
func (d *Definition) FormatVersion() string {
	return d.formatVersion
}

// UUID returns the opaque identifier naming this vote instance.
func (d *Definition) UUID() string {
	return d.uuid
}

// Description returns the free text describing the vote to the voter.
func (d *Definition) Description() string {
	return d.description
}

// Start returns the instant the voting window opens.
func (d *Definition) Start() time.Time {
	return d.start
}

// End returns the instant the voting window closes.
func (d *Definition) End() time.Time {
	return d.end
}

// InnerKey returns the PEM material of the inner sealing key.
func (d *Definition) InnerKey() string {
	return d.innerKey
}

// OuterKey returns the PEM material of the outer sealing key.
func (d *Definition) OuterKey() string {
	return d.outerKey
}

// Ballot returns a copy of the ballot options in presentation order.
func (d *Definition) Ballot() []string {
	return append([]string(nil), d.ballot...)
}
