//
// Documentation Last Review: 10.02.2025
//

package vote

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/lithammer/dedent"
	"golang.org/x/xerrors"
)

// xmlDefinition mirrors the shape of a published definition document. The
// pointer fields distinguish an absent element from a present but blank one.
type xmlDefinition struct {
	XMLName     xml.Name   `xml:"votedefinition"`
	Version     *string    `xml:"version,attr"`
	UUID        *string    `xml:"uuid"`
	Description *string    `xml:"description"`
	Start       *string    `xml:"start"`
	End         *string    `xml:"end"`
	InnerKey    *string    `xml:"innerkey"`
	OuterKey    *string    `xml:"outerkey"`
	Ballot      *xmlBallot `xml:"ballot"`
}

type xmlBallot struct {
	Options []string `xml:"option"`
}

// parseDefinition turns authenticated document bytes into a validated
// definition. It is unexported so that the gate stays the only call path
// leading here: the bytes have been authenticated before they arrive.
func parseDefinition(data []byte, sourceURL string) (*Definition, error) {
	doc := xmlDefinition{}

	err := xml.Unmarshal(data, &doc)
	if err != nil {
		return nil, &InvalidXMLError{Reason: err.Error()}
	}

	if doc.Version == nil {
		return nil, &InvalidXMLError{Reason: "missing version attribute"}
	}

	if *doc.Version != SupportedVersion {
		return nil, &InvalidXMLError{Reason: fmt.Sprintf(
			"unsupported version '%s', please upgrade your voting client",
			*doc.Version)}
	}

	tmpl := Template{
		SourceURL:     sourceURL,
		FormatVersion: *doc.Version,
	}

	// The fields are checked in a fixed order so that a document with
	// several problems always reports the same first one.
	fields := []struct {
		name  string
		value *string
		set   func(value string) error
	}{
		{"uuid", doc.UUID, func(value string) error {
			tmpl.UUID = strings.TrimSpace(value)

			return nil
		}},
		{"description", doc.Description, func(value string) error {
			tmpl.Description = strings.TrimSpace(dedent.Dedent(value))

			return nil
		}},
		{"start", doc.Start, func(value string) error {
			when, err := dateparse.ParseAny(strings.TrimSpace(value))
			if err != nil {
				return xerrors.Errorf("couldn't parse date: %v", err)
			}

			tmpl.Start = when

			return nil
		}},
		{"end", doc.End, func(value string) error {
			when, err := dateparse.ParseAny(strings.TrimSpace(value))
			if err != nil {
				return xerrors.Errorf("couldn't parse date: %v", err)
			}

			tmpl.End = when

			return nil
		}},
		{"innerkey", doc.InnerKey, func(value string) error {
			tmpl.InnerKey = strings.TrimSpace(dedent.Dedent(value))

			return nil
		}},
		{"outerkey", doc.OuterKey, func(value string) error {
			tmpl.OuterKey = strings.TrimSpace(dedent.Dedent(value))

			return nil
		}},
	}

	for _, field := range fields {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			return nil, &InvalidDefinitionError{
				Field:  field.name,
				Reason: "missing or blank",
			}
		}

		err := field.set(*field.value)
		if err != nil {
			return nil, &InvalidDefinitionError{
				Field:  field.name,
				Reason: err.Error(),
			}
		}
	}

	if doc.Ballot == nil {
		return nil, &InvalidDefinitionError{
			Field:  "ballot",
			Reason: "missing or blank",
		}
	}

	for _, opt := range doc.Ballot.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			// Formatting whitespace, not an option.
			continue
		}

		tmpl.Ballot = append(tmpl.Ballot, opt)
	}

	def, err := NewDefinition(tmpl)
	if err != nil {
		return nil, xerrors.Errorf("definition rejected after parsing: %w", err)
	}

	return def, nil
}
