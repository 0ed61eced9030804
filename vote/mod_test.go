package vote

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/neverpanic/mp-vote/crypto"
	"github.com/neverpanic/mp-vote/crypto/pkcs1"
	"github.com/stretchr/testify/require"
)

func TestNewDefinition(t *testing.T) {
	def, err := NewDefinition(makeTemplate(t))
	require.NoError(t, err)

	require.Equal(t, "https://example.com/def.xml", def.SourceURL())
	require.Equal(t, SupportedVersion, def.FormatVersion())
	require.Equal(t, "abc-123", def.UUID())
	require.Equal(t, []string{"Alice", "Bob"}, def.Ballot())
}

func TestNewDefinition_Immutable(t *testing.T) {
	tmpl := makeTemplate(t)

	def, err := NewDefinition(tmpl)
	require.NoError(t, err)

	// Neither the template nor a returned ballot can alter the definition.
	tmpl.Ballot[0] = "Mallory"
	require.Equal(t, []string{"Alice", "Bob"}, def.Ballot())

	def.Ballot()[1] = "Mallory"
	require.Equal(t, []string{"Alice", "Bob"}, def.Ballot())
}

func TestNewDefinition_Invariants(t *testing.T) {
	tmpl := makeTemplate(t)
	tmpl.FormatVersion = "2"
	_, err := NewDefinition(tmpl)
	require.EqualError(t, err,
		"invalid vote definition: version: unsupported format version '2'")

	tmpl = makeTemplate(t)
	tmpl.UUID = ""
	_, err = NewDefinition(tmpl)
	require.EqualError(t, err, "invalid vote definition: uuid: missing or blank")

	tmpl = makeTemplate(t)
	tmpl.Description = ""
	_, err = NewDefinition(tmpl)
	require.EqualError(t, err,
		"invalid vote definition: description: missing or blank")

	tmpl = makeTemplate(t)
	tmpl.Start = time.Time{}
	_, err = NewDefinition(tmpl)
	require.EqualError(t, err, "invalid vote definition: start: missing")

	tmpl = makeTemplate(t)
	tmpl.End = time.Time{}
	_, err = NewDefinition(tmpl)
	require.EqualError(t, err, "invalid vote definition: end: missing")

	tmpl = makeTemplate(t)
	tmpl.InnerKey = "garbage"
	_, err = NewDefinition(tmpl)
	require.Error(t, err)
	require.Contains(t, err.Error(),
		"invalid vote definition: innerkey: invalid key material: ")

	tmpl = makeTemplate(t)
	tmpl.OuterKey = "garbage"
	_, err = NewDefinition(tmpl)
	require.Error(t, err)
	require.Contains(t, err.Error(),
		"invalid vote definition: outerkey: invalid key material: ")

	tmpl = makeTemplate(t)
	tmpl.Ballot = []string{"Alice"}
	_, err = NewDefinition(tmpl)
	require.EqualError(t, err,
		"invalid vote definition: ballot: a ballot needs at least two options, got 1")
}

func TestNewDefinition_WindowOrderNotChecked(t *testing.T) {
	tmpl := makeTemplate(t)
	tmpl.Start, tmpl.End = tmpl.End, tmpl.Start

	// A window that closes before it opens is accepted as-is.
	_, err := NewDefinition(tmpl)
	require.NoError(t, err)
}

// -----------------------------------------------------------------------------
// Utility functions

var testSigner crypto.Signer

// makeSigner returns a process-wide signer so that the tests pay the RSA key
// generation only once.
func makeSigner(t *testing.T) crypto.Signer {
	t.Helper()

	if testSigner == nil {
		signer, err := pkcs1.NewSigner()
		require.NoError(t, err)

		testSigner = signer
	}

	return testSigner
}

// makeKeyPEM returns valid PEM public key material.
func makeKeyPEM(t *testing.T) string {
	t.Helper()

	material, err := makeSigner(t).GetPublicKey().MarshalText()
	require.NoError(t, err)

	return string(material)
}

// makeTemplate returns a template that passes every invariant.
func makeTemplate(t *testing.T) Template {
	t.Helper()

	key := makeKeyPEM(t)

	return Template{
		SourceURL:     "https://example.com/def.xml",
		FormatVersion: SupportedVersion,
		UUID:          "abc-123",
		Description:   "Choose wisely.",
		Start:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		InnerKey:      key,
		OuterKey:      key,
		Ballot:        []string{"Alice", "Bob"},
	}
}

// makeDocument serializes a well-formed definition document. A field listed
// in omit is left out entirely, a field listed in blank is present with
// whitespace content.
func makeDocument(t *testing.T, omit string, blank string) []byte {
	t.Helper()

	key := "\n      " + strings.ReplaceAll(
		strings.TrimSpace(makeKeyPEM(t)), "\n", "\n      ") + "\n    "

	description := "\n      A first paragraph that describes the stakes of " +
		"this vote in enough words to need wrapping.\n\n      A second " +
		"paragraph.\n    "

	fields := []struct {
		name  string
		value string
	}{
		{"uuid", "abc-123"},
		{"description", description},
		{"start", "2024-01-01T00:00:00Z"},
		{"end", "2024-01-31T23:59:59Z"},
		{"innerkey", key},
		{"outerkey", key},
	}

	buf := strings.Builder{}
	buf.WriteString("<votedefinition version=\"1\">")

	for _, field := range fields {
		if field.name == omit {
			continue
		}

		value := field.value
		if field.name == blank {
			value = "  \n  "
		}

		fmt.Fprintf(&buf, "<%s>%s</%s>", field.name, value, field.name)
	}

	if omit != "ballot" {
		buf.WriteString("<ballot><option>Alice</option><option>Bob</option></ballot>")
	}

	buf.WriteString("</votedefinition>")

	return []byte(buf.String())
}
