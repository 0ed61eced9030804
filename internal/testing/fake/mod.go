// Package fake provides fake implementations for interfaces commonly used in
// the repository.
// The implementations offer configuration to return errors when it is needed
// by the unit test and it is also possible to record the call of functions of
// an object in some cases.
package fake

import (
	"golang.org/x/xerrors"
)

var fakeErr = xerrors.New("fake error")

// GetError returns the fake error.
func GetError() error {
	return fakeErr
}

// Err returns the expected format of a wrapped fake error.
func Err(msg string) string {
	return msg + ": fake error"
}

// Call is a tool to keep track of a function calls.
type Call struct {
	calls [][]interface{}
}

// NewCall returns a new empty call monitor.
func NewCall() *Call {
	return &Call{}
}

// Get returns the nth call ith parameter.
func (c *Call) Get(n, i int) interface{} {
	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	if c == nil {
		return 0
	}

	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	if c == nil {
		return
	}

	c.calls = append(c.calls, args)
}

// Fetcher is a fake implementation of a document fetcher that returns bytes
// from an in-memory map.
type Fetcher struct {
	Documents map[string][]byte
	Calls     *Call
	Err       error
}

// Fetch returns the bytes stored for the URL, or an error when none are
// known.
func (f Fetcher) Fetch(url string) ([]byte, error) {
	f.Calls.Add("Fetch", url)

	if f.Err != nil {
		return nil, f.Err
	}

	data, ok := f.Documents[url]
	if !ok {
		return nil, xerrors.Errorf("no document for %s", url)
	}

	return data, nil
}

// Verifier is a fake implementation of a signature verifier.
type Verifier struct {
	Calls *Call
	Err   error
}

// Verify records the call and returns the configured error.
func (v Verifier) Verify(msg []byte, sig []byte) error {
	v.Calls.Add("Verify", msg, sig)

	return v.Err
}
