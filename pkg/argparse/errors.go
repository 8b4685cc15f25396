package argparse

import (
	"errors"
	"fmt"
	"strings"
)

// usageError marks errors caused by the user's input rather than by the
// command itself. The dispatcher replies with the command help for these.
type usageError interface {
	error
	usage()
}

// IsUsageError reports whether err belongs to the argument-parsing error
// taxonomy (tokenization, key, missing, type, validation, surplus).
func IsUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// TokenizeError reports malformed quoting in the raw argument text.
type TokenizeError struct {
	Input string
	Pos   int
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("unterminated quote at position %d", e.Pos)
}

func (e *TokenizeError) usage() {}

// ParseError reports a key token that could not be applied: an unknown name,
// a flag given a value, or a key whose value is missing.
type ParseError struct {
	Key    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: '%s'", e.Reason, e.Key)
}

func (e *ParseError) usage() {}

func errUnknownKey(key string) *ParseError {
	return &ParseError{Key: key, Reason: "unknown argument"}
}

// MissingArgError reports a required argument that received no value.
type MissingArgError struct {
	Arg string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument '%s'", e.Arg)
}

func (e *MissingArgError) usage() {}

// TypeError reports a raw value the argument's converter rejected.
type TypeError struct {
	Arg string
	Raw string
	Err error
}

func (e *TypeError) Error() string {
	if n := typeName(e.Err); n != "" {
		return fmt.Sprintf("invalid %s value '%s' for argument '%s'", n, e.Raw, e.Arg)
	}
	return fmt.Sprintf("invalid value '%s' for argument '%s'", e.Raw, e.Arg)
}

func (e *TypeError) Unwrap() error { return e.Err }

func (e *TypeError) usage() {}

// typeName keeps the user-facing message short; the wrapped strconv error
// stays available through Unwrap for logging.
func typeName(err error) string {
	var ne *errNotA
	if errors.As(err, &ne) {
		return ne.want
	}
	return ""
}

type errNotA struct {
	want string
	raw  string
}

func (e *errNotA) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s", e.raw, e.want)
}

// ValidationError reports a converted value the argument's validator refused.
type ValidationError struct {
	Arg     string
	Value   any
	Example string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid value '%v' for argument '%s'", e.Value, e.Arg)
	if e.Example != "" {
		msg += fmt.Sprintf(", try something like '%s'", e.Example)
	}
	return msg
}

func (e *ValidationError) usage() {}

// SurplusTokensError reports tokens left over after every argument
// specification was bound.
type SurplusTokensError struct {
	Tokens []string
}

func (e *SurplusTokensError) Error() string {
	return fmt.Sprintf("too many arguments: '%s'", strings.Join(e.Tokens, "', '"))
}

func (e *SurplusTokensError) usage() {}
