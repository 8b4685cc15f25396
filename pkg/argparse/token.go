// Package argparse turns the text after a chat command into typed, validated
// argument values: a shell-like tokenizer, declarative argument
// specifications, and a binder that matches one against the other.
package argparse

import (
	"strings"
	"unicode"
)

// Token is one fragment of the raw argument text. Quoted tokens are never
// treated as argument keys, so values like "--literally this" stay values.
type Token struct {
	Text   string
	Quoted bool
}

// String renders the token so that re-tokenizing reproduces it: quoted
// tokens and tokens with embedded whitespace get their quotes back.
func (t Token) String() string {
	if !t.Quoted && !strings.ContainsFunc(t.Text, unicode.IsSpace) {
		return t.Text
	}
	if strings.Contains(t.Text, `"`) {
		return "'" + t.Text + "'"
	}
	return `"` + t.Text + `"`
}

// Tokenize splits raw argument text into an ordered token sequence.
// Whitespace outside quotes delimits tokens and collapses. A quoted run
// ('"' or '\'') keeps embedded whitespace; a token that consists of exactly
// one quoted run is marked quoted. An unterminated quote fails with
// *TokenizeError.
func Tokenize(s string) ([]Token, error) {
	var tokens []Token
	rs := []rune(s)

	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		var text strings.Builder
		quotedRuns := 0
		bareRunes := false
		for i < len(rs) && !unicode.IsSpace(rs[i]) {
			if rs[i] == '"' || rs[i] == '\'' {
				quote := rs[i]
				j := i + 1
				for j < len(rs) && rs[j] != quote {
					j++
				}
				if j >= len(rs) {
					return nil, &TokenizeError{Input: s, Pos: i}
				}
				text.WriteString(string(rs[i+1 : j]))
				quotedRuns++
				i = j + 1
				continue
			}
			text.WriteRune(rs[i])
			bareRunes = true
			i++
		}
		tokens = append(tokens, Token{
			Text:   text.String(),
			Quoted: quotedRuns == 1 && !bareRunes,
		})
	}

	return tokens, nil
}

// emDash is accepted as a key prefix because chat clients love to
// "autocorrect" a double dash into one.
const emDash = "—"

// keyName classifies a token as an argument key. Quoted tokens are never
// keys. A single '-' counts only when followed by a letter, so negative
// numbers stay positional values; short reports the one-dash form, which the
// binder may expand into combined single-letter flags.
func keyName(t Token) (name string, short, ok bool) {
	if t.Quoted {
		return "", false, false
	}
	switch {
	case strings.HasPrefix(t.Text, "--"):
		return t.Text[2:], false, true
	case strings.HasPrefix(t.Text, emDash):
		return strings.TrimPrefix(t.Text, emDash), false, true
	case len(t.Text) >= 2 && t.Text[0] == '-' && isLetter(rune(t.Text[1])):
		return t.Text[1:], true, true
	}
	return "", false, false
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
