package argparse

import (
	"strings"
)

// Bind matches a token sequence against the given argument specifications
// and returns the converted, validated values keyed by canonical name.
// Named keys bind first, remaining tokens fill the unbound non-flag
// specifications in declaration order, then defaults apply. Any deviation
// fails with one of the usage errors in this package; the handler is never
// called with a partially bound set.
func Bind(specs []Argument, tokens []Token) (Values, error) {
	byName := make(map[string]int)
	for i, spec := range specs {
		for _, n := range spec.Names {
			byName[strings.ToLower(n)] = i
		}
	}

	values := make(Values, len(specs))
	bound := make([]bool, len(specs))
	var positional []Token

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		name, short, isKey := keyName(tok)
		if !isKey {
			positional = append(positional, tok)
			continue
		}

		if short && len([]rune(name)) > 1 && allLetters(name) {
			// Combined short form: -Syu sets flags S, y and u. An
			// unknown or non-flag letter fails the whole token.
			for _, r := range name {
				spec, err := lookupFlag(specs, byName, r)
				if err != nil {
					return nil, err
				}
				values[spec.Name()] = true
				bound[byName[strings.ToLower(string(r))]] = true
			}
			continue
		}

		inline := ""
		hasInline := false
		if k, v, found := strings.Cut(name, "="); found {
			name, inline, hasInline = k, v, true
		}

		idx, known := byName[strings.ToLower(name)]
		if !known {
			return nil, errUnknownKey(tok.Text)
		}
		spec := specs[idx]

		if spec.Flag {
			if hasInline {
				return nil, &ParseError{Key: tok.Text, Reason: "flag does not take a value"}
			}
			values[spec.Name()] = true
			bound[idx] = true
			continue
		}

		raw := inline
		if !hasInline {
			if i+1 >= len(tokens) {
				return nil, &ParseError{Key: tok.Text, Reason: "expected a value, found end of input"}
			}
			next := tokens[i+1]
			if _, _, nextIsKey := keyName(next); nextIsKey {
				return nil, &ParseError{Key: tok.Text, Reason: "expected a value, found argument key"}
			}
			raw = next.Text
			i++
		}

		v, err := convertAndValidate(spec, raw)
		if err != nil {
			return nil, err
		}
		values[spec.Name()] = v
		bound[idx] = true
	}

	// Positional fill: declaration order, flags never bind positionally.
	next := 0
	for idx, spec := range specs {
		if bound[idx] || spec.Flag || next >= len(positional) {
			continue
		}
		v, err := convertAndValidate(spec, positional[next].Text)
		if err != nil {
			return nil, err
		}
		values[spec.Name()] = v
		bound[idx] = true
		next++
	}
	if next < len(positional) {
		surplus := make([]string, 0, len(positional)-next)
		for _, tok := range positional[next:] {
			surplus = append(surplus, tok.Text)
		}
		return nil, &SurplusTokensError{Tokens: surplus}
	}

	for idx, spec := range specs {
		if bound[idx] {
			continue
		}
		switch {
		case spec.Flag:
			values[spec.Name()] = false
		case spec.Default != nil:
			values[spec.Name()] = spec.Default
		case spec.Optional:
			values[spec.Name()] = nil
		default:
			return nil, &MissingArgError{Arg: spec.Name()}
		}
	}

	return values, nil
}

func lookupFlag(specs []Argument, byName map[string]int, letter rune) (Argument, error) {
	idx, ok := byName[strings.ToLower(string(letter))]
	if !ok {
		return Argument{}, errUnknownKey("-" + string(letter))
	}
	spec := specs[idx]
	if !spec.Flag {
		return Argument{}, &ParseError{Key: "-" + string(letter), Reason: "not a flag"}
	}
	return spec, nil
}

func convertAndValidate(spec Argument, raw string) (any, error) {
	v, err := spec.convert(raw)
	if err != nil {
		return nil, &TypeError{Arg: spec.Name(), Raw: raw, Err: err}
	}
	if spec.Validator != nil && !spec.Validator(v) {
		return nil, &ValidationError{Arg: spec.Name(), Value: v, Example: spec.Example}
	}
	return v, nil
}
