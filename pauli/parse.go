// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/qpauli/qubit"
)

// Parse reads a Pauli sum written as terms joined by + and -.
//
// A term is an optional coefficient followed by factors separated by spaces
// or '*'. A factor is an operator letter and a qubit, either bare digits or a
// parenthesised label: X0, Z(12), Y(anc). Coefficients accept anything
// strconv.ParseComplex does, plus a trailing j for the imaginary unit:
//
//	0.5*X0 Z1 - 2 Y(anc) + 1
//	+ (1+0i) X(0) Z(1) + (-0.5+0i) Y(2)
//
// The second form is what Pauli.String produces, so Parse(p.String()) == p
// for integer and identifier labels. Numeric labels parse as int, others as string.
// Repeated qubits inside a term are multiplied out.
func Parse(s string) (Pauli, error) {
	chunks, err := splitTerms(s)
	if err != nil {
		return Pauli{}, err
	}
	if len(chunks) == 0 {
		return Pauli{}, fmt.Errorf("%w: empty expression", ErrParse)
	}

	terms := make([]Pauli, 0, len(chunks))
	for _, chunk := range chunks {
		t, err := parseTerm(chunk)
		if err != nil {
			return Pauli{}, err
		}
		terms = append(terms, t)
	}

	return Sum(terms...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Pauli {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// splitTerms cuts s at top-level signs, keeping each sign with its term.
// Signs inside parentheses and exponent signs (1e-3) do not split.
func splitTerms(s string) ([]string, error) {
	var chunks []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced ')' at %d", ErrParse, i)
			}
		case '+', '-':
			if depth == 0 && !exponentSign(s, i) {
				chunks = appendChunk(chunks, s[start:i])
				start = i
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced '('", ErrParse)
	}

	return appendChunk(chunks, s[start:]), nil
}

func appendChunk(chunks []string, c string) []string {
	if strings.TrimSpace(c) == "" {
		return chunks
	}

	return append(chunks, c)
}

func exponentSign(s string, i int) bool {
	if i < 2 || (s[i-1] != 'e' && s[i-1] != 'E') {
		return false
	}

	return unicode.IsDigit(rune(s[i-2])) || s[i-2] == '.'
}

// parseTerm turns one signed chunk into a single-term element.
func parseTerm(chunk string) (Pauli, error) {
	body := strings.TrimSpace(chunk)
	coeff := complex128(1)
	switch {
	case strings.HasPrefix(body, "+"):
		body = strings.TrimSpace(body[1:])
	case strings.HasPrefix(body, "-"):
		coeff = -1
		body = strings.TrimSpace(body[1:])
	}
	tokens := tokenize(body)
	if len(tokens) == 0 {
		return Pauli{}, fmt.Errorf("%w: dangling sign in %q", ErrParse, chunk)
	}

	factors := []Pauli{}
	for _, tok := range tokens {
		if f, ok, err := parseFactor(tok); err != nil {
			return Pauli{}, err
		} else if ok {
			factors = append(factors, f)
			continue
		}
		c, err := strconv.ParseComplex(strings.Replace(tok, "j", "i", 1), 128)
		if err != nil {
			return Pauli{}, fmt.Errorf("%w: bad token %q", ErrParse, tok)
		}
		coeff *= c
	}

	return Product(append([]Pauli{Scalar(coeff)}, factors...)...), nil
}

// tokenize splits on spaces and '*' outside parentheses.
func tokenize(body string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range body {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && (r == '*' || unicode.IsSpace(r)):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()

	return tokens
}

// parseFactor recognises X0, Z(1), Y(anc) and a bare I.
func parseFactor(tok string) (Pauli, bool, error) {
	op := Op(tok[0])
	if !op.Valid() {
		return Pauli{}, false, nil
	}
	rest := tok[1:]
	if rest == "" {
		if op == I {
			return Identity(), true, nil
		}

		return Pauli{}, false, fmt.Errorf("%w: operator %s without qubit", ErrParse, op)
	}

	var label string
	switch {
	case rest[0] == '(' && strings.HasSuffix(rest, ")"):
		label = strings.TrimSpace(rest[1 : len(rest)-1])
	case isDigits(rest):
		label = rest
	default:
		return Pauli{}, false, nil
	}
	if label == "" {
		return Pauli{}, false, fmt.Errorf("%w: empty qubit label in %q", ErrParse, tok)
	}

	var q qubit.Qubit = label
	if n, err := strconv.Atoi(label); err == nil {
		q = n
	}
	p, err := Sigma(q, op)

	return p, true, err
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}
