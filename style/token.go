package style

import (
	"errors"
	"math"
	"strings"
)

// ErrSyntax is returned for any malformed style expression.
var ErrSyntax = errors.New("illegal style value")

type tokenKind int

const (
	tokCenter tokenKind = iota
	tokTile
	tokCover
	tokContain
	tokShrinkToFit
	tokPosition
	tokInt
	tokSlash
	tokAsterisk
)

type token struct {
	kind  tokenKind
	value int // set for tokInt
}

// tokenizer scans a style expression. After the first error every further
// call keeps failing (poisoned latch) so parse code can bail out at any depth.
type tokenizer struct {
	src      string
	poisoned bool
}

func isASCIISpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isWordChar(ch byte) bool {
	return ch == '_' || ch == '-' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch)
}

// next returns the next token, or ok=false at end of input.
func (tz *tokenizer) next() (tok token, ok bool, err error) {
	if tz.poisoned {
		return token{}, false, ErrSyntax
	}

	i := 0
	for i < len(tz.src) && isASCIISpace(tz.src[i]) {
		i++
	}
	tz.src = tz.src[i:]
	if len(tz.src) == 0 {
		return token{}, false, nil
	}

	switch tz.src[0] {
	case '/':
		tz.src = tz.src[1:]
		return token{kind: tokSlash}, true, nil
	case '*':
		tz.src = tz.src[1:]
		return token{kind: tokAsterisk}, true, nil
	}

	if ch := tz.src[0]; (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		end := len(tz.src)
		for j := 0; j < len(tz.src); j++ {
			if !isWordChar(tz.src[j]) {
				end = j
				break
			}
		}
		word := tz.src[:end]

		var kind tokenKind
		switch {
		case strings.EqualFold(word, "center"):
			kind = tokCenter
		case strings.EqualFold(word, "tile"):
			kind = tokTile
		case strings.EqualFold(word, "cover"):
			kind = tokCover
		case strings.EqualFold(word, "contain"):
			kind = tokContain
		case strings.EqualFold(word, "shrink-to-fit"), strings.EqualFold(word, "shrinktofit"):
			kind = tokShrinkToFit
		case strings.EqualFold(word, "position"):
			kind = tokPosition
		default:
			tz.poisoned = true
			return token{}, false, ErrSyntax
		}
		tz.src = tz.src[end:]
		return token{kind: kind}, true, nil
	}

	sign := 1
	switch tz.src[0] {
	case '+':
		tz.src = tz.src[1:]
	case '-':
		tz.src = tz.src[1:]
		sign = -1
	default:
		if !isDigit(tz.src[0]) {
			tz.poisoned = true
			return token{}, false, ErrSyntax
		}
	}
	if len(tz.src) == 0 || !isDigit(tz.src[0]) {
		tz.poisoned = true
		return token{}, false, ErrSyntax
	}

	value := 0
	for len(tz.src) > 0 && isDigit(tz.src[0]) {
		if value > math.MaxInt32/10 {
			tz.poisoned = true
			return token{}, false, ErrSyntax
		}
		value *= 10
		digit := int(tz.src[0] - '0')
		if value > math.MaxInt32-digit {
			tz.poisoned = true
			return token{}, false, ErrSyntax
		}
		value += digit
		tz.src = tz.src[1:]
	}

	return token{kind: tokInt, value: sign * value}, true, nil
}

// expectEnd fails unless the input is exhausted.
func (tz *tokenizer) expectEnd() error {
	if _, ok, err := tz.next(); err != nil {
		return err
	} else if ok {
		return ErrSyntax
	}
	return nil
}

func (tz *tokenizer) expectInt() (int, error) {
	tok, ok, err := tz.next()
	if err != nil {
		return 0, err
	}
	if !ok || tok.kind != tokInt {
		return 0, ErrSyntax
	}
	return tok.value, nil
}

// expectIntOrAsterisk reads a coordinate: an explicit integer or the
// center-on-canvas sentinel "*".
func (tz *tokenizer) expectIntOrAsterisk() (Coord, error) {
	tok, ok, err := tz.next()
	if err != nil {
		return Coord{}, err
	}
	if !ok {
		return Coord{}, ErrSyntax
	}
	switch tok.kind {
	case tokAsterisk:
		return Coord{Center: true}, nil
	case tokInt:
		return Coord{Value: tok.value}, nil
	}
	return Coord{}, ErrSyntax
}
