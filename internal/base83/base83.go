package base83

import (
	"errors"
	"fmt"
)

// Alphabet lists the 83 digit symbols in value order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz#$%*+,-.:;=?@[]^_{|}~"

// Base is the radix of the encoding.
const Base = len(Alphabet)

var (
	// ErrOutOfRange is returned when a value does not fit in the requested digit count.
	ErrOutOfRange = errors.New("base83: value out of range")

	// ErrInvalidCharacter is returned when decoding a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("base83: invalid character")
)

// digitValues maps an ASCII byte to its digit value, or -1.
var digitValues [256]int

func init() {
	for i := range digitValues {
		digitValues[i] = -1
	}
	for i := 0; i < Base; i++ {
		digitValues[Alphabet[i]] = i
	}
}

// Encode writes value as exactly length base-83 digits.
//
// Returns ErrOutOfRange if value is negative or value >= 83^length.
func Encode(value, length int) (string, error) {
	if value < 0 || length < 0 {
		return "", fmt.Errorf("%w: %d in %d digits", ErrOutOfRange, value, length)
	}

	buf := make([]byte, length)
	v := value
	for i := length - 1; i >= 0; i-- {
		buf[i] = Alphabet[v%Base]
		v /= Base
	}
	if v != 0 {
		return "", fmt.Errorf("%w: %d in %d digits", ErrOutOfRange, value, length)
	}
	return string(buf), nil
}

// MustEncode is like Encode but panics on error. It is meant for callers that
// guarantee the range by construction.
func MustEncode(value, length int) string {
	s, err := Encode(value, length)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses s as a base-83 number.
func Decode(s string) (int, error) {
	value := 0
	for i := 0; i < len(s); i++ {
		digit := digitValues[s[i]]
		if digit < 0 {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		value = value*Base + digit
	}
	return value, nil
}
