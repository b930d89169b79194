package tcb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates address and port in a combined key.
const Delimiter = ':'

// ErrMalformedKey is returned by Parse when a key is not "addr:port", and by
// Validate for an Endpoint that Combine cannot encode losslessly.
var ErrMalformedKey = errors.New("tcb: malformed endpoint key")

// Endpoint is a remote address and port.
type Endpoint struct {
	Addr string
	Port int
}

func (e Endpoint) String() string { return Combine(e) }

// Validate reports whether e survives a Combine/Parse round trip: the
// address must be non-empty and free of Delimiter, and the port must fit
// in 0..65535.
func (e Endpoint) Validate() error {
	switch {
	case e.Addr == "":
		return fmt.Errorf("%w: empty address", ErrMalformedKey)
	case strings.IndexByte(e.Addr, Delimiter) >= 0:
		return fmt.Errorf("%w: address %q contains %q", ErrMalformedKey, e.Addr, Delimiter)
	case e.Port < 0 || e.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrMalformedKey, e.Port)
	}
	return nil
}

// Combine flattens e into its cache key, "addr:port".
func Combine(e Endpoint) string {
	return e.Addr + string(Delimiter) + strconv.Itoa(e.Port)
}

// Tokenize splits s on delim and returns the non-empty tokens. Leading,
// trailing and repeated delimiters produce no empty tokens.
func Tokenize(s string, delim byte) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Parse decodes a key produced by Combine.
func Parse(key string) (Endpoint, error) {
	tokens := Tokenize(key, Delimiter)
	if len(tokens) != 2 {
		return Endpoint{}, fmt.Errorf("%w: %q: want addr%cport", ErrMalformedKey, key, Delimiter)
	}
	port, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q: port: %w", ErrMalformedKey, key, err)
	}
	if port < 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: %q: port %d out of range", ErrMalformedKey, key, port)
	}
	return Endpoint{Addr: tokens[0], Port: port}, nil
}
