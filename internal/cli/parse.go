package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Errors reported while turning command-line arguments into a request.
var (
	ErrInvalidURL      = errors.New("invalid URL")
	ErrInvalidKeyValue = errors.New("invalid key=value pair")
)

// KVPair is one key=value body argument.
type KVPair struct {
	Key   string
	Value string
}

// ValidateURL checks that s parses as a URL with a scheme and host. It
// says nothing about reachability, only syntax.
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidURL, s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w %q: missing scheme or host", ErrInvalidURL, s)
	}
	return nil
}

// ParseKVPair splits s on the first "=". The key is everything before it
// and the value everything after, so "a=1=2" yields {a, "1=2"} and "b="
// yields an empty value. A string without "=" is an error.
func ParseKVPair(s string) (KVPair, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return KVPair{}, fmt.Errorf("%w: %q", ErrInvalidKeyValue, s)
	}
	return KVPair{Key: key, Value: value}, nil
}

// bodyFromPairs folds pairs into the object sent as the POST body. A key
// that appears more than once keeps its last value.
func bodyFromPairs(pairs []KVPair) map[string]string {
	body := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		body[pair.Key] = pair.Value
	}
	return body
}
