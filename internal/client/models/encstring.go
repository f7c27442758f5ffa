package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// EncTypeAESGCM tags values sealed with cryptox.Seal.
const EncTypeAESGCM = 1

var ErrMalformedEncString = errors.New("malformed encrypted string")

// EncString is a sealed value kept together with its nonce. Its text form is
// "<type>.<base64 nonce>|<base64 data>" so it can travel through JSON storage
// and the sync API as an opaque string.
//
// Text that fails to parse while being unmarshaled is kept as is: the value
// round-trips unchanged and reports ErrMalformedEncString from Err, so a bad
// stored record fails when it is decrypted instead of when its collection is
// read.
type EncString struct {
	Nonce []byte
	Data  []byte

	malformed string
}

func (e EncString) IsZero() bool {
	return len(e.Nonce) == 0 && len(e.Data) == 0 && e.malformed == ""
}

// Err returns ErrMalformedEncString if e holds unparseable text.
func (e EncString) Err() error {
	if e.malformed != "" {
		return ErrMalformedEncString
	}
	return nil
}

func (e EncString) String() string {
	if e.malformed != "" {
		return e.malformed
	}
	if e.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d.%s|%s", EncTypeAESGCM,
		base64.StdEncoding.EncodeToString(e.Nonce),
		base64.StdEncoding.EncodeToString(e.Data))
}

// ParseEncString parses the text form produced by String. The empty string
// parses to the zero value.
func ParseEncString(s string) (EncString, error) {
	if s == "" {
		return EncString{}, nil
	}

	encType, rest, ok := strings.Cut(s, ".")
	if !ok || encType != fmt.Sprint(EncTypeAESGCM) {
		return EncString{}, ErrMalformedEncString
	}
	n, d, ok := strings.Cut(rest, "|")
	if !ok {
		return EncString{}, ErrMalformedEncString
	}

	nonce, err := base64.StdEncoding.DecodeString(n)
	if err != nil {
		return EncString{}, fmt.Errorf("%w: nonce: %v", ErrMalformedEncString, err)
	}
	data, err := base64.StdEncoding.DecodeString(d)
	if err != nil {
		return EncString{}, fmt.Errorf("%w: data: %v", ErrMalformedEncString, err)
	}
	return EncString{Nonce: nonce, Data: data}, nil
}

func (e EncString) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EncString) UnmarshalText(b []byte) error {
	v, err := ParseEncString(string(b))
	if err != nil {
		*e = EncString{malformed: string(b)}
		return nil
	}
	*e = v
	return nil
}
