package ledgerapi

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Keys use the same layout as Fabric composite keys so they can be range
// queried by the peer: a leading delimiter, the object type, then each part,
// every element terminated by the delimiter.
const (
	keyDelimiter   = "\x00"
	maxUnicodeRune = utf8.MaxRune
)

// MakeKey builds the world state key for an object type and its ordered
// identifying parts.
func MakeKey(objectType string, parts ...string) (string, error) {
	if objectType == "" {
		return "", Errorf(CodeInvalidArgument, "key object type must not be empty")
	}
	if err := validateKeyPart(objectType); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(keyDelimiter)
	b.WriteString(objectType)
	b.WriteString(keyDelimiter)
	for _, part := range parts {
		if part == "" {
			return "", Errorf(CodeInvalidArgument, "key part of %s must not be empty", objectType)
		}
		if err := validateKeyPart(part); err != nil {
			return "", err
		}
		b.WriteString(part)
		b.WriteString(keyDelimiter)
	}
	return b.String(), nil
}

// SplitKey is the inverse of MakeKey.
func SplitKey(key string) (string, []string, error) {
	if !strings.HasPrefix(key, keyDelimiter) || !strings.HasSuffix(key, keyDelimiter) || len(key) < 3 {
		return "", nil, Errorf(CodeInvalidArgument, "malformed key %q", key)
	}
	elems := strings.Split(key[1:len(key)-1], keyDelimiter)
	if elems[0] == "" {
		return "", nil, Errorf(CodeInvalidArgument, "malformed key %q", key)
	}
	return elems[0], elems[1:], nil
}

// CanonicalNumber renders a numeric identifier in canonical decimal form, so
// "00001", "1" and "+1" all address the same record.
func CanonicalNumber(s string) (string, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "+"), 10, 64)
	if err != nil {
		return "", Errorf(CodeInvalidArgument, "%q is not a valid number", s)
	}
	return strconv.FormatUint(n, 10), nil
}

func validateKeyPart(part string) error {
	if !utf8.ValidString(part) {
		return Errorf(CodeInvalidArgument, "key part %q is not valid UTF-8", part)
	}
	for _, r := range part {
		if r == 0 || r == maxUnicodeRune {
			return Errorf(CodeInvalidArgument, "key part %q contains a reserved character", part)
		}
	}
	return nil
}
