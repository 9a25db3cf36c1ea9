package ledgerapi

import (
	"errors"
	"testing"
)

func TestMakeKeyIsDeterministic(t *testing.T) {
	a, err := MakeKey("org.papernet.paperlist", "MagnetoCorp", "1")
	if err != nil {
		t.Fatalf("make key: %v", err)
	}
	b, err := MakeKey("org.papernet.paperlist", "MagnetoCorp", "1")
	if err != nil {
		t.Fatalf("make key: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
	if a != "\x00org.papernet.paperlist\x00MagnetoCorp\x001\x00" {
		t.Fatalf("unexpected key layout %q", a)
	}
}

func TestMakeKeyIsInjective(t *testing.T) {
	pairs := [][2]string{
		{"MagnetoCorp", "1"},
		{"MagnetoCorp", "11"},
		{"MagnetoCorp1", "1"},
		{"Magneto", "Corp1"},
		{"Magneto:Corp", "1"},
		{"Magneto", "Corp:1"},
	}
	seen := map[string][2]string{}
	for _, p := range pairs {
		key, err := MakeKey("list", p[0], p[1])
		if err != nil {
			t.Fatalf("make key %v: %v", p, err)
		}
		if other, ok := seen[key]; ok {
			t.Fatalf("pairs %v and %v collide on %q", p, other, key)
		}
		seen[key] = p
	}
}

func TestMakeKeyRejectsReservedCharacters(t *testing.T) {
	cases := map[string][]string{
		"delimiter":   {"Magneto\x00Corp", "1"},
		"max rune":    {"Magneto\U0010FFFFCorp", "1"},
		"invalid utf": {string([]byte{0xff, 0xfe}), "1"},
		"empty part":  {"MagnetoCorp", ""},
	}
	for name, parts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := MakeKey("list", parts...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
	if _, err := MakeKey(""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for empty object type, got %v", err)
	}
}

func TestSplitKeyRoundTrip(t *testing.T) {
	key, err := MakeKey("list", "MagnetoCorp", "1")
	if err != nil {
		t.Fatalf("make key: %v", err)
	}
	objectType, parts, err := SplitKey(key)
	if err != nil {
		t.Fatalf("split key: %v", err)
	}
	if objectType != "list" || len(parts) != 2 || parts[0] != "MagnetoCorp" || parts[1] != "1" {
		t.Fatalf("unexpected split %q %q", objectType, parts)
	}

	if _, _, err := SplitKey("MagnetoCorp:1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for plain key, got %v", err)
	}
}

func TestCanonicalNumber(t *testing.T) {
	cases := map[string]string{
		"1":     "1",
		"00001": "1",
		"+7":    "7",
		" 42 ":  "42",
		"0":     "0",
	}
	for in, want := range cases {
		got, err := CanonicalNumber(in)
		if err != nil {
			t.Fatalf("canonical %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("canonical %q: expected %q, got %q", in, want, got)
		}
	}
	for _, bad := range []string{"", "one", "-1", "1.5", "1e3"} {
		if _, err := CanonicalNumber(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("canonical %q: expected invalid argument, got %v", bad, err)
		}
	}
}
