package minparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the value kind of an option. The set is closed: BIN, INT and STR.
type Kind uint8

const (
	kindInvalid Kind = iota

	// KindBin is an on/off toggle that never consumes a value.
	KindBin
	// KindInt requires a base-10 integer value.
	KindInt
	// KindStr accepts any string value unchanged.
	KindStr
)

// String returns the canonical lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindBin:
		return "bin"
	case KindInt:
		return "int"
	case KindStr:
		return "str"
	case kindInvalid:
		return "invalid"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is one of KindBin, KindInt or KindStr.
func (k Kind) Valid() bool {
	return k == KindBin || k == KindInt || k == KindStr
}

// TakesValue returns true if the kind consumes a value
func (k Kind) TakesValue() bool {
	return k == KindInt || k == KindStr
}

// Default returns the value an option of this kind receives when it is absent
// from the command line.
func (k Kind) Default() any {
	switch k {
	case KindBin:
		return false
	case KindInt:
		return 0
	case KindStr:
		return ""
	case kindInvalid:
		return nil
	}
	return nil
}

// Coerce converts a raw command-line value to the kind's Go type.
// KindBin never accepts a value.
func (k Kind) Coerce(raw string) (any, error) {
	switch k {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return n, nil
	case KindStr:
		return raw, nil
	case KindBin:
		return nil, fmt.Errorf("binary flags take no value")
	case kindInvalid:
	}
	return nil, fmt.Errorf("unsupported kind %s", k)
}

// Tail returns the value placeholder shown after a flag in help output.
func (k Kind) Tail() string {
	switch k {
	case KindInt:
		return " <int>"
	case KindStr:
		return " <str>"
	case KindBin, kindInvalid:
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so kinds can be written as
// plain words in YAML, TOML and JSON configuration files.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "bin", "bool", "binary":
		*k = KindBin
	case "int", "integer", "number":
		*k = KindInt
	case "str", "string":
		*k = KindStr
	default:
		return fmt.Errorf("unknown option kind %q (want bin, int or str)", string(text))
	}
	return nil
}
