// Package macaddr parses hardware addresses written in the usual textual
// notations and compares them by a canonical numeric value.
//
// The canonical value is the big-endian two's-complement integer of the raw
// address bytes, so addresses whose first byte has the high bit set are
// negative: f6:ef:f8:61:22:30 is -9964451978704. Stored values and fixtures
// depend on this, keep it signed.
package macaddr

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"net"
)

// MAC is an immutable hardware address.
type MAC struct {
	raw   []byte
	value *big.Int
}

const (
	// longest accepted text, six colon separated byte pairs
	maxTextLength = 17
	addressLength = 6
)

// Parse reads a 48-bit address in colon, hyphen, dotted (groups of four),
// whitespace separated or undelimited notation, in either case. Delimiters
// may be mixed. Parse returns nil for anything it cannot read.
func Parse(text string) *MAC {
	if text == "" || len(text) > maxTextLength {
		return nil
	}

	digits := make([]byte, 0, 2*addressLength)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isDelimiter(c) {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return nil
		}
		digits = append(digits, c)
	}
	if len(digits) != 2*addressLength {
		return nil
	}

	raw := make([]byte, addressLength)
	if _, err := hex.Decode(raw, digits); err != nil {
		return nil
	}
	return FromBytes(raw)
}

// FromBytes builds a MAC from raw address bytes in network order. Any
// non-empty length is accepted so EUI-64 and other link-layer addresses
// compare the same way. Empty input yields nil.
func FromBytes(b []byte) *MAC {
	if len(b) == 0 {
		return nil
	}

	raw := bytes.Clone(b)
	value := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		value.Sub(value, new(big.Int).Lsh(big.NewInt(1), uint(8*len(raw))))
	}

	return &MAC{raw: raw, value: value}
}

func FromHardwareAddr(hw net.HardwareAddr) *MAC {
	return FromBytes(hw)
}

func (m *MAC) Bytes() []byte {
	return bytes.Clone(m.raw)
}

func (m *MAC) HardwareAddr() net.HardwareAddr {
	return m.Bytes()
}

// Int returns a copy of the canonical value.
func (m *MAC) Int() *big.Int {
	return new(big.Int).Set(m.value)
}

// Equal compares canonical values. Two nil addresses are equal.
func (m *MAC) Equal(other *MAC) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.value.Cmp(other.value) == 0
}

func (m *MAC) String() string {
	if m == nil {
		return ""
	}
	return net.HardwareAddr(m.raw).String()
}

func isDelimiter(c byte) bool {
	switch c {
	case ':', '-', '.', ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
