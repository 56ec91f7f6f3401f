package macaddr

import (
	"bytes"
	"math/big"
	"net"
	"strings"
	"testing"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad fixture %q", s)
	}
	return v
}

func TestParseValid(t *testing.T) {
	const sameMac = "-9964451978704"
	cases := []struct {
		input    string
		expected string
	}{
		{"56:67:78:89:45:34", "95002403882292"},
		{"F6-EF-F8-61-22-30", sameMac},
		{"f6-ef-f8-61-22-30", sameMac},
		{"F6:EF:F8:61:22:30", sameMac},
		{"f6:ef:f8:61:22:30", sameMac},
		{"F6EF.F861.2230", sameMac},
		{"f6ef.f861.2230", sameMac},
		{"F6EFF8612230", sameMac},
		{"f6eff8612230", sameMac},
		{"f6 ef f8 61 22 30", sameMac},
		{"f6:ef-f8.61 22:30", sameMac},
		{"56:a7:78:89:4f:34", "95277281791796"},
		{"DD-C3-3E-DB-4C-29", "-37644333790167"},
		{"67-19-68-a2-02-c0", "113358827291328"},
		{"7f:a7:61:49:a4:32", "140356868482098"},
		{"d9:cc:db:e6:ae:b3", "-42001090826573"},
		{"439C.0AB2.0D70", "74337473400176"},
		{"3bba.312a.ea81", "65670874851969"},
		{"FAD080347197", "-5701565648489"},
		{"84b95172e33b", "-135543506410693"},
		{"1C-7C-D7-09-A3-DE", "31322509255646"},
		{"D8C2.2C61.EA55", "-43146496841131"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			mac := Parse(tc.input)
			if mac == nil {
				t.Fatalf("expected %q to parse", tc.input)
			}
			if got, want := mac.Int(), bigInt(t, tc.expected); got.Cmp(want) != 0 {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too long with delimiter", "56:a7:78:89:4f:34:"},
		{"one short after strip", "56677889453"},
		{"too short", "1111111111111111"},
		{"way too short", "2"},
		{"too many digits", "999999999999999999"},
		{"extra delimiter", "56:a7:78::9:4f:34"},
		{"all spaces", "                 "},
		{"invalid char dollar", "56:a7$78:89:4f:34"},
		{"invalid char g", "56:a7:78:g9:4f:34"},
		{"not a mac", "BAD_MAC_ADDRESS_IGNORE_EXCEPTION"},
		{"underscore delimiter", "f6_ef_f8_61_22_30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if mac := Parse(tc.input); mac != nil {
				t.Errorf("expected %q to be rejected, got %s", tc.input, mac.Int())
			}
		})
	}
}

func TestParseDelimiterInvariance(t *testing.T) {
	addresses := [][]byte{
		{0xf6, 0xef, 0xf8, 0x61, 0x22, 0x30},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x80, 0x00, 0x00, 0x00, 0x00, 0x01},
		{0x7f, 0xff, 0xff, 0xff, 0xff, 0xfe},
	}

	for _, raw := range addresses {
		canonical := net.HardwareAddr(raw).String()
		t.Run(canonical, func(t *testing.T) {
			expected := Parse(canonical)
			if expected == nil {
				t.Fatalf("expected %q to parse", canonical)
			}

			plain := strings.ReplaceAll(canonical, ":", "")
			variants := []string{
				strings.ReplaceAll(canonical, ":", "-"),
				strings.ToUpper(canonical),
				plain,
				plain[0:4] + "." + plain[4:8] + "." + plain[8:12],
			}
			for _, variant := range variants {
				if got := Parse(variant); !got.Equal(expected) {
					t.Errorf("expected %q to equal %q", variant, canonical)
				}
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	t.Run("empty is absent", func(t *testing.T) {
		if FromBytes(nil) != nil || FromHardwareAddr(net.HardwareAddr{}) != nil {
			t.Error("expected nil for empty hardware address")
		}
	})

	t.Run("matches parsed value", func(t *testing.T) {
		raw := []byte{0xd2, 0x28, 0xdd, 0x89, 0x27, 0x8f}
		mac := FromBytes(raw)
		if !mac.Equal(Parse("D2:28:DD:89:27:8F")) {
			t.Fatalf("expected %s to equal parsed text", mac)
		}
		if got := mac.Int(); got.Cmp(bigInt(t, "-50402019432561")) != 0 {
			t.Errorf("expected -50402019432561, got %s", got)
		}
	})

	t.Run("bytes round trip", func(t *testing.T) {
		raw := []byte{0x50, 0xd1, 0x5f, 0x4e, 0xbe, 0x75}
		mac := FromBytes(raw)
		raw[0] = 0x00
		if got := mac.Bytes(); !bytes.Equal(got, []byte{0x50, 0xd1, 0x5f, 0x4e, 0xbe, 0x75}) {
			t.Errorf("expected stored bytes to be independent of input, got %x", got)
		}
		if got := mac.String(); got != "50:d1:5f:4e:be:75" {
			t.Errorf("expected colon form, got %q", got)
		}
	})

	t.Run("sign extension across lengths", func(t *testing.T) {
		short := FromBytes([]byte{0xf6, 0xef, 0xf8, 0x61, 0x22, 0x30})
		long := FromBytes([]byte{0xff, 0xff, 0xf6, 0xef, 0xf8, 0x61, 0x22, 0x30})
		if !short.Equal(long) {
			t.Errorf("expected %s and %s to compare equal", short.Int(), long.Int())
		}
	})
}

func TestIntIsCopy(t *testing.T) {
	mac := Parse("56:67:78:89:45:34")
	mac.Int().SetInt64(0)
	if got := mac.Int(); got.Cmp(bigInt(t, "95002403882292")) != 0 {
		t.Errorf("expected value to be unchanged, got %s", got)
	}
}

func TestEqualNil(t *testing.T) {
	var a, b *MAC
	if !a.Equal(b) {
		t.Error("expected nil addresses to be equal")
	}
	if a.Equal(Parse("00:00:00:00:00:00")) {
		t.Error("expected nil to differ from the zero address")
	}
	if a.String() != "" {
		t.Error("expected empty string for nil address")
	}
}
