package engine

import (
	"fmt"
	"testing"
)

func TestParseReading(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0.0", 0},
		{"1.2", 12},
		{"9.9", 99},
		{"12.3", 123},
		{"99.9", 999},
		{"-0.1", -1},
		{"-5.0", -50},
		{"-12.3", -123},
		{"-99.9", -999},
		{"23.4\n", 234},
		{"-7.5\r\n", -75},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			if got := ParseReading([]byte(tt.in)); got != tt.want {
				t.Fatalf("ParseReading(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseReadingRoundTrip(t *testing.T) {
	var encodings []string
	for whole := 0; whole <= 99; whole++ {
		for frac := 0; frac <= 9; frac++ {
			encodings = append(encodings, fmt.Sprintf("%d.%d", whole, frac))
			if whole < 10 {
				encodings = append(encodings, fmt.Sprintf("%02d.%d", whole, frac))
			}
		}
	}

	checked := 0
	for _, enc := range encodings {
		for _, s := range []string{enc, "-" + enc} {
			// Leading zeros and negative zero have no distinct tenths value.
			canonical := len(enc) < 4 || enc[0] != '0'
			if !canonical || s == "-0.0" {
				continue
			}

			got := FormatTenths(ParseReading([]byte(s)))
			if got != s {
				t.Fatalf("round trip of %q gave %q", s, got)
			}
			checked++
		}
	}

	// 1000 positive and 999 negative values
	if checked != 1999 {
		t.Fatalf("checked %d encodings, want 1999", checked)
	}
}

func TestParseReadingLeadingZero(t *testing.T) {
	if got := ParseReading([]byte("-05.5")); got != -55 {
		t.Fatalf("ParseReading(-05.5) = %d, want -55", got)
	}
}

func TestFormatTenths(t *testing.T) {
	tests := map[int64]string{
		0:      "0.0",
		5:      "0.5",
		-5:     "-0.5",
		123:    "12.3",
		-50:    "-5.0",
		999:    "99.9",
		123456: "12345.6",
	}

	for in, want := range tests {
		if got := FormatTenths(in); got != want {
			t.Fatalf("FormatTenths(%d) = %q, want %q", in, got, want)
		}
	}
}

func BenchmarkParseReading(b *testing.B) {
	inputs := [][]byte{[]byte("12.3"), []byte("-5.0"), []byte("-99.9"), []byte("0.1")}
	var sink int64
	for n := 0; n < b.N; n++ {
		sink += ParseReading(inputs[n%len(inputs)])
	}
	_ = sink
}
