package coerce

import (
	"math"
	"testing"
)

func TestIntParsesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		def  int
		want int
	}{
		{"json number", float64(7), DefaultRanking, 7},
		{"int", 12, DefaultRanking, 12},
		{"numeric string", "42", DefaultRanking, 42},
		{"float string", "42.9", DefaultRanking, 42},
		{"padded string", " 15 ", DefaultRanking, 15},
		{"nil falls back", nil, DefaultRanking, DefaultRanking},
		{"empty string falls back", "", DefaultFeeMin, DefaultFeeMin},
		{"garbage falls back", "NaN", DefaultRanking, DefaultRanking},
		{"nan falls back", math.NaN(), DefaultRanking, DefaultRanking},
		{"bool falls back", true, DefaultFeeMax, DefaultFeeMax},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Int(tc.in, tc.def); got != tc.want {
				t.Fatalf("Int(%v, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
			}
		})
	}
}
