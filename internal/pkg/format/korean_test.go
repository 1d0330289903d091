package format

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0원"},
		{500, "500원"},
		{10000, "10,000원"},
		{75000, "75,000원"},
		{1234567, "1,234,567원"},
	}
	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Errorf("Currency(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0시간"},
		{8, "8시간"},
		{7.5, "7.5시간"},
		{1234, "1,234시간"},
		{40.5, "40.5시간"},
	}
	for _, c := range cases {
		if got := Hours(c.in); got != c.want {
			t.Errorf("Hours(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNumberToKorean(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, ""},
		{-5, ""},
		{7, "7"},
		{999, "999"},
		{1000, "1천"},
		{5230, "5천2백3십"},
		{10000, "1만"},
		{75000, "7만5천"},
		{100000, "1십만"},
		{12345, "1만2천3백4십5"},
		{100000000, "1억"},
		{123456789, "1억2천3백4십5만6천7백8십9"},
		{1000000000000, "1조"},
	}
	for _, c := range cases {
		if got := NumberToKorean(c.in); got != c.want {
			t.Errorf("NumberToKorean(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
