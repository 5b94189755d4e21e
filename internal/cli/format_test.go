package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{25000, "IDR", "Rp 25.000"},
		{1000000, "IDR", "Rp 1.000.000"},
		{999, "IDR", "Rp 999"},
		{0, "IDR", "Rp 0"},
		{25000.4, "IDR", "Rp 25.000"},
		{25000.6, "IDR", "Rp 25.001"},
		{25000, "USD", "USD 25,000"},
		{1234567, "EUR", "EUR 1,234,567"},
		{5000, "", "Rp 5.000"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.amount, c.currency); got != c.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.255); got != "25.5%" {
		t.Errorf("FormatPercent(0.255) = %q, want 25.5%%", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q, want empty", got)
	}
	got := RenderSparkline([]float64{0, 0, 0})
	if len([]rune(got)) != 3 {
		t.Errorf("all-zero sparkline length = %d runes, want 3", len([]rune(got)))
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(5, 0, 10); got != "" {
		t.Errorf("zero-max bar = %q, want empty", got)
	}
	if got := RenderHorizontalBar(10, 10, 8); len([]rune(got)) != 8 {
		t.Errorf("full bar = %q, want 8 blocks", got)
	}
}
