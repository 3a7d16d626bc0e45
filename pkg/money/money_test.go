package money

import (
	"encoding/json"
	"testing"
)

func TestAmountDecodesWithoutPrecisionLoss(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "fractional", input: `123.456789`, want: `123.456789`},
		{name: "negative", input: `-105.25`, want: `-105.25`},
		{name: "integer", input: `50`, want: `50`},
		{name: "trailing zeros kept", input: `1.10`, want: `1.10`},
		{name: "string wrapped", input: `"123.456789"`, want: `123.456789`},
		{name: "high precision", input: `0.000000000000000001`, want: `0.000000000000000001`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("unmarshal %s returned error: %v", tt.input, err)
			}
			out, err := json.Marshal(a)
			if err != nil {
				t.Fatalf("marshal returned error: %v", err)
			}
			if string(out) != tt.want {
				t.Fatalf("expected %s to re-encode as %s, got %s", tt.input, tt.want, out)
			}
		})
	}
}

func TestAmountRejectsMalformedLiterals(t *testing.T) {
	for _, input := range []string{`"12.3.4"`, `"abc"`, `true`, `{}`} {
		var a Amount
		if err := json.Unmarshal([]byte(input), &a); err == nil {
			t.Fatalf("expected %s to fail to decode", input)
		}
	}
}

func TestAmountEqualIgnoresScale(t *testing.T) {
	if !MustAmount("1.5").Equal(MustAmount("1.50")) {
		t.Fatal("expected 1.5 to equal 1.50")
	}
	if MustAmount("1.5").Equal(MustAmount("1.51")) {
		t.Fatal("expected 1.5 not to equal 1.51")
	}
}

func TestAmountIsNegative(t *testing.T) {
	if !MustAmount("-0.01").IsNegative() {
		t.Fatal("expected -0.01 to be negative")
	}
	if MustAmount("0").IsNegative() {
		t.Fatal("expected 0 not to be negative")
	}
}

func TestParseCurrencyValidatesISO4217(t *testing.T) {
	c, err := ParseCurrency("NZD")
	if err != nil {
		t.Fatalf("ParseCurrency(NZD) returned error: %v", err)
	}
	if c.Code() != "NZD" {
		t.Fatalf("expected code NZD, got %q", c.Code())
	}

	if _, err := ParseCurrency("ZZZ"); err == nil {
		t.Fatal("expected ZZZ to be rejected")
	}
	if _, err := ParseCurrency(""); err == nil {
		t.Fatal("expected empty code to be rejected")
	}
}

func TestCurrencyRoundTripsThroughJSON(t *testing.T) {
	var c Currency
	if err := json.Unmarshal([]byte(`"GBP"`), &c); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(out) != `"GBP"` {
		t.Fatalf("expected \"GBP\", got %s", out)
	}
}

func TestCurrencyUnmarshalRejectsUnknownCodes(t *testing.T) {
	var c Currency
	if err := json.Unmarshal([]byte(`"NOPE"`), &c); err == nil {
		t.Fatal("expected unknown currency code to fail to decode")
	}
}
