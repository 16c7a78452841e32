package sovereigntax

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(0), "$0.00"},
		{M(1234.56), "$1,234.56"},
		{M(-1234.56), "-$1,234.56"},
		{M(17_000), "$17,000.00"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{M(0), "-"},
		{M(100), "+$100.00"},
		{M(-100), "-$100.00"},
	}
	for _, tc := range tests {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimals must stay exact.
	sum := M(0.1).Add(M(0.2))
	if !sum.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", sum)
	}

	price := M(17_000)
	if got := price.Mul(Q(0.5)); !got.Equal(M(8_500)) {
		t.Errorf("Mul = %s, want $8,500.00", got)
	}
	if got := M(8_500).Div(Q(0.5)); !got.Equal(price) {
		t.Errorf("Div = %s, want $17,000.00", got)
	}
}

func TestQuantityBTCString(t *testing.T) {
	if got := Q(0.5).BTCString(); got != "0.50000000" {
		t.Errorf("BTCString = %q, want 8 fractional digits", got)
	}
	if got := Q(0.00000001).BTCString(); got != "0.00000001" {
		t.Errorf("BTCString = %q, a satoshi must survive formatting", got)
	}
}

func TestQuantitySatoshiPrecision(t *testing.T) {
	one := Q(1)
	var sum Quantity
	for range 10 {
		sum = sum.Add(Q(0.1))
	}
	if !sum.Equal(one) {
		t.Errorf("ten times 0.1 = %s, want 1", sum)
	}
}
