package sovereigntax

import "testing"

func TestComputeCarryforward(t *testing.T) {
	tests := []struct {
		name       string
		shortTerm  Money
		longTerm   Money
		prior      Money
		net        Money
		deductible Money
		carry      Money
	}{
		{
			name:      "net gain",
			shortTerm: M(2_000), longTerm: M(3_000),
			net: M(5_000), deductible: M(0), carry: M(0),
		},
		{
			name:      "small loss fully deductible",
			shortTerm: M(-1_000), longTerm: M(0),
			net: M(-1_000), deductible: M(-1_000), carry: M(0),
		},
		{
			name:      "loss capped at limit",
			shortTerm: M(-5_000), longTerm: M(0),
			net: M(-5_000), deductible: M(-3_000), carry: M(-2_000),
		},
		{
			name:      "loss exactly at limit",
			shortTerm: M(-3_000), longTerm: M(0),
			net: M(-3_000), deductible: M(-3_000), carry: M(0),
		},
		{
			name:      "gain offset by carried loss",
			shortTerm: M(2_000), longTerm: M(0), prior: M(-500),
			net: M(1_500), deductible: M(0), carry: M(0),
		},
		{
			name:      "carried loss pushes into deduction",
			shortTerm: M(1_000), longTerm: M(0), prior: M(-5_000),
			net: M(-4_000), deductible: M(-3_000), carry: M(-1_000),
		},
		{
			name:      "zero year",
			shortTerm: M(0), longTerm: M(0),
			net: M(0), deductible: M(0), carry: M(0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCarryforward(tc.shortTerm, tc.longTerm, tc.prior, DefaultDeductionLimit)
			if !got.NetGainLoss.Equal(tc.net) {
				t.Errorf("NetGainLoss = %s, want %s", got.NetGainLoss, tc.net)
			}
			if !got.DeductibleLoss.Equal(tc.deductible) {
				t.Errorf("DeductibleLoss = %s, want %s", got.DeductibleLoss, tc.deductible)
			}
			if !got.Carryforward.Equal(tc.carry) {
				t.Errorf("Carryforward = %s, want %s", got.Carryforward, tc.carry)
			}
			// The deduction plus the carryforward always account for the
			// whole net loss.
			if got.NetGainLoss.IsNegative() {
				if sum := got.DeductibleLoss.Add(got.Carryforward); !sum.Equal(got.NetGainLoss) {
					t.Errorf("deductible + carryforward = %s, want %s", sum, got.NetGainLoss)
				}
			}
		})
	}
}

func TestComputeCarryforwardCustomLimit(t *testing.T) {
	// Married filing separately halves the cap.
	got := ComputeCarryforward(M(-5_000), M(0), M(0), M(1_500))
	if !got.DeductibleLoss.Equal(M(-1_500)) {
		t.Errorf("DeductibleLoss = %s, want -$1,500.00", got.DeductibleLoss)
	}
	if !got.Carryforward.Equal(M(-3_500)) {
		t.Errorf("Carryforward = %s, want -$3,500.00", got.Carryforward)
	}
}
