package sovereigntax

// DefaultDeductionLimit is the annual capital-loss deduction cap of
// IRS Schedule D: $3,000 against ordinary income ($1,500 when married
// filing separately, pass that explicitly).
var DefaultDeductionLimit = M(3000)

// CarryforwardResult summarizes one tax year's loss-deduction arithmetic.
type CarryforwardResult struct {
	NetGainLoss    Money // short + long + prior carryforward
	DeductibleLoss Money // loss claimed this year, capped; zero on a net gain
	Carryforward   Money // negative remainder rolled to next year, or zero
	ShortTermGL    Money
	LongTermGL     Money
}

// ComputeCarryforward applies the annual capital-loss deduction cap.
// priorCarryforward is the (non-positive, by convention) balance rolled in
// from the previous year. On a net gain no cap applies and nothing carries
// forward; on a net loss the deduction is capped in magnitude at limit and
// the remainder rolls forward. Pure function, no state.
func ComputeCarryforward(shortTermGL, longTermGL, priorCarryforward, limit Money) CarryforwardResult {
	total := shortTermGL.Add(longTermGL).Add(priorCarryforward)

	if total.GreaterThanOrEqual(M(0)) {
		return CarryforwardResult{
			NetGainLoss: total,
			ShortTermGL: shortTermGL,
			LongTermGL:  longTermGL,
		}
	}

	deductible := total
	if deductible.LessThan(limit.Neg()) {
		deductible = limit.Neg()
	}

	return CarryforwardResult{
		NetGainLoss:    total,
		DeductibleLoss: deductible,
		Carryforward:   total.Sub(deductible),
		ShortTermGL:    shortTermGL,
		LongTermGL:     longTermGL,
	}
}
