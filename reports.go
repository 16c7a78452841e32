package sovereigntax

import "sort"

// TaxYearSummary aggregates the realized results of one calendar year.
// Mixed-term sales are split by their lot details, so the short/long
// subtotals are authoritative even when a single sale spans both terms.
type TaxYearSummary struct {
	Year        int
	ShortTermGL Money
	LongTermGL  Money
	Proceeds    Money
	CostBasis   Money
	Sales       int
}

// NewTaxYearSummary folds the sales of one year out of a calculation
// result.
func NewTaxYearSummary(result CalculationResult, year int) TaxYearSummary {
	s := TaxYearSummary{Year: year}
	for _, sale := range result.Sales {
		if sale.SaleDate.UTC().Year() != year {
			continue
		}
		s.Sales++
		s.Proceeds = s.Proceeds.Add(sale.Proceeds)
		s.CostBasis = s.CostBasis.Add(sale.CostBasis)
		st, lt := termSplit(sale)
		s.ShortTermGL = s.ShortTermGL.Add(st)
		s.LongTermGL = s.LongTermGL.Add(lt)
	}
	return s
}

// termSplit apportions one sale's gain/loss into short- and long-term
// parts. A single-term sale contributes its whole gain to that term; a
// mixed-term sale distributes its fee-adjusted proceeds over the lot
// details by quantity share, so the two parts always sum to the sale's
// GainLoss.
func termSplit(sale SaleRecord) (shortTerm, longTerm Money) {
	if !sale.IsMixedTerm {
		if sale.IsLongTerm {
			return Money{}, sale.GainLoss
		}
		return sale.GainLoss, Money{}
	}
	for _, d := range sale.LotDetails {
		proceeds := sale.Proceeds.Mul(d.Quantity.Div(sale.Quantity))
		gain := proceeds.Sub(d.Cost)
		if d.IsLongTerm {
			longTerm = longTerm.Add(gain)
		} else {
			shortTerm = shortTerm.Add(gain)
		}
	}
	return shortTerm, longTerm
}

// YearCarryforward is one link of a multi-year carryforward chain.
type YearCarryforward struct {
	Year    int
	Summary TaxYearSummary
	Result  CarryforwardResult
}

// CarryforwardChain applies the annual deduction cap year over year from
// firstYear through lastYear, threading each year's rolling balance into
// the next. prior seeds the chain with a balance carried in from before
// firstYear (non-positive by convention).
func CarryforwardChain(result CalculationResult, firstYear, lastYear int, prior, limit Money) []YearCarryforward {
	var chain []YearCarryforward
	for year := firstYear; year <= lastYear; year++ {
		summary := NewTaxYearSummary(result, year)
		cf := ComputeCarryforward(summary.ShortTermGL, summary.LongTermGL, prior, limit)
		chain = append(chain, YearCarryforward{Year: year, Summary: summary, Result: cf})
		prior = cf.Carryforward
	}
	return chain
}

// MethodComparison tabulates one accounting method's outcome over a whole
// history, for side-by-side method selection.
type MethodComparison struct {
	Method      AccountingMethod
	Realized    Money
	ShortTermGL Money
	LongTermGL  Money
	Sales       int
	Warnings    int
}

// CompareMethods runs a full calculation once per method. Each run gets its
// own copy of the history and its own lot book, so the runs are
// independent.
func CompareMethods(transactions []Transaction, methods ...AccountingMethod) []MethodComparison {
	if len(methods) == 0 {
		methods = AccountingMethods()
	}
	out := make([]MethodComparison, 0, len(methods))
	for _, method := range methods {
		result := Calculate(transactions, method)
		row := MethodComparison{
			Method:   method,
			Sales:    len(result.Sales),
			Warnings: len(result.Warnings),
		}
		for _, sale := range result.Sales {
			row.Realized = row.Realized.Add(sale.GainLoss)
			st, lt := termSplit(sale)
			row.ShortTermGL = row.ShortTermGL.Add(st)
			row.LongTermGL = row.LongTermGL.Add(lt)
		}
		out = append(out, row)
	}
	return out
}

// IncomeLine aggregates the buys of one income type.
type IncomeLine struct {
	Type     IncomeType
	Quantity Quantity
	Value    Money // USD value at acquisition
	Count    int
}

// IncomeSummary reports income-tagged acquisitions (mining, staking,
// airdrops) for one year, valued at their acquisition-time USD total.
type IncomeSummary struct {
	Year          int
	Lines         []IncomeLine
	TotalQuantity Quantity
	TotalValue    Money
}

// NewIncomeSummary aggregates income-tagged buys for a year, one line per
// income type, sorted by type.
func NewIncomeSummary(transactions []Transaction, year int) IncomeSummary {
	s := IncomeSummary{Year: year}
	index := make(map[IncomeType]*IncomeLine)
	for _, tx := range transactions {
		if tx.Type != TxBuy || tx.Income == "" || tx.Year() != year {
			continue
		}
		line := index[tx.Income]
		if line == nil {
			line = &IncomeLine{Type: tx.Income}
			index[tx.Income] = line
		}
		line.Quantity = line.Quantity.Add(tx.Quantity)
		line.Value = line.Value.Add(tx.Total)
		line.Count++
		s.TotalQuantity = s.TotalQuantity.Add(tx.Quantity)
		s.TotalValue = s.TotalValue.Add(tx.Total)
	}
	for _, line := range index {
		s.Lines = append(s.Lines, *line)
	}
	sort.Slice(s.Lines, func(i, j int) bool { return s.Lines[i].Type < s.Lines[j].Type })
	return s
}
