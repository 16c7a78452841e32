package sovereigntax

import "testing"

func TestNewTaxYearSummary(t *testing.T) {
	history := []Transaction{
		NewBuy(day("2020-01-01"), "Kraken", Q(2), M(10_000), M(0)),
		NewSell(day("2023-02-01"), "Kraken", Q(0.5), M(40_000), M(0)),
		NewSell(day("2023-08-01"), "Kraken", Q(0.5), M(30_000), M(0)),
		NewSell(day("2024-02-01"), "Kraken", Q(0.5), M(50_000), M(0)),
	}
	result := Calculate(history, FIFO)

	summary := NewTaxYearSummary(result, 2023)
	if summary.Sales != 2 {
		t.Errorf("Sales = %d, want 2", summary.Sales)
	}
	if !summary.Proceeds.Equal(M(35_000)) {
		t.Errorf("Proceeds = %s, want $35,000.00", summary.Proceeds)
	}
	if !summary.CostBasis.Equal(M(10_000)) {
		t.Errorf("CostBasis = %s, want $10,000.00", summary.CostBasis)
	}
	// Everything bought in 2020 is long-term by 2023.
	if !summary.LongTermGL.Equal(M(25_000)) {
		t.Errorf("LongTermGL = %s, want $25,000.00", summary.LongTermGL)
	}
	if !summary.ShortTermGL.IsZero() {
		t.Errorf("ShortTermGL = %s, want zero", summary.ShortTermGL)
	}

	other := NewTaxYearSummary(result, 2024)
	if other.Sales != 1 {
		t.Errorf("2024 Sales = %d, want 1", other.Sales)
	}
}

func TestTermSplitConservesGainLoss(t *testing.T) {
	// One long-term and one short-term lot consumed by a single sale.
	history := []Transaction{
		NewBuy(day("2020-01-01"), "Kraken", Q(1), M(10_000), M(0)),
		NewBuy(day("2022-12-01"), "Kraken", Q(1), M(20_000), M(0)),
		NewSell(day("2023-01-01"), "Kraken", Q(2), M(40_000), M(0)),
	}
	result := Calculate(history, FIFO)
	sale := result.Sales[0]
	if !sale.IsMixedTerm {
		t.Fatal("expected a mixed-term sale")
	}

	st, lt := termSplit(sale)
	if !st.Add(lt).Equal(sale.GainLoss) {
		t.Errorf("short %s + long %s != sale gain %s", st, lt, sale.GainLoss)
	}
	// Each lot got half the proceeds: long 40000-10000, short 40000-20000.
	if !lt.Equal(M(30_000)) {
		t.Errorf("long-term = %s, want $30,000.00", lt)
	}
	if !st.Equal(M(20_000)) {
		t.Errorf("short-term = %s, want $20,000.00", st)
	}
}

func TestCarryforwardChain(t *testing.T) {
	// 2021 realizes a large loss; 2022 and 2023 have no sales, so the
	// balance decays by the cap each year.
	history := []Transaction{
		NewBuy(day("2021-01-01"), "Kraken", Q(1), M(50_000), M(0)),
		NewSell(day("2021-06-01"), "Kraken", Q(1), M(42_500), M(0)),
	}
	result := Calculate(history, FIFO)

	chain := CarryforwardChain(result, 2021, 2023, M(0), DefaultDeductionLimit)
	if len(chain) != 3 {
		t.Fatalf("got %d links, want 3", len(chain))
	}

	wantCarry := []Money{M(-4_500), M(-1_500), M(0)}
	for i, link := range chain {
		if !link.Result.Carryforward.Equal(wantCarry[i]) {
			t.Errorf("year %d carryforward = %s, want %s", link.Year, link.Result.Carryforward, wantCarry[i])
		}
	}
	if !chain[2].Result.DeductibleLoss.Equal(M(-1_500)) {
		t.Errorf("final year deductible = %s, want -$1,500.00", chain[2].Result.DeductibleLoss)
	}
}

func TestCompareMethods(t *testing.T) {
	history := append(threeBuys(), NewSell(day("2023-01-01"), "Kraken", Q(1), M(40_000), M(0)))

	rows := CompareMethods(history)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	byMethod := make(map[AccountingMethod]MethodComparison)
	for _, row := range rows {
		byMethod[row.Method] = row
	}
	if !byMethod[HIFO].Realized.LessThan(byMethod[FIFO].Realized) {
		t.Errorf("HIFO realized %s is not below FIFO %s", byMethod[HIFO].Realized, byMethod[FIFO].Realized)
	}
	for method, row := range byMethod {
		if row.Sales != 1 {
			t.Errorf("%s: Sales = %d, want 1", method, row.Sales)
		}
	}
}

func TestNewIncomeSummary(t *testing.T) {
	mining := NewBuy(day("2023-02-01"), "Pool", Q(0.1), M(20_000), M(0))
	mining.Income = IncomeMining
	staking := NewBuy(day("2023-05-01"), "Kraken", Q(0.05), M(30_000), M(0))
	staking.Income = IncomeStaking
	moreMining := NewBuy(day("2023-09-01"), "Pool", Q(0.2), M(25_000), M(0))
	moreMining.Income = IncomeMining
	lastYear := NewBuy(day("2022-02-01"), "Pool", Q(1), M(20_000), M(0))
	lastYear.Income = IncomeMining

	history := []Transaction{
		mining, staking, moreMining, lastYear,
		NewBuy(day("2023-03-01"), "Kraken", Q(1), M(25_000), M(0)), // plain buy, not income
	}

	summary := NewIncomeSummary(history, 2023)
	if len(summary.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(summary.Lines))
	}
	// Sorted by type: airdrop < mining < staking.
	if summary.Lines[0].Type != IncomeMining || summary.Lines[1].Type != IncomeStaking {
		t.Errorf("line order = %s, %s", summary.Lines[0].Type, summary.Lines[1].Type)
	}
	if summary.Lines[0].Count != 2 {
		t.Errorf("mining count = %d, want 2", summary.Lines[0].Count)
	}
	if !summary.TotalQuantity.Equal(Q(0.35)) {
		t.Errorf("TotalQuantity = %s, want 0.35", summary.TotalQuantity)
	}
	if !summary.TotalValue.Equal(M(8_500)) {
		t.Errorf("TotalValue = %s, want $8,500.00", summary.TotalValue)
	}
}
