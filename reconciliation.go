package sovereigntax

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// transferTolerance is the amount slack allowed when pairing transfer legs,
// one satoshi.
var transferTolerance = Quantity{value: decimal.New(1, -8)}

// maxTransferDays is the widest plausible settlement window between an
// outgoing and an incoming transfer leg.
const maxTransferDays = 7

// TransferPair is a matched outgoing/incoming transfer across exchanges.
type TransferPair struct {
	TransferOut Transaction
	TransferIn  Transaction
	Quantity    Quantity
	DaysBetween int
}

// ExchangeBalance aggregates asset movement for one exchange: buys and
// incoming transfers flow in, sells and outgoing transfers flow out.
type ExchangeBalance struct {
	Exchange   string
	TotalIn    Quantity
	TotalOut   Quantity
	NetBalance Quantity
}

// ReconciliationResult is a derived diagnostic over the transfer legs of a
// history. No persistent identity; recomputed per call.
type ReconciliationResult struct {
	MatchedTransfers      []TransferPair
	UnmatchedTransferOuts []Transaction
	UnmatchedTransferIns  []Transaction
	ExchangeBalances      []ExchangeBalance
	SuggestedMissing      []string
}

// ReconcileTransfers pairs outgoing and incoming transfer legs across
// exchanges and flags balance anomalies.
//
// Matching is greedy, first-out-first-matched: outs are visited in
// chronological order and each takes the candidate in with the smallest
// elapsed days. A candidate must sit on a different exchange (a same-
// exchange transfer is not a cross-exchange movement), match the amount
// within one satoshi, and land at or after the out within seven days.
// Greedy is not globally optimal; unmatched legs are reported, not errors.
func ReconcileTransfers(transactions []Transaction) ReconciliationResult {
	var outs, ins []Transaction
	for _, tx := range transactions {
		switch tx.Type {
		case TxTransferOut:
			outs = append(outs, tx)
		case TxTransferIn:
			ins = append(ins, tx)
		}
	}
	byTime := func(a, b Transaction) int { return a.Time.Compare(b.Time) }
	slices.SortStableFunc(outs, byTime)
	slices.SortStableFunc(ins, byTime)

	matched := []TransferPair{}
	usedIns := make(map[string]bool)
	var unmatchedOuts []Transaction

	for _, out := range outs {
		best := -1
		bestDays := maxTransferDays + 1
		for i, in := range ins {
			if usedIns[in.ID] || in.Exchange == out.Exchange {
				continue
			}
			if out.Quantity.Sub(in.Quantity).Abs().GreaterThan(transferTolerance) {
				continue
			}
			if in.Time.Before(out.Time) {
				continue
			}
			if days := daysBetween(out.Time, in.Time); days < bestDays {
				best, bestDays = i, days
			}
		}
		if best < 0 {
			unmatchedOuts = append(unmatchedOuts, out)
			continue
		}
		usedIns[ins[best].ID] = true
		matched = append(matched, TransferPair{
			TransferOut: out,
			TransferIn:  ins[best],
			Quantity:    out.Quantity,
			DaysBetween: bestDays,
		})
	}

	var unmatchedIns []Transaction
	for _, in := range ins {
		if !usedIns[in.ID] {
			unmatchedIns = append(unmatchedIns, in)
		}
	}

	balances := exchangeBalances(transactions)

	var suggested []string
	for _, b := range balances {
		if b.NetBalance.LessThan(transferTolerance.Neg()) {
			suggested = append(suggested, fmt.Sprintf(
				"%s: balance is negative (%s BTC), buy or transfer-in history may be missing",
				b.Exchange, b.NetBalance.BTCString()))
		}
	}
	if len(unmatchedOuts) > 0 {
		suggested = append(suggested, fmt.Sprintf(
			"%d unmatched outgoing transfers from %s, check destination exchanges for missing imports",
			len(unmatchedOuts), exchangeList(unmatchedOuts)))
	}
	if len(unmatchedIns) > 0 {
		suggested = append(suggested, fmt.Sprintf(
			"%d unmatched incoming transfers to %s, check source exchanges for missing exports",
			len(unmatchedIns), exchangeList(unmatchedIns)))
	}

	return ReconciliationResult{
		MatchedTransfers:      matched,
		UnmatchedTransferOuts: unmatchedOuts,
		UnmatchedTransferIns:  unmatchedIns,
		ExchangeBalances:      balances,
		SuggestedMissing:      suggested,
	}
}

// exchangeBalances aggregates per-exchange in/out flows over the whole
// history, sorted by exchange name.
func exchangeBalances(transactions []Transaction) []ExchangeBalance {
	index := make(map[string]*ExchangeBalance)
	for _, tx := range transactions {
		b := index[tx.Exchange]
		if b == nil {
			b = &ExchangeBalance{Exchange: tx.Exchange}
			index[tx.Exchange] = b
		}
		switch tx.Type {
		case TxBuy, TxTransferIn:
			b.TotalIn = b.TotalIn.Add(tx.Quantity)
		case TxSell, TxTransferOut:
			b.TotalOut = b.TotalOut.Add(tx.Quantity)
		}
	}

	out := make([]ExchangeBalance, 0, len(index))
	for _, b := range index {
		b.NetBalance = b.TotalIn.Sub(b.TotalOut)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Exchange < out[j].Exchange })
	return out
}

// exchangeList renders the distinct exchanges of some transactions, in
// first-seen order.
func exchangeList(txs []Transaction) string {
	seen := make(map[string]bool)
	var names []string
	for _, tx := range txs {
		if !seen[tx.Exchange] {
			seen[tx.Exchange] = true
			names = append(names, tx.Exchange)
		}
	}
	return strings.Join(names, ", ")
}
