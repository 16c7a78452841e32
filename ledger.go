package sovereigntax

import (
	"iter"
	"sort"
)

// Ledger holds the full transaction history. It is the input boundary of
// the engine: import, manual entry and persistence collaborators append to
// it, calculations read it.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds transactions to the ledger in entry order. Call stableSort
// (or rely on DecodeLedger) before replaying; the engine sorts its own copy
// anyway, so an unsorted ledger is never wrong, just unordered for display.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the ledger's transactions. The copy keeps
// callers from mutating ledger order while the slice is being replayed.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Exchanges iterates over the distinct exchange labels in first-seen order.
func (l *Ledger) Exchanges() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool)
		for _, tx := range l.transactions {
			if seen[tx.Exchange] {
				continue
			}
			seen[tx.Exchange] = true
			if !yield(tx.Exchange) {
				return
			}
		}
	}
}

// stableSort orders transactions by ascending timestamp. The sort is
// stable: same-instant transactions keep their insertion order, which is
// what makes FIFO/LIFO tie-breaking deterministic for same-timestamp buys.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
}

// Similar finds transactions that look like duplicates of a candidate
// entry: same type, same UTC calendar day, and quantity within 5%. Entry
// collaborators surface these before appending.
func (l *Ledger) Similar(candidate Transaction) []Transaction {
	day := dateOf(candidate.Time)
	var out []Transaction
	for _, tx := range l.transactions {
		if tx.Type != candidate.Type || !dateOf(tx.Time).Equal(day) {
			continue
		}
		if tx.Quantity.IsZero() && candidate.Quantity.IsZero() {
			out = append(out, tx)
			continue
		}
		larger := tx.Quantity.Abs()
		if candidate.Quantity.Abs().GreaterThan(larger) {
			larger = candidate.Quantity.Abs()
		}
		ratio := tx.Quantity.Sub(candidate.Quantity).Abs().Div(larger)
		if ratio.LessThan(Q(0.05)) {
			out = append(out, tx)
		}
	}
	return out
}
