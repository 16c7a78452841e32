package sovereigntax

import (
	"time"

	"github.com/google/uuid"
)

// Lot is a batch of acquired-but-not-fully-disposed inventory. One lot is
// created per buy during ledger replay; later sales consume it in whole or
// part by decreasing Remaining. Lots are never deleted: a lot with zero
// Remaining simply stops being eligible for matching.
//
// Remaining is the only mutable field and the invariant
// 0 <= Remaining <= Quantity holds at all times.
type Lot struct {
	ID           string
	PurchaseDate time.Time
	Quantity     Quantity // originally acquired
	Remaining    Quantity
	Price        Money // per-unit cost basis at acquisition
	Cost         Money // total cost, fee already folded in at ingestion
	Fee          Money
	Exchange     string
	Wallet       string
}

// newLot opens a lot from a buy transaction. The transaction's total is
// taken as-is for the lot cost; fee adjustments happened upstream.
//
// The lot inherits the buy's id: exactly one lot exists per buy, and a
// stable id is what lets Specific Identification selections reference lots
// across recomputations.
func newLot(tx Transaction) *Lot {
	id := tx.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Lot{
		ID:           id,
		PurchaseDate: tx.Time,
		Quantity:     tx.Quantity,
		Remaining:    tx.Quantity,
		Price:        tx.Price,
		Cost:         tx.Total,
		Fee:          tx.Fee,
		Exchange:     tx.Exchange,
		Wallet:       tx.WalletKey(),
	}
}

// WalletKey returns the wallet identity of the lot, defaulting to its
// exchange.
func (l *Lot) WalletKey() string {
	if l.Wallet != "" {
		return l.Wallet
	}
	return l.Exchange
}

// Open reports whether the lot still has inventory to match against.
func (l *Lot) Open() bool { return l.Remaining.IsPositive() }

// LotDetail records a single lot's contribution to one sale. It freezes the
// lot's per-unit cost basis at match time and is never mutated afterwards.
type LotDetail struct {
	ID           string
	PurchaseDate time.Time
	Quantity     Quantity // consumed from the lot
	CostPerUnit  Money
	Cost         Money
	DaysHeld     int
	IsLongTerm   bool
	Exchange     string
	Wallet       string
}

// SaleRecord is the outcome of matching one sell transaction against one or
// more lots. Immutable once produced.
//
// Quantity reflects only the BTC actually matched, which may be less than
// the sell requested when inventory ran short; callers treat an under-filled
// sale as a data-quality warning. HoldingDays is the floored mean of the
// per-lot holding periods and is for display only; the authoritative
// short/long split lives in LotDetails. A sale drawing from both short- and
// long-term lots has IsMixedTerm set and IsLongTerm conservatively false.
type SaleRecord struct {
	ID          string
	SaleDate    time.Time
	Quantity    Quantity
	Price       Money // per-unit sale price
	Proceeds    Money // fee-adjusted total
	CostBasis   Money
	GainLoss    Money
	Fee         Money
	LotDetails  []LotDetail
	HoldingDays int
	IsLongTerm  bool
	IsMixedTerm bool
	Method      AccountingMethod
}

// LotBook owns a collection of lots for the duration of a calculation. The
// sale matcher mutates lot balances through the book it is handed, so there
// are two distinct entry points: Calculate builds and owns a fresh book
// (committed path), and SimulateSale works on a Clone (preview path).
// Misuse is a compile-time concern, not a flag.
type LotBook struct {
	lots []*Lot
}

// NewLotBook returns an empty lot book.
func NewLotBook() *LotBook {
	return &LotBook{}
}

// Add appends a lot to the book. Replay appends in chronological order,
// which is what FIFO tie-breaking for same-timestamp buys relies on.
func (b *LotBook) Add(lots ...*Lot) {
	b.lots = append(b.lots, lots...)
}

// Len returns the number of lots ever opened, including fully consumed ones.
func (b *LotBook) Len() int { return len(b.lots) }

// Lots returns the book's lots in acquisition order. The slice is a copy but
// the lots are shared; callers must not mutate them.
func (b *LotBook) Lots() []*Lot {
	out := make([]*Lot, len(b.lots))
	copy(out, b.lots)
	return out
}

// Clone deep-copies the book so a simulated sale can consume balances
// without touching the live lots.
func (b *LotBook) Clone() *LotBook {
	clone := &LotBook{lots: make([]*Lot, len(b.lots))}
	for i, l := range b.lots {
		copied := *l
		clone.lots[i] = &copied
	}
	return clone
}

// find returns the lot with the given id, or nil.
func (b *LotBook) find(id string) *Lot {
	for _, l := range b.lots {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// open returns the lots still holding inventory, restricted to a wallet
// identity when one is given.
func (b *LotBook) open(wallet string) []*Lot {
	var out []*Lot
	for _, l := range b.lots {
		if !l.Open() {
			continue
		}
		if wallet != "" && l.WalletKey() != wallet {
			continue
		}
		out = append(out, l)
	}
	return out
}

// TotalRemaining sums the remaining balance across all lots.
func (b *LotBook) TotalRemaining() Quantity {
	var total Quantity
	for _, l := range b.lots {
		total = total.Add(l.Remaining)
	}
	return total
}

// TotalAcquired sums the originally acquired balance across all lots.
func (b *LotBook) TotalAcquired() Quantity {
	var total Quantity
	for _, l := range b.lots {
		total = total.Add(l.Quantity)
	}
	return total
}

// CalculationResult is the outcome of one full replay of the transaction
// history: the final lot state, the sale records in production order, and
// any diagnostic warnings. It is recomputed in full on every invocation; it
// is a pure function of (transactions, method), not an incrementally
// maintained structure.
type CalculationResult struct {
	Lots     *LotBook
	Sales    []SaleRecord
	Warnings []string
}

func newLotDetail(l *Lot, consumed Quantity, saleTime time.Time) LotDetail {
	return LotDetail{
		ID:           uuid.NewString(),
		PurchaseDate: l.PurchaseDate,
		Quantity:     consumed,
		CostPerUnit:  l.Price,
		Cost:         l.Price.Mul(consumed),
		DaysHeld:     daysBetween(l.PurchaseDate, saleTime),
		IsLongTerm:   isLongTermHolding(l.PurchaseDate, saleTime),
		Exchange:     l.Exchange,
		Wallet:       l.Wallet,
	}
}
