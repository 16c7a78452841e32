package sovereigntax

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// LotSelection designates a lot and an amount to draw from it, for the
// Specific Identification method. Selections come from a lot-picker
// collaborator and are consumed in the order given.
type LotSelection struct {
	LotID    string
	Quantity Quantity
}

// Calculate replays a transaction history into lots and sale records under
// the given accounting method. The history may arrive in any order; it is
// stable-sorted by timestamp before the single replay pass. Buys open lots,
// sells are matched against the book, transfers are non-taxable and skipped.
//
// The whole result is recomputed on every call. Callers needing
// responsiveness memoize on (transactions, method).
func Calculate(transactions []Transaction, method AccountingMethod) CalculationResult {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Time.Compare(b.Time)
	})

	book := NewLotBook()
	sales := []SaleRecord{}
	warnings := []string{}

	for _, tx := range sorted {
		switch tx.Type {
		case TxBuy:
			book.Add(newLot(tx))
		case TxSell:
			sale := matchSale(tx, book, method, nil, &warnings)
			if sale == nil {
				warnings = append(warnings, fmt.Sprintf("no lots available for sale on %s",
					tx.Time.Format(displayDateFormat)))
				continue
			}
			sales = append(sales, *sale)
		case TxTransferIn, TxTransferOut:
			// Non-taxable movement, reconciliation reads these separately.
		}
	}

	return CalculationResult{Lots: book, Sales: sales, Warnings: warnings}
}

// SimulateSale previews a sale of quantity BTC at a per-unit price against
// the current lot state, without committing anything: the match runs on a
// deep copy of the book, so the live lots keep their balances. The synthetic
// sale is stamped at, or at the current time when at is zero, and carries
// the given wallet identity for per-wallet enforcement (empty means no
// wallet restriction applies and the sale draws from the whole pool).
func SimulateSale(quantity Quantity, price Money, book *LotBook, method AccountingMethod, selections []LotSelection, wallet string, at time.Time) *SaleRecord {
	if at.IsZero() {
		at = time.Now()
	}
	exchange := wallet
	if exchange == "" {
		exchange = "Simulation"
	}
	sale := Transaction{
		ID:       uuid.NewString(),
		Time:     at,
		Type:     TxSell,
		Quantity: quantity,
		Price:    price,
		Total:    price.Mul(quantity),
		Exchange: exchange,
		Wallet:   wallet,
	}
	return matchSale(sale, book.Clone(), method, selections, nil)
}

// matchSale matches one sell against the book, mutating the consumed lots'
// remaining balances. It returns nil only when the sale amount is not
// positive or no lot holds inventory. Warnings (wallet fallback, method
// fallback) are appended through warnings when it is non-nil.
//
// Lots are first restricted to the sale's wallet identity. When the wallet
// holds nothing, the matcher falls back to the full pool rather than
// failing the sale: cost basis must be tracked per account, but an
// imprecise result beats none when import data is incomplete.
func matchSale(sale Transaction, book *LotBook, method AccountingMethod, selections []LotSelection, warnings *[]string) *SaleRecord {
	if !sale.Quantity.IsPositive() {
		return nil
	}

	eligible := book.open(sale.WalletKey())
	if len(eligible) == 0 {
		eligible = book.open("")
		if len(eligible) > 0 {
			warn(warnings, "no lots found in wallet %q for sale on %s, falling back to the global lot pool",
				sale.WalletKey(), sale.Time.Format(displayDateFormat))
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	remaining := sale.Quantity
	var costBasis Money
	var details []LotDetail

	consume := func(l *Lot, quantity Quantity) {
		detail := newLotDetail(l, quantity, sale.Time)
		costBasis = costBasis.Add(detail.Cost)
		details = append(details, detail)
		l.Remaining = l.Remaining.Sub(quantity)
		remaining = remaining.Sub(quantity)
	}

	if method == SpecificID && len(selections) > 0 {
		// Selections designate lots directly and may cross wallets; the
		// picker collaborator already showed the user where each lot lives.
		for _, sel := range selections {
			if !remaining.IsPositive() {
				break
			}
			l := book.find(sel.LotID)
			if l == nil || !l.Open() {
				continue
			}
			consume(l, sel.Quantity.Min(l.Remaining).Min(remaining))
		}
	} else {
		if method == SpecificID {
			warn(warnings, "specific identification sale on %s has no lot selections, using FIFO order",
				sale.Time.Format(displayDateFormat))
		}
		for _, l := range orderLots(eligible, method) {
			if !remaining.IsPositive() {
				break
			}
			consume(l, remaining.Min(l.Remaining))
		}
	}

	proceeds := sale.Total // fee already subtracted at ingestion

	holdingSum := 0
	hasShort, hasLong := false, false
	for _, d := range details {
		holdingSum += d.DaysHeld
		if d.IsLongTerm {
			hasLong = true
		} else {
			hasShort = true
		}
	}
	holdingDays := 0
	if len(details) > 0 {
		holdingDays = holdingSum / len(details)
	}
	mixed := hasShort && hasLong

	return &SaleRecord{
		ID:          uuid.NewString(),
		SaleDate:    sale.Time,
		Quantity:    sale.Quantity.Sub(remaining),
		Price:       sale.Price,
		Proceeds:    proceeds,
		CostBasis:   costBasis,
		GainLoss:    proceeds.Sub(costBasis),
		Fee:         sale.Fee,
		LotDetails:  details,
		HoldingDays: holdingDays,
		IsLongTerm:  hasLong && !mixed,
		IsMixedTerm: mixed,
		Method:      method,
	}
}

// orderLots returns the eligible lots in the consumption order of the
// method. The input order is acquisition order, so the date sorts are
// stable with respect to same-timestamp buys. SpecificID without
// selections has already degraded to FIFO by the time this runs.
func orderLots(eligible []*Lot, method AccountingMethod) []*Lot {
	ordered := slices.Clone(eligible)
	switch method {
	case LIFO:
		slices.SortStableFunc(ordered, func(a, b *Lot) int {
			return b.PurchaseDate.Compare(a.PurchaseDate)
		})
	case HIFO:
		slices.SortStableFunc(ordered, func(a, b *Lot) int {
			switch {
			case a.Price.GreaterThan(b.Price):
				return -1
			case b.Price.GreaterThan(a.Price):
				return 1
			}
			return 0
		})
	default: // FIFO, and SpecificID's documented fallback
		slices.SortStableFunc(ordered, func(a, b *Lot) int {
			return a.PurchaseDate.Compare(b.PurchaseDate)
		})
	}
	return ordered
}

func warn(warnings *[]string, format string, args ...any) {
	if warnings == nil {
		return
	}
	*warnings = append(*warnings, fmt.Sprintf(format, args...))
}
