package sovereigntax

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TxType is a typed string identifying the kind of economic event a
// transaction records.
type TxType string

const (
	TxBuy         TxType = "buy"
	TxSell        TxType = "sell"
	TxTransferIn  TxType = "transfer-in"
	TxTransferOut TxType = "transfer-out"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(s); t {
	case TxBuy, TxSell, TxTransferIn, TxTransferOut:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// IsTransfer reports whether the type is a non-taxable movement between
// exchanges or wallets.
func (t TxType) IsTransfer() bool { return t == TxTransferIn || t == TxTransferOut }

// IncomeType tags a buy that represents income rather than a purchase.
type IncomeType string

const (
	IncomeMining  IncomeType = "mining"
	IncomeStaking IncomeType = "staking"
	IncomeAirdrop IncomeType = "airdrop"
)

// Transaction is an immutable economic event supplied by an import or entry
// collaborator. The engine reads it, never mutates it.
//
// Total is the fee-adjusted USD value, prepared at ingestion: a buy's fee is
// added to its cost, a sell's fee is subtracted from its proceeds. The
// engine never re-derives that adjustment.
type Transaction struct {
	ID       string     `json:"id,omitempty"`
	Time     time.Time  `json:"time"`
	Type     TxType     `json:"type"`
	Quantity Quantity   `json:"quantity"`
	Price    Money      `json:"price"`
	Total    Money      `json:"total"`
	Fee      Money      `json:"fee,omitempty"`
	Exchange string     `json:"exchange"`
	Wallet   string     `json:"wallet,omitempty"`
	Income   IncomeType `json:"income,omitempty"`
	Memo     string     `json:"memo,omitempty"`
}

func newTransaction(typ TxType, at time.Time, exchange string, quantity Quantity, price, total Money) Transaction {
	if total.IsZero() && !price.IsZero() {
		total = price.Mul(quantity)
	}
	return Transaction{
		ID:       uuid.NewString(),
		Time:     at,
		Type:     typ,
		Quantity: quantity,
		Price:    price,
		Total:    total,
		Exchange: exchange,
	}
}

// NewBuy creates a buy of quantity BTC at a per-unit price. A zero total is
// resolved to quantity times price; pass a non-zero total when a fee was
// folded in at ingestion.
func NewBuy(at time.Time, exchange string, quantity Quantity, price, total Money) Transaction {
	return newTransaction(TxBuy, at, exchange, quantity, price, total)
}

// NewSell creates a sale of quantity BTC at a per-unit price. A zero total
// is resolved to quantity times price; pass a non-zero total when a fee was
// deducted from the proceeds at ingestion.
func NewSell(at time.Time, exchange string, quantity Quantity, price, total Money) Transaction {
	return newTransaction(TxSell, at, exchange, quantity, price, total)
}

// NewTransferOut creates an outgoing transfer leg from an exchange.
func NewTransferOut(at time.Time, exchange string, quantity Quantity) Transaction {
	return newTransaction(TxTransferOut, at, exchange, quantity, Money{}, Money{})
}

// NewTransferIn creates an incoming transfer leg to an exchange.
func NewTransferIn(at time.Time, exchange string, quantity Quantity) Transaction {
	return newTransaction(TxTransferIn, at, exchange, quantity, Money{}, Money{})
}

// WalletKey returns the wallet identity used for per-wallet cost basis
// tracking, defaulting to the exchange when no wallet label is present.
func (t Transaction) WalletKey() string {
	if t.Wallet != "" {
		return t.Wallet
	}
	return t.Exchange
}

// Year returns the UTC tax year the transaction falls in.
func (t Transaction) Year() int { return t.Time.UTC().Year() }

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Time.Equal(o.Time) &&
		t.Type == o.Type &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Total.Equal(o.Total) &&
		t.Fee.Equal(o.Fee) &&
		t.Exchange == o.Exchange &&
		t.Wallet == o.Wallet &&
		t.Income == o.Income &&
		t.Memo == o.Memo
}

// Validate checks the transaction for caller-contract violations. The
// engine tolerates inconsistent histories (it degrades with warnings), so
// only structurally unusable records are rejected here.
func (t Transaction) Validate() error {
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if t.Time.IsZero() {
		return errors.New("transaction timestamp is missing")
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	if t.Exchange == "" {
		return errors.New("transaction exchange is missing")
	}
	if t.Income != "" && t.Type != TxBuy {
		return fmt.Errorf("income tag %q is only valid on a buy", t.Income)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the key order canonical for the JSONL ledger format.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("time", t.Time.UTC().Format(time.RFC3339))
	w.Append("quantity", t.Quantity)
	w.Optional("price", t.Price)
	w.Optional("total", t.Total)
	w.Optional("fee", t.Fee)
	w.Append("exchange", t.Exchange)
	w.Optional("wallet", t.Wallet)
	w.Optional("income", string(t.Income))
	w.Optional("memo", t.Memo)
	w.Optional("id", t.ID)
	return w.MarshalJSON()
}
