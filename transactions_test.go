package sovereigntax

import (
	"strings"
	"testing"
	"time"
)

func TestNewBuyDerivesTotal(t *testing.T) {
	tx := NewBuy(day("2023-01-10"), "Kraken", Q(0.5), M(17_000), M(0))
	if !tx.Total.Equal(M(8_500)) {
		t.Errorf("Total = %s, want $8,500.00", tx.Total)
	}

	// An explicit total wins over the derived one.
	tx = NewBuy(day("2023-01-10"), "Kraken", Q(0.5), M(17_000), M(8_600))
	if !tx.Total.Equal(M(8_600)) {
		t.Errorf("Total = %s, want $8,600.00", tx.Total)
	}
}

func TestTransferLegsCarryNoValue(t *testing.T) {
	tx := NewTransferOut(day("2023-03-01"), "Coinbase", Q(0.5))
	if !tx.Price.IsZero() || !tx.Total.IsZero() {
		t.Errorf("transfer leg carries value: price %s, total %s", tx.Price, tx.Total)
	}
	if !tx.Type.IsTransfer() {
		t.Error("IsTransfer = false")
	}
}

func TestWalletKey(t *testing.T) {
	tx := NewBuy(day("2023-01-10"), "Kraken", Q(1), M(17_000), M(0))
	if got := tx.WalletKey(); got != "Kraken" {
		t.Errorf("WalletKey = %q, want the exchange", got)
	}
	tx.Wallet = "cold-storage"
	if got := tx.WalletKey(); got != "cold-storage" {
		t.Errorf("WalletKey = %q, want the wallet label", got)
	}
}

func TestValidate(t *testing.T) {
	valid := NewBuy(day("2023-01-10"), "Kraken", Q(1), M(17_000), M(0))
	if err := valid.Validate(); err != nil {
		t.Errorf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"unknown type", func(tx *Transaction) { tx.Type = "short" }},
		{"zero time", func(tx *Transaction) { tx.Time = time.Time{} }},
		{"zero quantity", func(tx *Transaction) { tx.Quantity = Q(0) }},
		{"negative quantity", func(tx *Transaction) { tx.Quantity = Q(-1) }},
		{"missing exchange", func(tx *Transaction) { tx.Exchange = "" }},
		{"income on a sell", func(tx *Transaction) { tx.Type = TxSell; tx.Income = IncomeMining }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Error("invalid transaction accepted")
			}
		})
	}
}

func TestTransactionMarshalKeyOrder(t *testing.T) {
	tx := NewBuy(day("2023-01-10"), "Kraken", Q(0.5), M(17_000), M(0))
	tx.ID = "tx-1"
	tx.Wallet = "cold-storage"

	data, err := tx.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := `{"type":"buy","time":"2023-01-10T00:00:00Z","quantity":0.5,"price":17000,"total":8500,"exchange":"Kraken","wallet":"cold-storage","id":"tx-1"}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestTransferMarshalOmitsZeroValues(t *testing.T) {
	tx := NewTransferOut(day("2023-03-01"), "Coinbase", Q(0.5))
	tx.ID = "tx-2"

	data, err := tx.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, key := range []string{`"price"`, `"total"`, `"fee"`} {
		if strings.Contains(got, key) {
			t.Errorf("marshal of a transfer leg contains %s: %s", key, got)
		}
	}
}
