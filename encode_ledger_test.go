package sovereigntax

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	input := `{"type":"sell","time":"2023-06-01T00:00:00Z","quantity":0.5,"price":30000,"total":15000,"exchange":"Kraken","id":"s1"}

{"type":"buy","time":"2023-01-10T00:00:00Z","quantity":1,"price":17000,"total":17000,"exchange":"Kraken"}
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (empty line skipped)", ledger.Len())
	}

	txs := ledger.Transactions()
	if txs[0].Type != TxBuy {
		t.Error("decoded ledger is not date-sorted")
	}
	if txs[0].ID == "" {
		t.Error("hand-written line did not get an id assigned")
	}
	if txs[1].ID != "s1" {
		t.Errorf("id = %q, want the one from the file", txs[1].ID)
	}
}

func TestDecodeLedgerReportsLineNumbers(t *testing.T) {
	input := `{"type":"buy","time":"2023-01-10T00:00:00Z","quantity":1,"price":17000,"total":17000,"exchange":"Kraken"}
{"type":"hold","time":"2023-01-11T00:00:00Z","quantity":1,"exchange":"Kraken"}
`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want a line 2 error", err)
	}
}

func TestEncodeLedgerRoundTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewSell(day("2023-06-01"), "Kraken", Q(0.5), M(30_000), M(0)),
		NewBuy(day("2023-01-10"), "Kraken", Q(1), M(17_000), M(0)),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"type":"buy"`) {
		t.Error("encoded ledger is not date-sorted")
	}
	if !strings.HasPrefix(lines[0], `{"type":`) {
		t.Errorf("line does not start with the canonical key: %s", lines[0])
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != 2 {
		t.Fatalf("round trip lost transactions: %d", decoded.Len())
	}
	for i, tx := range decoded.Transactions() {
		want := ledger.Transactions()[i]
		if !tx.Equal(want) {
			t.Errorf("transaction %d changed in round trip:\ngot  %+v\nwant %+v", i, tx, want)
		}
	}
}
