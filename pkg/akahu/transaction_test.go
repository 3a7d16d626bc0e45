package akahu

import (
	"encoding/json"
	"testing"
)

const transactionFixture = `{
	"_id": "trans_3333333333333333333333333",
	"_account": "acc_1111111111111111111111111",
	"_connection": "conn_4444444444444444444444444",
	"created_at": "2025-05-02T21:10:49.123Z",
	"date": "2025-05-02T00:00:00.000Z",
	"description": "COUNTDOWN AUCKLAND",
	"amount": -123.456789,
	"balance": 962.29,
	"type": "EFTPOS",
	"merchant": {"_id": "merchant_5555555555555555555555555", "name": "Countdown"},
	"category": {
		"_id": "nzfcc_6666666666666666666666666",
		"name": "Supermarkets and grocery stores",
		"groups": {"personal_finance": {"_id": "group_abc", "name": "Food"}}
	}
}`

func TestTransactionDecodesEnrichedFixture(t *testing.T) {
	var tx Transaction
	if err := json.Unmarshal([]byte(transactionFixture), &tx); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}

	if tx.ID != "trans_3333333333333333333333333" {
		t.Fatalf("unexpected id %q", tx.ID)
	}
	if tx.Account != "acc_1111111111111111111111111" {
		t.Fatalf("unexpected account %q", tx.Account)
	}
	if tx.Kind != TransactionKindEftpos {
		t.Fatalf("unexpected kind %q", tx.Kind)
	}
	if tx.Amount.String() != "-123.456789" {
		t.Fatalf("expected the amount literal preserved, got %q", tx.Amount.String())
	}
	if tx.Balance == nil || tx.Balance.String() != "962.29" {
		t.Fatalf("unexpected balance %v", tx.Balance)
	}
	if !tx.Enriched() {
		t.Fatal("expected an enriched transaction")
	}
	if tx.Merchant == nil || tx.Merchant.Name != "Countdown" {
		t.Fatalf("unexpected merchant %v", tx.Merchant)
	}
	if tx.Category == nil || !tx.Category.Name.Known() {
		t.Fatal("expected a known category name")
	}
	pf := tx.Category.Groups.PersonalFinance
	if pf == nil || pf.Name.String() != "Food" || !pf.Name.Known() {
		t.Fatalf("unexpected personal finance group %v", pf)
	}
}

func TestTransactionRoundTripsEnrichedFixture(t *testing.T) {
	var tx Transaction
	assertRoundTrip(t, transactionFixture, &tx)
}

func TestTransactionWithoutEnrichmentDecodes(t *testing.T) {
	input := `{
		"_id": "trans_1",
		"_account": "acc_1",
		"_connection": "conn_1",
		"created_at": "2025-05-02T21:10:49.123Z",
		"date": "2025-05-02T00:00:00.000Z",
		"description": "SALARY",
		"amount": 4200.00,
		"type": "DIRECT CREDIT"
	}`
	var tx Transaction
	assertRoundTrip(t, input, &tx)

	if tx.Enriched() {
		t.Fatal("expected no enrichment")
	}
	if tx.Merchant != nil || tx.Category != nil {
		t.Fatal("expected merchant and category to stay nil")
	}
	if tx.Balance != nil {
		t.Fatal("expected the absent balance to stay nil")
	}
	if tx.Kind != TransactionKindDirectCredit {
		t.Fatalf("unexpected kind %q", tx.Kind)
	}
}

func TestTransactionUnknownCategoryFallsBack(t *testing.T) {
	input := `{
		"_id": "trans_1",
		"_account": "acc_1",
		"_connection": "conn_1",
		"created_at": "2025-05-02T21:10:49.123Z",
		"date": "2025-05-02T00:00:00.000Z",
		"description": "MYSTERY SHOP",
		"amount": -5,
		"type": "EFTPOS",
		"category": {"_id": "nzfcc_9", "name": "Quantum groceries"}
	}`
	var tx Transaction
	assertRoundTrip(t, input, &tx)

	if tx.Category == nil {
		t.Fatal("expected the category attached")
	}
	if tx.Category.Name.Known() {
		t.Fatal("expected an unpublished category name to be unknown")
	}
	if tx.Category.Name.String() != "Quantum groceries" {
		t.Fatalf("expected the raw name preserved, got %q", tx.Category.Name.String())
	}
}

func TestMerchantRequiredFieldErrors(t *testing.T) {
	base := `{"_id":"trans_1","_account":"acc_1","_connection":"conn_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","description":"X","amount":1,"type":"EFTPOS"`

	var tx Transaction
	err := json.Unmarshal([]byte(base+`,"merchant":{"website":"https://x.test"}}`), &tx)
	assertDecodeError(t, err, "merchant._id")

	err = json.Unmarshal([]byte(base+`,"merchant":{"_id":"merchant_1"}}`), &tx)
	assertDecodeError(t, err, "merchant.name")

	var merchant Merchant
	err = json.Unmarshal([]byte(`{"name":"Countdown"}`), &merchant)
	assertDecodeError(t, err, "_id")
}

func TestMerchantRoundTripsWithWebsite(t *testing.T) {
	input := `{"_id": "merchant_1", "name": "Countdown", "website": "https://countdown.example.test"}`
	var merchant Merchant
	assertRoundTrip(t, input, &merchant)

	if merchant.ID != "merchant_1" || merchant.Name != "Countdown" {
		t.Fatalf("unexpected merchant %+v", merchant)
	}
	if merchant.Website == nil || *merchant.Website != "https://countdown.example.test" {
		t.Fatalf("unexpected website %v", merchant.Website)
	}
}

func TestTransactionRequiredFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "missing description",
			input: `{"_id":"trans_1","_account":"acc_1","_connection":"conn_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","amount":1,"type":"CREDIT"}`,
			field: "description",
		},
		{
			name:  "missing amount",
			input: `{"_id":"trans_1","_account":"acc_1","_connection":"conn_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","description":"X","type":"CREDIT"}`,
			field: "amount",
		},
		{
			name:  "missing connection",
			input: `{"_id":"trans_1","_account":"acc_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","description":"X","amount":1,"type":"CREDIT"}`,
			field: "_connection",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tx Transaction
			err := json.Unmarshal([]byte(tt.input), &tx)
			assertDecodeError(t, err, tt.field)
		})
	}
}

func TestTransactionRejectsUnknownKind(t *testing.T) {
	input := `{"_id":"trans_1","_account":"acc_1","_connection":"conn_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","description":"X","amount":1,"type":"BARTER"}`
	var tx Transaction
	err := json.Unmarshal([]byte(input), &tx)
	assertDecodeError(t, err, "type")
}

func TestTransactionAcceptsSpacedKinds(t *testing.T) {
	for _, kind := range []string{"STANDING ORDER", "CREDIT CARD", "DIRECT DEBIT", "DIRECT CREDIT"} {
		input := `{"_id":"trans_1","_account":"acc_1","_connection":"conn_1","created_at":"2025-05-02T21:10:49.123Z","date":"2025-05-02T00:00:00.000Z","description":"X","amount":1,"type":"` + kind + `"}`
		var tx Transaction
		if err := json.Unmarshal([]byte(input), &tx); err != nil {
			t.Fatalf("expected type %q accepted, got %v", kind, err)
		}
		if string(tx.Kind) != kind {
			t.Fatalf("expected kind %q, got %q", kind, tx.Kind)
		}
	}
}

func TestPendingTransactionDecodes(t *testing.T) {
	input := `{
		"_account": "acc_1",
		"_connection": "conn_1",
		"updated_at": "2025-05-03T08:00:00.000Z",
		"date": "2025-05-03T00:00:00.000Z",
		"description": "CARD HOLD",
		"amount": -42.00,
		"type": "DEBIT"
	}`
	var pending PendingTransaction
	assertRoundTrip(t, input, &pending)

	if pending.Account != "acc_1" {
		t.Fatalf("unexpected account %q", pending.Account)
	}
	if pending.Amount.String() != "-42.00" {
		t.Fatalf("unexpected amount %q", pending.Amount.String())
	}
}

func TestPendingTransactionRequiresUpdatedAt(t *testing.T) {
	input := `{"_account":"acc_1","_connection":"conn_1","date":"2025-05-03T00:00:00.000Z","description":"X","amount":1,"type":"DEBIT"}`
	var pending PendingTransaction
	err := json.Unmarshal([]byte(input), &pending)
	assertDecodeError(t, err, "updated_at")
}
