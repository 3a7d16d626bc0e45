/**
 * @description
 * The Akahu transaction model and its decode layer.
 *
 * Enrichment (merchant and category) is attached by Akahu where possible and
 * gated by app permissions, so its absence is a normal state: transactions
 * without enrichment decode with nil Merchant/Category, never with an error.
 * Category names come from the externally governed NZFCC taxonomy; a code
 * this library does not know yet decodes to an unknown-category fallback.
 */
package akahu

import (
	"encoding/json"

	"github.com/stanleykosi/akahu-go/pkg/money"
)

// TransactionKind classifies a transaction. Akahu finds the most specific
// type it can, falling back to CREDIT or DEBIT.
type TransactionKind string

const (
	TransactionKindCredit        TransactionKind = "CREDIT"
	TransactionKindDebit         TransactionKind = "DEBIT"
	TransactionKindPayment       TransactionKind = "PAYMENT"
	TransactionKindTransfer      TransactionKind = "TRANSFER"
	TransactionKindStandingOrder TransactionKind = "STANDING ORDER"
	TransactionKindEftpos        TransactionKind = "EFTPOS"
	TransactionKindInterest      TransactionKind = "INTEREST"
	TransactionKindFee           TransactionKind = "FEE"
	TransactionKindTax           TransactionKind = "TAX"
	TransactionKindCreditCard    TransactionKind = "CREDIT CARD"
	TransactionKindDirectDebit   TransactionKind = "DIRECT DEBIT"
	TransactionKindDirectCredit  TransactionKind = "DIRECT CREDIT"
	TransactionKindAtm           TransactionKind = "ATM"
	TransactionKindLoan          TransactionKind = "LOAN"
)

var transactionKinds = map[TransactionKind]struct{}{
	TransactionKindCredit:        {},
	TransactionKindDebit:         {},
	TransactionKindPayment:       {},
	TransactionKindTransfer:      {},
	TransactionKindStandingOrder: {},
	TransactionKindEftpos:        {},
	TransactionKindInterest:      {},
	TransactionKindFee:           {},
	TransactionKindTax:           {},
	TransactionKindCreditCard:    {},
	TransactionKindDirectDebit:   {},
	TransactionKindDirectCredit:  {},
	TransactionKindAtm:           {},
	TransactionKindLoan:          {},
}

// Merchant is the business party to an enriched transaction.
type Merchant struct {
	// ID is the merchant identifier, wire field "_id".
	ID MerchantID

	// Name is the merchant's trading name.
	Name string

	// Website is the merchant's website, when known.
	Website *string
}

type merchantWire struct {
	ID      *MerchantID `json:"_id"`
	Name    *string     `json:"name"`
	Website *string     `json:"website,omitempty"`
}

// UnmarshalJSON decodes a merchant; error paths are relative to the merchant
// object.
func (m *Merchant) UnmarshalJSON(data []byte) error {
	var w merchantWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("merchant", err)
	}
	if w.ID == nil {
		return missingField("_id")
	}
	if w.Name == nil {
		return missingField("name")
	}
	m.ID = *w.ID
	m.Name = *w.Name
	m.Website = w.Website
	return nil
}

// MarshalJSON re-encodes the merchant under its wire names.
func (m Merchant) MarshalJSON() ([]byte, error) {
	return json.Marshal(merchantWire{ID: &m.ID, Name: &m.Name, Website: m.Website})
}

// Transaction is a settled record of money moving through an account. The
// account relation is by identifier only; account and transaction lifecycles
// are independent.
type Transaction struct {
	// ID is the transaction identifier, wire field "_id".
	ID TransactionID

	// Account identifies the owning account, wire field "_account".
	Account AccountID

	// Connection identifies the provider the transaction came from, wire
	// field "_connection".
	Connection ConnectionID

	// CreatedAt is when Akahu first saw the transaction, unrelated to when
	// it occurred.
	CreatedAt Time

	// Date is when the transaction was posted, assigned by the source
	// system and immutable. Often accurate only to the day.
	Date Time

	// Description is the bank-provided description, whitespace-normalised.
	Description string

	// Amount is the signed amount of money moved.
	Amount money.Amount

	// Balance is the account balance immediately after this transaction,
	// when the bank provides it.
	Balance *money.Amount

	// Kind is the transaction type.
	Kind TransactionKind

	// Merchant is enrichment data; nil when the transaction is not enriched
	// or the app lacks enrichment permissions.
	Merchant *Merchant

	// Category is enrichment data; nil when the transaction is not
	// enriched.
	Category *Category
}

// Enriched reports whether the enrichment engine attached merchant or
// category data to this transaction.
func (t Transaction) Enriched() bool {
	return t.Merchant != nil || t.Category != nil
}

type transactionWire struct {
	ID          *TransactionID   `json:"_id"`
	Account     *AccountID       `json:"_account"`
	Connection  *ConnectionID    `json:"_connection"`
	CreatedAt   *Time            `json:"created_at"`
	Date        *Time            `json:"date"`
	Description *string          `json:"description"`
	Amount      *json.RawMessage `json:"amount"`
	Balance     *json.RawMessage `json:"balance,omitempty"`
	Kind        *TransactionKind `json:"type"`
	Merchant    *json.RawMessage `json:"merchant,omitempty"`
	Category    *json.RawMessage `json:"category,omitempty"`
}

// UnmarshalJSON decodes a transaction, failing with the offending field path
// on missing required fields or unknown enum members. Unknown extra fields
// are ignored.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("transaction", err)
	}
	switch {
	case w.ID == nil:
		return missingField("_id")
	case w.Account == nil:
		return missingField("_account")
	case w.Connection == nil:
		return missingField("_connection")
	case w.CreatedAt == nil:
		return missingField("created_at")
	case w.Date == nil:
		return missingField("date")
	case w.Description == nil:
		return missingField("description")
	case w.Amount == nil:
		return missingField("amount")
	case w.Kind == nil:
		return missingField("type")
	}
	if _, ok := transactionKinds[*w.Kind]; !ok {
		return &DecodeError{Field: "type", Reason: "unknown transaction type " + string(*w.Kind)}
	}
	amount, err := decodeAmount("amount", *w.Amount)
	if err != nil {
		return err
	}
	balance, err := decodeOptionalAmount("balance", w.Balance)
	if err != nil {
		return err
	}
	var merchant *Merchant
	if w.Merchant != nil {
		merchant = new(Merchant)
		if err := json.Unmarshal(*w.Merchant, merchant); err != nil {
			return nestField("merchant", err)
		}
	}
	var category *Category
	if w.Category != nil {
		category = new(Category)
		if err := json.Unmarshal(*w.Category, category); err != nil {
			return nestField("category", err)
		}
	}

	t.ID = *w.ID
	t.Account = *w.Account
	t.Connection = *w.Connection
	t.CreatedAt = *w.CreatedAt
	t.Date = *w.Date
	t.Description = *w.Description
	t.Amount = amount
	t.Balance = balance
	t.Kind = *w.Kind
	t.Merchant = merchant
	t.Category = category
	return nil
}

// MarshalJSON re-encodes the transaction under its wire field names,
// emitting only the fields that were present on decode.
func (t Transaction) MarshalJSON() ([]byte, error) {
	amount, err := json.Marshal(t.Amount)
	if err != nil {
		return nil, err
	}
	rawAmount := json.RawMessage(amount)
	w := transactionWire{
		ID:          &t.ID,
		Account:     &t.Account,
		Connection:  &t.Connection,
		CreatedAt:   &t.CreatedAt,
		Date:        &t.Date,
		Description: &t.Description,
		Amount:      &rawAmount,
		Kind:        &t.Kind,
	}
	if t.Merchant != nil {
		encoded, err := json.Marshal(*t.Merchant)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Merchant = &raw
	}
	if t.Balance != nil {
		encoded, err := json.Marshal(*t.Balance)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Balance = &raw
	}
	if t.Category != nil {
		encoded, err := json.Marshal(*t.Category)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Category = &raw
	}
	return json.Marshal(w)
}

// PendingTransaction is a transaction that has not yet settled. Pending
// records are unstable: the bank may still change the date or description,
// no unique identifier is assigned, and no enrichment is attached.
type PendingTransaction struct {
	Account     AccountID
	Connection  ConnectionID
	UpdatedAt   Time
	Date        Time
	Description string
	Amount      money.Amount
	Kind        TransactionKind
}

type pendingTransactionWire struct {
	Account     *AccountID       `json:"_account"`
	Connection  *ConnectionID    `json:"_connection"`
	UpdatedAt   *Time            `json:"updated_at"`
	Date        *Time            `json:"date"`
	Description *string          `json:"description"`
	Amount      *json.RawMessage `json:"amount"`
	Kind        *TransactionKind `json:"type"`
}

// UnmarshalJSON decodes a pending transaction under the same policy as
// settled ones.
func (p *PendingTransaction) UnmarshalJSON(data []byte) error {
	var w pendingTransactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("pending transaction", err)
	}
	switch {
	case w.Account == nil:
		return missingField("_account")
	case w.Connection == nil:
		return missingField("_connection")
	case w.UpdatedAt == nil:
		return missingField("updated_at")
	case w.Date == nil:
		return missingField("date")
	case w.Description == nil:
		return missingField("description")
	case w.Amount == nil:
		return missingField("amount")
	case w.Kind == nil:
		return missingField("type")
	}
	if _, ok := transactionKinds[*w.Kind]; !ok {
		return &DecodeError{Field: "type", Reason: "unknown transaction type " + string(*w.Kind)}
	}
	amount, err := decodeAmount("amount", *w.Amount)
	if err != nil {
		return err
	}
	p.Account = *w.Account
	p.Connection = *w.Connection
	p.UpdatedAt = *w.UpdatedAt
	p.Date = *w.Date
	p.Description = *w.Description
	p.Amount = amount
	p.Kind = *w.Kind
	return nil
}

// MarshalJSON re-encodes the pending transaction under its wire names.
func (p PendingTransaction) MarshalJSON() ([]byte, error) {
	amount, err := json.Marshal(p.Amount)
	if err != nil {
		return nil, err
	}
	raw := json.RawMessage(amount)
	return json.Marshal(pendingTransactionWire{
		Account:     &p.Account,
		Connection:  &p.Connection,
		UpdatedAt:   &p.UpdatedAt,
		Date:        &p.Date,
		Description: &p.Description,
		Amount:      &raw,
		Kind:        &p.Kind,
	})
}
