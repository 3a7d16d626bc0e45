/**
 * @description
 * The Akahu account model and its decode layer.
 *
 * Wire identifiers use the API's underscore convention (_id, _authorisation);
 * each is mapped to a clean Go name by an explicit per-field rename below.
 * Decoding is defensive: required fields missing fail with the field path,
 * optional sub-objects decode to nil, monetary values keep arbitrary
 * precision, and unknown currency codes are rejected outright.
 */
package akahu

import (
	"encoding/json"

	"github.com/stanleykosi/akahu-go/pkg/money"
)

// AccountKind classifies an account. The API provides specific bank account
// types and falls back to broader ones for non-bank connections.
type AccountKind string

const (
	AccountKindChecking    AccountKind = "CHECKING"
	AccountKindSavings     AccountKind = "SAVINGS"
	AccountKindCreditCard  AccountKind = "CREDITCARD"
	AccountKindLoan        AccountKind = "LOAN"
	AccountKindKiwisaver   AccountKind = "KIWISAVER"
	AccountKindInvestment  AccountKind = "INVESTMENT"
	AccountKindTermDeposit AccountKind = "TERMDEPOSIT"
	AccountKindForeign     AccountKind = "FOREIGN"
	AccountKindTax         AccountKind = "TAX"
	AccountKindRewards     AccountKind = "REWARDS"
	AccountKindWallet      AccountKind = "WALLET"
)

var accountKinds = map[AccountKind]struct{}{
	AccountKindChecking:    {},
	AccountKindSavings:     {},
	AccountKindCreditCard:  {},
	AccountKindLoan:        {},
	AccountKindKiwisaver:   {},
	AccountKindInvestment:  {},
	AccountKindTermDeposit: {},
	AccountKindForeign:     {},
	AccountKindTax:         {},
	AccountKindRewards:     {},
	AccountKindWallet:      {},
}

// AccountStatus indicates whether Akahu can still reach the institution for
// this account. Inactive accounts keep serving cached data but stop
// refreshing until the user re-establishes the connection.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

var accountStatuses = map[AccountStatus]struct{}{
	AccountStatusActive:   {},
	AccountStatusInactive: {},
}

// AccountAttribute is an ability the account supports.
type AccountAttribute string

const (
	AttributeTransactions AccountAttribute = "TRANSACTIONS"
	AttributeTransferTo   AccountAttribute = "TRANSFER_TO"
	AttributeTransferFrom AccountAttribute = "TRANSFER_FROM"
	AttributePaymentTo    AccountAttribute = "PAYMENT_TO"
	AttributePaymentFrom  AccountAttribute = "PAYMENT_FROM"
)

var accountAttributes = map[AccountAttribute]struct{}{
	AttributeTransactions: {},
	AttributeTransferTo:   {},
	AttributeTransferFrom: {},
	AttributePaymentTo:    {},
	AttributePaymentFrom:  {},
}

// Balance is an account balance. Every amount is tied to the balance
// currency; a balance without a recognised currency does not decode.
type Balance struct {
	// Current is the present balance. Negative means money owed to the
	// issuer: an overdrawn checking account, a credit card balance, the
	// principal remaining on a loan.
	Current money.Amount

	// Available is the portion the holder can spend right now, when the
	// institution reports it.
	Available *money.Amount

	// Limit is the credit or overdraft limit, only present when supplied
	// directly by the institution.
	Limit *money.Amount

	// Overdrawn reports whether the account is in overdraft, when known.
	Overdrawn *bool

	// Currency is the ISO 4217 currency all amounts above are denominated in.
	Currency money.Currency
}

type balanceWire struct {
	Current   *json.RawMessage `json:"current"`
	Available *json.RawMessage `json:"available,omitempty"`
	Limit     *json.RawMessage `json:"limit,omitempty"`
	Overdrawn *bool            `json:"overdrawn,omitempty"`
	Currency  *json.RawMessage `json:"currency"`
}

// decodeAmount parses one monetary field, attributing failures to its path.
func decodeAmount(path string, raw json.RawMessage) (money.Amount, error) {
	var a money.Amount
	if err := json.Unmarshal(raw, &a); err != nil {
		return money.Amount{}, invalidField(path, err)
	}
	return a, nil
}

// decodeOptionalAmount is decodeAmount for fields that may be absent.
func decodeOptionalAmount(path string, raw *json.RawMessage) (*money.Amount, error) {
	if raw == nil {
		return nil, nil
	}
	a, err := decodeAmount(path, *raw)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UnmarshalJSON applies the balance decode policy; field paths in errors are
// relative to the balance object.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var w balanceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &DecodeError{Reason: "balance is not an object", Err: err}
	}
	if w.Current == nil {
		return missingField("current")
	}
	if w.Currency == nil {
		return missingField("currency")
	}
	current, err := decodeAmount("current", *w.Current)
	if err != nil {
		return err
	}
	available, err := decodeOptionalAmount("available", w.Available)
	if err != nil {
		return err
	}
	limit, err := decodeOptionalAmount("limit", w.Limit)
	if err != nil {
		return err
	}
	var cur money.Currency
	if err := json.Unmarshal(*w.Currency, &cur); err != nil {
		return invalidField("currency", err)
	}
	b.Current = current
	b.Available = available
	b.Limit = limit
	b.Overdrawn = w.Overdrawn
	b.Currency = cur
	return nil
}

// MarshalJSON re-encodes exactly the fields that were present.
func (b Balance) MarshalJSON() ([]byte, error) {
	w := balanceWire{Overdrawn: b.Overdrawn}
	current, err := json.Marshal(b.Current)
	if err != nil {
		return nil, err
	}
	raw := json.RawMessage(current)
	w.Current = &raw
	if b.Available != nil {
		encoded, err := json.Marshal(*b.Available)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Available = &raw
	}
	if b.Limit != nil {
		encoded, err := json.Marshal(*b.Limit)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Limit = &raw
	}
	cur, err := json.Marshal(b.Currency)
	if err != nil {
		return nil, err
	}
	rawCur := json.RawMessage(cur)
	w.Currency = &rawCur
	return json.Marshal(w)
}

// RefreshDetails records when Akahu last updated each slice of account data.
// Institutions refresh different parts at different rates, so every
// timestamp is optional.
type RefreshDetails struct {
	Balance      *Time `json:"balance,omitempty"`
	Meta         *Time `json:"meta,omitempty"`
	Transactions *Time `json:"transactions,omitempty"`
	Party        *Time `json:"party,omitempty"`
}

// Account is something that has a balance at a connected institution.
// Accounts are immutable snapshots constructed only by decoding an API
// response.
type Account struct {
	// ID is the account identifier, wire field "_id".
	ID AccountID

	// Authorisation groups accounts connected in a single consent flow,
	// wire field "_authorisation".
	Authorisation AuthorisationID

	// Migrated is the predecessor account's identifier, present only after
	// a migration to an official open banking connection. Wire field
	// "_migrated".
	Migrated *AccountID

	// Name is the display name: the user's nickname when the institution
	// supports one, otherwise the product name.
	Name string

	// Status reports whether the connection behind this account is alive.
	Status AccountStatus

	// FormattedAccount is the standardised account number when the account
	// has one, e.g. 00-0000-0000000-00 for NZ banks.
	FormattedAccount *string

	// Refreshed carries per-slice refresh timestamps; nil when the
	// integration has not reported any.
	Refreshed *RefreshDetails

	// Balance is the account balance.
	Balance Balance

	// Kind is the account type.
	Kind AccountKind

	// Attributes lists the abilities this account supports.
	Attributes []AccountAttribute

	// Meta is the integration-specific attribute bag. Fields vary by
	// institution and are passed through undecoded.
	Meta map[string]json.RawMessage
}

// attributes and meta are pointers so that an explicitly empty collection is
// distinguishable from an absent one and re-encodes as empty, not dropped.
type accountWire struct {
	ID               *AccountID                  `json:"_id"`
	Authorisation    *AuthorisationID            `json:"_authorisation"`
	Migrated         *AccountID                  `json:"_migrated,omitempty"`
	Name             *string                     `json:"name"`
	Status           *AccountStatus              `json:"status"`
	FormattedAccount *string                     `json:"formatted_account,omitempty"`
	Refreshed        *RefreshDetails             `json:"refreshed,omitempty"`
	Balance          *json.RawMessage            `json:"balance"`
	Kind             *AccountKind                `json:"type"`
	Attributes       *[]AccountAttribute         `json:"attributes,omitempty"`
	Meta             *map[string]json.RawMessage `json:"meta,omitempty"`
}

// UnmarshalJSON decodes an account, failing with the offending field path on
// missing required fields, unknown enum members or unknown currencies.
// Fields this model does not know about are ignored.
func (a *Account) UnmarshalJSON(data []byte) error {
	var w accountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("account", err)
	}
	switch {
	case w.ID == nil:
		return missingField("_id")
	case w.Authorisation == nil:
		return missingField("_authorisation")
	case w.Name == nil:
		return missingField("name")
	case w.Status == nil:
		return missingField("status")
	case w.Balance == nil:
		return missingField("balance")
	case w.Kind == nil:
		return missingField("type")
	}
	if _, ok := accountStatuses[*w.Status]; !ok {
		return &DecodeError{Field: "status", Reason: "unknown account status " + string(*w.Status)}
	}
	if _, ok := accountKinds[*w.Kind]; !ok {
		return &DecodeError{Field: "type", Reason: "unknown account type " + string(*w.Kind)}
	}
	if w.Attributes != nil {
		for _, attr := range *w.Attributes {
			if _, ok := accountAttributes[attr]; !ok {
				return &DecodeError{Field: "attributes", Reason: "unknown account attribute " + string(attr)}
			}
		}
	}
	var balance Balance
	if err := json.Unmarshal(*w.Balance, &balance); err != nil {
		return nestField("balance", err)
	}

	a.ID = *w.ID
	a.Authorisation = *w.Authorisation
	a.Migrated = w.Migrated
	a.Name = *w.Name
	a.Status = *w.Status
	a.FormattedAccount = w.FormattedAccount
	a.Refreshed = w.Refreshed
	a.Balance = balance
	a.Kind = *w.Kind
	a.Attributes = nil
	if w.Attributes != nil {
		a.Attributes = *w.Attributes
	}
	a.Meta = nil
	if w.Meta != nil {
		a.Meta = *w.Meta
	}
	return nil
}

// MarshalJSON re-encodes the account under its wire field names, emitting
// only the fields that were present on decode.
func (a Account) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(a.Balance)
	if err != nil {
		return nil, err
	}
	balance := json.RawMessage(raw)
	id, auth, name, status, kind := a.ID, a.Authorisation, a.Name, a.Status, a.Kind
	w := accountWire{
		ID:               &id,
		Authorisation:    &auth,
		Migrated:         a.Migrated,
		Name:             &name,
		Status:           &status,
		FormattedAccount: a.FormattedAccount,
		Refreshed:        a.Refreshed,
		Balance:          &balance,
		Kind:             &kind,
	}
	// A non-nil empty collection was present on the wire and must re-encode
	// as empty rather than disappear.
	if a.Attributes != nil {
		attributes := a.Attributes
		w.Attributes = &attributes
	}
	if a.Meta != nil {
		meta := a.Meta
		w.Meta = &meta
	}
	return json.Marshal(w)
}
