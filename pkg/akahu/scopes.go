package akahu

import "fmt"

// Scope is a permission a user can grant an application during the OAuth
// consent flow. Scopes are purely descriptive here: the client neither
// requests nor enforces them, callers use them to check what access they
// already hold before calling an endpoint.
type Scope string

// Enduring consent scopes.
const (
	// ScopeEnduringConsent begins an enduring consent flow; required for
	// ongoing access to the user's accounts.
	ScopeEnduringConsent Scope = "ENDURING_CONSENT"
	// ScopeAkahu grants access to the user's Akahu profile, such as the
	// email they registered with.
	ScopeAkahu Scope = "AKAHU"
	// ScopeAccounts grants access to the accounts the user has shared.
	ScopeAccounts Scope = "ACCOUNTS"
	// ScopeTransactions grants access to transactions from shared accounts.
	// Available for both enduring and one-off consent.
	ScopeTransactions Scope = "TRANSACTIONS"
	// ScopeTransfers grants access to the transfer API.
	ScopeTransfers Scope = "TRANSFERS"
	// ScopePayments grants access to the payments API.
	ScopePayments Scope = "PAYMENTS"
	// ScopeIdentityNames grants access to the user's official names.
	ScopeIdentityNames Scope = "IDENTITY_NAMES"
	// ScopeIdentityDobs grants access to the user's date of birth.
	ScopeIdentityDobs Scope = "IDENTITY_DOBS"
	// ScopeIdentityEmails grants access to the user's email addresses.
	ScopeIdentityEmails Scope = "IDENTITY_EMAILS"
	// ScopeIdentityPhones grants access to the user's phone numbers.
	ScopeIdentityPhones Scope = "IDENTITY_PHONES"
	// ScopeIdentityTaxNumbers grants access to the user's IRD numbers.
	ScopeIdentityTaxNumbers Scope = "IDENTITY_TAX_NUMBERS"
)

// One-off consent scopes.
const (
	// ScopeOneOff begins a one-off connection flow; required for access at
	// the time of request only.
	ScopeOneOff Scope = "ONEOFF"
	// ScopeHolder grants access to account holder information.
	ScopeHolder Scope = "HOLDER"
	// ScopeAddress grants access to the user's residential and postal
	// address.
	ScopeAddress Scope = "ADDRESS"
	// ScopeAccount grants access to account details: holder name, account
	// number, branch.
	ScopeAccount Scope = "ACCOUNT"
	// ScopeStatements grants access to bank statements.
	ScopeStatements Scope = "STATEMENTS"
	// ScopePdfExports grants access to transactions in PDF format.
	ScopePdfExports Scope = "PDF_EXPORTS"
)

var enduringScopes = map[Scope]struct{}{
	ScopeEnduringConsent:    {},
	ScopeAkahu:              {},
	ScopeAccounts:           {},
	ScopeTransactions:       {},
	ScopeTransfers:          {},
	ScopePayments:           {},
	ScopeIdentityNames:      {},
	ScopeIdentityDobs:       {},
	ScopeIdentityEmails:     {},
	ScopeIdentityPhones:     {},
	ScopeIdentityTaxNumbers: {},
}

var oneOffScopes = map[Scope]struct{}{
	ScopeOneOff:       {},
	ScopeTransactions: {},
	ScopeHolder:       {},
	ScopeAddress:      {},
	ScopeAccount:      {},
	ScopeStatements:   {},
	ScopePdfExports:   {},
}

// ParseScope validates a wire-format scope literal. The literal round-trips
// unchanged: ParseScope(s).String() == s for every known scope.
func ParseScope(s string) (Scope, error) {
	scope := Scope(s)
	if !scope.Valid() {
		return "", fmt.Errorf("unknown scope %q", s)
	}
	return scope, nil
}

// Valid reports whether the scope is a member of the published set.
func (s Scope) Valid() bool {
	_, enduring := enduringScopes[s]
	_, oneOff := oneOffScopes[s]
	return enduring || oneOff
}

// Enduring reports whether the scope can be granted under enduring consent.
func (s Scope) Enduring() bool {
	_, ok := enduringScopes[s]
	return ok
}

// OneOff reports whether the scope can be granted under one-off consent.
func (s Scope) OneOff() bool {
	_, ok := oneOffScopes[s]
	return ok
}

func (s Scope) String() string {
	return string(s)
}
