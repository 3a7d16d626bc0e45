/**
 * @description
 * Credential and identifier types for the Akahu API.
 *
 * App and user tokens are distinct types so an app-scoped call can never be
 * handed a user token (or vice versa) without an explicit conversion the
 * compiler makes visible. Resource identifiers keep the API's prefix
 * convention: constructors validate the prefix, while decoding accepts
 * server-supplied values unchecked so the wire value always round-trips.
 */
package akahu

import (
	"fmt"
	"strings"
)

// AppToken identifies the calling application. It is sent in the X-Akahu-Id
// header on every request.
type AppToken string

// UserToken identifies an end user's consented data access, obtained through
// the OAuth flow (which this library does not implement). It is sent as a
// Bearer token on user-scoped requests.
type UserToken string

// AppSecret authenticates app-scoped endpoints (such as the category
// listing) together with the AppToken, via HTTP Basic auth. Not available
// for personal apps.
type AppSecret string

// Cursor is an opaque pagination token returned by paginated endpoints.
// Traversing multiple pages is the caller's concern; the client only passes
// cursors through.
type Cursor string

func checkPrefix(kind, prefix, value string) error {
	if !strings.HasPrefix(value, prefix) {
		return fmt.Errorf("invalid %s %q: expected prefix %q", kind, value, prefix)
	}
	return nil
}

// AccountID uniquely identifies a connected account. Always prefixed "acc_".
type AccountID string

// NewAccountID validates the "acc_" prefix.
func NewAccountID(s string) (AccountID, error) {
	if err := checkPrefix("account id", "acc_", s); err != nil {
		return "", err
	}
	return AccountID(s), nil
}

// TransactionID uniquely identifies a settled transaction. Always prefixed
// "trans_".
type TransactionID string

// NewTransactionID validates the "trans_" prefix.
func NewTransactionID(s string) (TransactionID, error) {
	if err := checkPrefix("transaction id", "trans_", s); err != nil {
		return "", err
	}
	return TransactionID(s), nil
}

// UserID uniquely identifies a user who has authorised the application.
// Always prefixed "user_".
type UserID string

// NewUserID validates the "user_" prefix.
func NewUserID(s string) (UserID, error) {
	if err := checkPrefix("user id", "user_", s); err != nil {
		return "", err
	}
	return UserID(s), nil
}

// ConnectionID identifies a financial institution connection. Always
// prefixed "conn_".
type ConnectionID string

// NewConnectionID validates the "conn_" prefix.
func NewConnectionID(s string) (ConnectionID, error) {
	if err := checkPrefix("connection id", "conn_", s); err != nil {
		return "", err
	}
	return ConnectionID(s), nil
}

// AuthorisationID identifies the institution authorisation a set of accounts
// was connected under. Always prefixed "auth_".
type AuthorisationID string

// NewAuthorisationID validates the "auth_" prefix.
func NewAuthorisationID(s string) (AuthorisationID, error) {
	if err := checkPrefix("authorisation id", "auth_", s); err != nil {
		return "", err
	}
	return AuthorisationID(s), nil
}

// CategoryID identifies an NZFCC category. Always prefixed "nzfcc_".
type CategoryID string

// NewCategoryID validates the "nzfcc_" prefix.
func NewCategoryID(s string) (CategoryID, error) {
	if err := checkPrefix("category id", "nzfcc_", s); err != nil {
		return "", err
	}
	return CategoryID(s), nil
}

// MerchantID identifies a merchant in the enrichment system. Always prefixed
// "merchant_".
type MerchantID string

// NewMerchantID validates the "merchant_" prefix.
func NewMerchantID(s string) (MerchantID, error) {
	if err := checkPrefix("merchant id", "merchant_", s); err != nil {
		return "", err
	}
	return MerchantID(s), nil
}
