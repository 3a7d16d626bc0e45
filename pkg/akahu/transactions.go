package akahu

import (
	"context"
	"net/url"
)

// TransactionQuery filters a transaction listing by time range.
//
// The boundary semantics are asymmetric and must be preserved exactly:
// Start is exclusive and End is inclusive, so a transaction timestamped at
// Start is excluded while one timestamped at End is included. Both bounds
// are sent as millisecond-precision UTC timestamps. A nil bound leaves that
// side of the range open (the API defaults to the full range accessible to
// the app).
type TransactionQuery struct {
	Start *Time
	End   *Time

	// Cursor selects a results page obtained from a previous response.
	// Walking all pages is the caller's concern.
	Cursor Cursor
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	if q.Start != nil {
		v.Set("start", q.Start.wire())
	}
	if q.End != nil {
		v.Set("end", q.End.wire())
	}
	if q.Cursor != "" {
		v.Set("cursor", string(q.Cursor))
	}
	return v
}

// TransactionPage is one page of settled transactions. Next is nil on the
// last page.
type TransactionPage struct {
	Items []Transaction
	Next  *Cursor
}

// Transactions lists the user's settled transactions across all connected
// accounts within the query's time range. Each page holds at most 100
// transactions; pass the returned cursor with the same range to fetch the
// next page.
//
// https://developers.akahu.nz/reference/get_transactions
func (c *Client) Transactions(ctx context.Context, token UserToken, query TransactionQuery) (TransactionPage, error) {
	var res pageResponse[Transaction]
	if err := c.get(ctx, "transactions", query.values(), c.userHeader(token), &res); err != nil {
		return TransactionPage{}, err
	}
	return TransactionPage{Items: res.Items, Next: res.Cursor.Next}, nil
}

// AccountTransactions lists settled transactions for one account within the
// query's time range, with the same pagination behaviour as Transactions.
//
// https://developers.akahu.nz/reference/get_accounts-id-transactions
func (c *Client) AccountTransactions(ctx context.Context, token UserToken, id AccountID, query TransactionQuery) (TransactionPage, error) {
	var res pageResponse[Transaction]
	path := "accounts/" + string(id) + "/transactions"
	if err := c.get(ctx, path, query.values(), c.userHeader(token), &res); err != nil {
		return TransactionPage{}, err
	}
	return TransactionPage{Items: res.Items, Next: res.Cursor.Next}, nil
}

// PendingTransactions lists unsettled transactions across all connected
// accounts. The endpoint is not paginated.
//
// https://developers.akahu.nz/reference/get_transactions-pending
func (c *Client) PendingTransactions(ctx context.Context, token UserToken) ([]PendingTransaction, error) {
	var res listResponse[PendingTransaction]
	if err := c.get(ctx, "transactions/pending", nil, c.userHeader(token), &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}
