package akahu

import (
	"context"
	"net/http"
)

// RefreshAccounts asks Akahu to refresh data for every account the user has
// connected to the application. Enrichment happens asynchronously after the
// refresh is accepted; the success body is empty.
//
// https://developers.akahu.nz/reference/post_refresh
func (c *Client) RefreshAccounts(ctx context.Context, token UserToken) error {
	return c.do(ctx, http.MethodPost, "refresh", nil, c.userHeader(token), nil)
}

// Refresh asks Akahu to refresh one account or connection. A connection
// identifier refreshes every account at that institution; an account
// identifier also refreshes sibling accounts sharing its credentials.
//
// https://developers.akahu.nz/reference/post_refresh-id
func (c *Client) Refresh(ctx context.Context, token UserToken, id string) error {
	return c.do(ctx, http.MethodPost, "refresh/"+id, nil, c.userHeader(token), nil)
}
