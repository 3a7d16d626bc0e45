package akahu

import "context"

// Accounts lists every account the user has connected to the application.
// The data visible on each account depends on the app's permissions.
//
// https://developers.akahu.nz/reference/get_accounts
func (c *Client) Accounts(ctx context.Context, token UserToken) ([]Account, error) {
	var res listResponse[Account]
	if err := c.get(ctx, "accounts", nil, c.userHeader(token), &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// Account fetches a single connected account by its identifier.
//
// https://developers.akahu.nz/reference/get_accounts-id
func (c *Client) Account(ctx context.Context, token UserToken, id AccountID) (Account, error) {
	var res itemResponse[Account]
	if err := c.get(ctx, "accounts/"+string(id), nil, c.userHeader(token), &res); err != nil {
		return Account{}, err
	}
	return res.Item, nil
}
