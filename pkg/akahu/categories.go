package akahu

import "context"

// Categories lists every NZFCC category. This endpoint is app-scoped: it
// authenticates with the app token and secret rather than a user token, and
// fails with ErrMissingAppSecret when the client has no secret configured.
//
// https://developers.akahu.nz/reference/get_categories
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	header, err := c.appHeader()
	if err != nil {
		return nil, err
	}
	var res listResponse[Category]
	if err := c.get(ctx, "categories", nil, header, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// CategoryByID fetches a single NZFCC category. App-scoped, like Categories.
//
// https://developers.akahu.nz/reference/get_categories-id
func (c *Client) CategoryByID(ctx context.Context, id CategoryID) (Category, error) {
	header, err := c.appHeader()
	if err != nil {
		return Category{}, err
	}
	var res itemResponse[Category]
	if err := c.get(ctx, "categories/"+string(id), nil, header, &res); err != nil {
		return Category{}, err
	}
	return res.Item, nil
}
