package akahu

import "context"

// Me fetches the profile of the user who authorised the application. The
// AKAHU scope is required for the email field to be populated.
//
// https://developers.akahu.nz/reference/get_me
func (c *Client) Me(ctx context.Context, token UserToken) (User, error) {
	var res itemResponse[User]
	if err := c.get(ctx, "me", nil, c.userHeader(token), &res); err != nil {
		return User{}, err
	}
	return res.Item, nil
}
