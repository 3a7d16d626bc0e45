package akahu

import "encoding/json"

// User is the profile of the person who authorised the application. Email
// visibility requires the AKAHU scope.
type User struct {
	// ID is the user identifier, wire field "_id".
	ID UserID

	// CreatedAt is when the user registered with Akahu.
	CreatedAt Time

	FirstName *string
	LastName  *string
	Email     *string

	// AccessGrantedAt is when the user authorised this application.
	AccessGrantedAt *Time
}

type userWire struct {
	ID              *UserID `json:"_id"`
	CreatedAt       *Time   `json:"created_at"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	AccessGrantedAt *Time   `json:"access_granted_at,omitempty"`
}

// UnmarshalJSON decodes a user profile; only the identifier and creation
// time are required, everything else depends on granted scopes.
func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("user", err)
	}
	if w.ID == nil {
		return missingField("_id")
	}
	if w.CreatedAt == nil {
		return missingField("created_at")
	}
	u.ID = *w.ID
	u.CreatedAt = *w.CreatedAt
	u.FirstName = w.FirstName
	u.LastName = w.LastName
	u.Email = w.Email
	u.AccessGrantedAt = w.AccessGrantedAt
	return nil
}

// MarshalJSON re-encodes the profile under its wire names.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userWire{
		ID:              &u.ID,
		CreatedAt:       &u.CreatedAt,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		AccessGrantedAt: u.AccessGrantedAt,
	})
}
