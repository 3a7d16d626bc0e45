package akahu

import (
	"encoding/json"
	"testing"
)

func TestUserDecodesFullProfile(t *testing.T) {
	input := `{
		"_id": "user_7777777777777777777777777",
		"created_at": "2024-02-03T04:05:06.789Z",
		"first_name": "Jordan",
		"last_name": "Smith",
		"email": "jordan@example.test",
		"access_granted_at": "2025-01-15T09:30:00.000Z"
	}`
	var user User
	assertRoundTrip(t, input, &user)

	if user.ID != "user_7777777777777777777777777" {
		t.Fatalf("unexpected id %q", user.ID)
	}
	if user.FirstName == nil || *user.FirstName != "Jordan" {
		t.Fatalf("unexpected first name %v", user.FirstName)
	}
	if user.AccessGrantedAt == nil {
		t.Fatal("expected access_granted_at to decode")
	}
}

func TestUserDecodesMinimalProfile(t *testing.T) {
	input := `{"_id": "user_1", "created_at": "2024-02-03T04:05:06.789Z"}`
	var user User
	assertRoundTrip(t, input, &user)

	if user.FirstName != nil || user.LastName != nil || user.Email != nil || user.AccessGrantedAt != nil {
		t.Fatal("expected scope-gated fields to stay nil")
	}
}

func TestUserRequiredFieldErrors(t *testing.T) {
	var user User
	err := json.Unmarshal([]byte(`{"created_at":"2024-02-03T04:05:06.789Z"}`), &user)
	assertDecodeError(t, err, "_id")

	err = json.Unmarshal([]byte(`{"_id":"user_1"}`), &user)
	assertDecodeError(t, err, "created_at")
}
