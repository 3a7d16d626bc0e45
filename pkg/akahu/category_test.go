package akahu

import (
	"encoding/json"
	"testing"
)

func TestCategoryDecodesWithGroups(t *testing.T) {
	input := `{
		"_id": "nzfcc_1",
		"name": "Cafes and restaurants",
		"groups": {
			"personal_finance": {"_id": "group_pf", "name": "Food"},
			"custom_budget": {"_id": "group_cb", "name": "Eating out"}
		}
	}`
	var category Category
	assertRoundTrip(t, input, &category)

	if category.ID != "nzfcc_1" {
		t.Fatalf("unexpected id %q", category.ID)
	}
	if !category.Name.Known() {
		t.Fatal("expected a published category name to be known")
	}
	pf := category.Groups.PersonalFinance
	if pf == nil || pf.ID != "group_pf" {
		t.Fatalf("unexpected personal finance group %v", pf)
	}
	if _, ok := category.Groups.Other["custom_budget"]; !ok {
		t.Fatal("expected custom groupings passed through")
	}
	if _, ok := category.Groups.Other["personal_finance"]; ok {
		t.Fatal("expected personal_finance split out of the passthrough map")
	}
}

func TestCategoryDecodesWithoutGroups(t *testing.T) {
	input := `{"_id": "nzfcc_2", "name": "Clothing and footwear"}`
	var category Category
	assertRoundTrip(t, input, &category)

	if category.Groups.PersonalFinance != nil || category.Groups.Other != nil {
		t.Fatal("expected empty groups")
	}
}

func TestCategoryUnknownGroupNameFallsBack(t *testing.T) {
	input := `{
		"_id": "nzfcc_3",
		"name": "Cafes and restaurants",
		"groups": {"personal_finance": {"_id": "group_pf", "name": "Subscriptions 2.0"}}
	}`
	var category Category
	assertRoundTrip(t, input, &category)

	pf := category.Groups.PersonalFinance
	if pf == nil {
		t.Fatal("expected the group attached")
	}
	if pf.Name.Known() {
		t.Fatal("expected an unpublished group name to be unknown")
	}
	if pf.Name.String() != "Subscriptions 2.0" {
		t.Fatalf("expected the raw name preserved, got %q", pf.Name.String())
	}
}

func TestCategoryRequiredFieldErrors(t *testing.T) {
	var category Category
	err := json.Unmarshal([]byte(`{"name":"Cafes and restaurants"}`), &category)
	assertDecodeError(t, err, "_id")

	err = json.Unmarshal([]byte(`{"_id":"nzfcc_1"}`), &category)
	assertDecodeError(t, err, "name")

	err = json.Unmarshal([]byte(`{"_id":"nzfcc_1","name":"X","groups":{"personal_finance":{"name":"Food"}}}`), &category)
	assertDecodeError(t, err, "groups.personal_finance._id")
}
