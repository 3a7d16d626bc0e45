/**
 * @description
 * New Zealand Financial Category Codes (NZFCC), the externally governed
 * taxonomy Akahu uses to categorise transactions.
 *
 * The taxonomy is maintained outside this library and new codes appear over
 * time, so categorisation is treated as advisory: an unrecognised code decodes
 * to a fallback value that preserves the raw wire string and reports
 * Known() == false, rather than failing the enclosing transaction decode.
 */
package nzfcc

import (
	"fmt"
	"strconv"
)

// Group is a personal-finance category group, the coarsest level of the
// NZFCC taxonomy.
type Group struct {
	raw   string
	known bool
}

var groups = map[string]struct{}{
	"Appearance":            {},
	"Education":             {},
	"Food":                  {},
	"Health":                {},
	"Household":             {},
	"Housing":               {},
	"Lifestyle":             {},
	"Professional Services": {},
	"Transport":             {},
	"Utilities":             {},
}

// ParseGroup never fails: unrecognised names produce an unknown Group that
// still round-trips the raw string.
func ParseGroup(name string) Group {
	_, ok := groups[name]
	return Group{raw: name, known: ok}
}

// Known reports whether the group is part of the published taxonomy.
func (g Group) Known() bool { return g.known }

func (g Group) String() string { return g.raw }

// MarshalJSON re-encodes the group exactly as it arrived.
func (g Group) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(g.raw)), nil
}

func (g *Group) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("nzfcc group: expected a string, got %s", string(data))
	}
	*g = ParseGroup(name)
	return nil
}

// Code is an NZFCC category name, e.g. "Cafes and restaurants".
type Code struct {
	raw   string
	known bool
}

// codes maps each published category name to its personal-finance group.
var codes = map[string]string{
	"Accessories":                    "Appearance",
	"Beauty services":                "Appearance",
	"Clothing and footwear":          "Appearance",
	"Hairdressing":                   "Appearance",
	"Jewellery and watches":          "Appearance",
	"Childcare":                      "Education",
	"Schools and tertiary education": "Education",
	"Study and training":             "Education",
	"Alcohol":                        "Food",
	"Bakeries":                       "Food",
	"Butcheries and delicatessens":   "Food",
	"Cafes and restaurants":          "Food",
	"Supermarkets and grocery stores": "Food",
	"Takeaways":                      "Food",
	"Dentists":                       "Health",
	"Gyms and fitness":               "Health",
	"Medical services":               "Health",
	"Opticians":                      "Health",
	"Pharmacies":                     "Health",
	"Appliances and electronics":     "Household",
	"Furniture and homeware":         "Household",
	"Garden and hardware":            "Household",
	"Pets and pet care":              "Household",
	"Body corporate fees":            "Housing",
	"Mortgages":                      "Housing",
	"Rates":                          "Housing",
	"Rent":                           "Housing",
	"Books and stationery":           "Lifestyle",
	"Charitable donations":           "Lifestyle",
	"Events and venues":              "Lifestyle",
	"Gambling and lotteries":         "Lifestyle",
	"Hobbies and recreation":         "Lifestyle",
	"Holidays and accommodation":     "Lifestyle",
	"Sports clubs and activities":    "Lifestyle",
	"Streaming and subscription services": "Lifestyle",
	"Accounting services":            "Professional Services",
	"Banking service fees":           "Professional Services",
	"Insurance":                      "Professional Services",
	"Legal services":                 "Professional Services",
	"Buses and trains":               "Transport",
	"Flights":                        "Transport",
	"Fuel":                           "Transport",
	"Parking":                        "Transport",
	"Taxis and ride-sharing":         "Transport",
	"Vehicle servicing and repairs":  "Transport",
	"Electricity and gas":            "Utilities",
	"Internet services":              "Utilities",
	"Mobile and landline services":   "Utilities",
	"Water supply":                   "Utilities",
}

// Parse never fails: unrecognised names produce an unknown Code that still
// round-trips the raw string.
func Parse(name string) Code {
	_, ok := codes[name]
	return Code{raw: name, known: ok}
}

// Known reports whether the code is part of the published taxonomy.
func (c Code) Known() bool { return c.known }

func (c Code) String() string { return c.raw }

// Group returns the personal-finance group the code belongs to, which is
// unknown for codes outside the published taxonomy.
func (c Code) Group() Group {
	name, ok := codes[c.raw]
	if !ok {
		return Group{raw: "", known: false}
	}
	return Group{raw: name, known: true}
}

// MarshalJSON re-encodes the code exactly as it arrived.
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.raw)), nil
}

func (c *Code) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("nzfcc code: expected a string, got %s", string(data))
	}
	*c = Parse(name)
	return nil
}
