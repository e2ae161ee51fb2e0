package validator

import "testing"

type request struct {
	Token    string `json:"quote_token" validate:"required"`
	TripType string `json:"tripType" validate:"omitempty,oneof=oneWay roundTrip"`
	Pickup   string `json:"pickup" validate:"max=5"`
}

func TestStruct(t *testing.T) {
	v := New()
	v.Struct(request{TripType: "daily", Pickup: "too long"})

	if v.Valid() {
		t.Fatal("expected errors")
	}

	want := map[string]string{
		"quote_token": "must be provided",
		"tripType":    "must be one of oneWay, roundTrip",
		"pickup":      "must not be more than 5 characters long",
	}
	for key, msg := range want {
		if v.Errors[key] != msg {
			t.Fatalf("%s: expected %q, got %q", key, msg, v.Errors[key])
		}
	}
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	v.Struct(request{Token: "abc", TripType: "roundTrip"})
	if !v.Valid() {
		t.Fatalf("unexpected errors %v", v.Errors)
	}
}

func TestCheckKeepsFirstMessage(t *testing.T) {
	v := New()
	v.Check(false, "category", "first")
	v.Check(false, "category", "second")
	v.Check(true, "model", "never")

	if v.Errors["category"] != "first" || len(v.Errors) != 1 {
		t.Fatalf("unexpected errors %v", v.Errors)
	}
}
