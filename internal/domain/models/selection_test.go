package models

import (
	"errors"
	"net/url"
	"testing"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
)

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()

	want := map[types.Category]string{
		types.Hatchback:    "Maruti Wagonr",
		types.Sedan:        "Maruti Swift Dzire",
		types.SedanPremium: "Honda City",
		types.SUV:          "Maruti Ertiga",
	}
	for c, m := range want {
		if sel[c] != m {
			t.Fatalf("%s: got %q want %q", c, sel[c], m)
		}
	}
	if _, ok := sel[types.MUV]; ok {
		t.Fatalf("MUV has no options and must not be in the selection")
	}
}

func TestSelect_OnlyTouchesOneCategory(t *testing.T) {
	sel := DefaultSelection()

	next, err := sel.Select(types.Sedan, "Honda Amaze")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next[types.Sedan] != "Honda Amaze" {
		t.Fatalf("sedan not updated: %q", next[types.Sedan])
	}
	for _, c := range []types.Category{types.Hatchback, types.SedanPremium, types.SUV} {
		if next[c] != sel[c] {
			t.Fatalf("%s changed from %q to %q", c, sel[c], next[c])
		}
	}
	if sel[types.Sedan] != "Maruti Swift Dzire" {
		t.Fatalf("original selection was mutated")
	}

	name, image := next.Chosen(types.Sedan, "")
	if name != "Honda Amaze" || image != "/images/amaze.jpg" {
		t.Fatalf("unexpected chosen model %q %q", name, image)
	}
}

func TestSelect_Errors(t *testing.T) {
	sel := DefaultSelection()

	tests := []struct {
		name     string
		category types.Category
		model    string
		want     error
	}{
		{"unknown category", types.Category("Bus"), "x", types.ErrUnknownCategory},
		{"no options", types.MUV, "Innova", types.ErrCategoryHasNoOptions},
		{"model from another category", types.Sedan, "Honda City", types.ErrUnknownModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := sel.Select(tt.category, tt.model)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
			if next[types.Sedan] != sel[types.Sedan] {
				t.Fatalf("failed select must not change the selection")
			}
		})
	}
}

func TestChosen_MUVUsesCatalogImage(t *testing.T) {
	name, image := DefaultSelection().Chosen(types.MUV, "/images/custom.jpg")
	if name != "MUV" || image != "/images/custom.jpg" {
		t.Fatalf("unexpected %q %q", name, image)
	}

	_, image = DefaultSelection().Chosen(types.MUV, "")
	if image != "/images/innova.jpg" {
		t.Fatalf("expected profile image fallback, got %q", image)
	}
}

func TestSelectionFromValues_RoundTrip(t *testing.T) {
	v := url.Values{}
	v.Set(SelectionParam(types.SUV), "Mahindra Marazzo")
	v.Set(SelectionParam(types.Hatchback), "not a car")

	sel, errs := SelectionFromValues(v)
	if len(errs) != 1 || !errors.Is(errs[0], types.ErrUnknownModel) {
		t.Fatalf("expected one unknown model error, got %v", errs)
	}
	if sel[types.SUV] != "Mahindra Marazzo" {
		t.Fatalf("suv selection not applied")
	}
	if sel[types.Hatchback] != "Maruti Wagonr" {
		t.Fatalf("invalid hatchback choice should keep the default")
	}

	again, errs := SelectionFromValues(sel.Values())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for c, m := range sel {
		if again[c] != m {
			t.Fatalf("%s lost in round trip", c)
		}
	}
}
