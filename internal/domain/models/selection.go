package models

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
)

// selectionParamPrefix prefixes the per-category selection query parameter,
// e.g. model.sedan=Honda Amaze.
const selectionParamPrefix = "model."

// Selection maps a category to the concrete model the visitor picked.
// It is treated as a value: Select returns a new Selection.
type Selection map[types.Category]string

// DefaultSelection picks the first model of every category that has options.
func DefaultSelection() Selection {
	s := make(Selection, len(profiles))
	for c, p := range profiles {
		if o, ok := p.DefaultOption(); ok {
			s[c] = o.Name
		}
	}
	return s
}

// Select returns a copy of s with category set to model. Other categories are untouched.
func (s Selection) Select(category types.Category, model string) (Selection, error) {
	p, ok := Profile(category)
	if !ok {
		return s, fmt.Errorf("%w: %q", types.ErrUnknownCategory, category)
	}
	if !p.HasOptions() {
		return s, fmt.Errorf("%w: %s", types.ErrCategoryHasNoOptions, category)
	}
	if _, ok := p.Option(model); !ok {
		return s, fmt.Errorf("%w: %q for %s", types.ErrUnknownModel, model, category)
	}

	next := maps.Clone(s)
	if next == nil {
		next = make(Selection, 1)
	}
	next[category] = model
	return next, nil
}

// Chosen returns the model name and image shown for category. Categories without
// options fall back to their title and the given catalog image.
func (s Selection) Chosen(category types.Category, catalogImage string) (name, image string) {
	p, ok := Profile(category)
	if !ok {
		return category.String(), catalogImage
	}
	if !p.HasOptions() {
		if catalogImage == "" {
			catalogImage = p.Image
		}
		return p.Title, catalogImage
	}
	if o, ok := p.Option(s[category]); ok {
		return o.Name, o.Image
	}
	o, _ := p.DefaultOption()
	return o.Name, o.Image
}

// SelectionFromValues applies every valid model.<pricekey> parameter on top of the
// default selection. Invalid entries are returned as errors and skipped.
func SelectionFromValues(v url.Values) (Selection, []error) {
	sel := DefaultSelection()
	var errs []error
	for _, c := range types.AllCategories {
		p, _ := Profile(c)
		model := strings.TrimSpace(v.Get(selectionParamPrefix + p.PriceKey))
		if model == "" {
			continue
		}
		next, err := sel.Select(c, model)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sel = next
	}
	return sel, errs
}

// Values encodes the selection as model.<pricekey> parameters.
func (s Selection) Values() url.Values {
	v := url.Values{}
	for _, c := range types.AllCategories {
		p, _ := Profile(c)
		if m, ok := s[c]; ok && p.HasOptions() {
			v.Set(SelectionParam(c), m)
		}
	}
	return v
}

// SelectionParam names the query parameter carrying the model choice for category.
func SelectionParam(c types.Category) string {
	p, ok := Profile(c)
	if !ok {
		return ""
	}
	return selectionParamPrefix + p.PriceKey
}
