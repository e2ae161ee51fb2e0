package landing

import (
	"slices"
	"strconv"
	"strings"
)

// Accordion holds which FAQ entries are expanded. Entries are independent and
// all start collapsed. It is a value: Toggle returns a new Accordion.
type Accordion struct {
	size int
	open []bool
}

func NewAccordion(size int) Accordion {
	if size < 0 {
		size = 0
	}
	return Accordion{size: size, open: make([]bool, size)}
}

// ParseAccordion reads a comma separated list of expanded indexes, as carried by
// the ?open= query parameter. Out of range or malformed indexes are ignored.
func ParseAccordion(size int, raw string) Accordion {
	a := NewAccordion(size)
	for _, part := range strings.Split(raw, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || i < 0 || i >= size {
			continue
		}
		a.open[i] = true
	}
	return a
}

// Toggle flips entry i and leaves every other entry as it was.
func (a Accordion) Toggle(i int) Accordion {
	next := Accordion{size: a.size, open: slices.Clone(a.open)}
	if i >= 0 && i < a.size {
		next.open[i] = !next.open[i]
	}
	return next
}

func (a Accordion) IsOpen(i int) bool {
	return i >= 0 && i < a.size && a.open[i]
}

// Encode is the ?open= value for the current state.
func (a Accordion) Encode() string {
	var parts []string
	for i, open := range a.open {
		if open {
			parts = append(parts, strconv.Itoa(i))
		}
	}
	return strings.Join(parts, ",")
}
