package models

import "github.com/Temutjin2k/wtl-cabs/internal/domain/types"

const (
	defaultRating  = 4.7
	defaultReviews = 50

	fallbackImage = "/images/innova.jpg"
)

// CabEntry describes a vehicle category as listed on the search page.
type CabEntry struct {
	Type     string   `json:"type"`
	Image    string   `json:"image,omitempty"`
	Features []string `json:"features,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
	Reviews  int      `json:"reviews,omitempty"`
	Category string   `json:"category,omitempty"`
}

func (e CabEntry) RatingOrDefault() float64 {
	if e.Rating > 0 {
		return e.Rating
	}
	return defaultRating
}

func (e CabEntry) ReviewsOrDefault() int {
	if e.Reviews > 0 {
		return e.Reviews
	}
	return defaultReviews
}

func (e CabEntry) ImageOrFallback() string {
	if e.Image != "" {
		return e.Image
	}
	return fallbackImage
}

// DefaultCatalog returns a fresh copy of the seeded catalog.
func DefaultCatalog() []CabEntry {
	return []CabEntry{
		{
			Type:     types.Hatchback.String(),
			Image:    "/images/hatchback-car.jpg",
			Rating:   4.5,
			Reviews:  48,
			Features: []string{"4+1 Seater", "USB Charging", "Air Conditioning", "Music System"},
			Category: types.Hatchback.String(),
		},
		{
			Type:     types.Sedan.String(),
			Image:    "/images/sedan-car.jpg",
			Rating:   4.7,
			Reviews:  52,
			Features: []string{"4+1 Seater", "USB Charging", "Air Conditioning", "Music System"},
			Category: types.Sedan.String(),
		},
		{
			Type:     types.SedanPremium.String(),
			Image:    "/images/city.jpg",
			Rating:   4.8,
			Reviews:  45,
			Features: []string{"4+1 Seater", "USB Charging", "Climate Control", "Premium Sound System"},
			Category: types.SedanPremium.String(),
		},
		{
			Type:     types.SUV.String(),
			Image:    "/images/suv.jpg",
			Rating:   4.8,
			Reviews:  56,
			Features: []string{"6+1 Seater", "USB Charging", "Climate Control", "Premium Sound System"},
			Category: types.SUV.String(),
		},
		{
			Type:     types.MUV.String(),
			Image:    "/images/innova.jpg",
			Rating:   4.7,
			Reviews:  52,
			Features: []string{"7+1 Seater", "USB Charging", "Climate Control", "Entertainment System"},
			Category: types.MUV.String(),
		},
	}
}

// ModelOption is a concrete car model offered within a category.
type ModelOption struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CategoryProfile is the static description of a category.
type CategoryProfile struct {
	Category types.Category `json:"category"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Image    string         `json:"image"`
	// PriceKey is the rate field in the pricing API trip record.
	PriceKey string        `json:"price_key"`
	Options  []ModelOption `json:"options,omitempty"`
}

// HasOptions reports whether the visitor can pick a concrete model.
func (p CategoryProfile) HasOptions() bool {
	return len(p.Options) > 0
}

// Option finds a model by name.
func (p CategoryProfile) Option(name string) (ModelOption, bool) {
	for _, o := range p.Options {
		if o.Name == name {
			return o, true
		}
	}
	return ModelOption{}, false
}

// DefaultOption is the first listed model.
func (p CategoryProfile) DefaultOption() (ModelOption, bool) {
	if len(p.Options) == 0 {
		return ModelOption{}, false
	}
	return p.Options[0], true
}

var profiles = map[types.Category]CategoryProfile{
	types.Hatchback: {
		Category: types.Hatchback,
		Title:    "Hatchback",
		Subtitle: "Compact Hatchback • Manual • Efficient",
		Image:    "/images/wagonr.jpg",
		PriceKey: "hatchback",
		Options: []ModelOption{
			{Name: "Maruti Wagonr", Image: "/images/wagonr.jpg"},
			{Name: "Toyota Glanza", Image: "/images/glanza.jpg"},
			{Name: "Celerio", Image: "/images/celerio.png"},
		},
	},
	types.Sedan: {
		Category: types.Sedan,
		Title:    "Sedan",
		Subtitle: "Luxury Sedan • Manual • Sleek Design",
		Image:    "/images/swift.jpg",
		PriceKey: "sedan",
		Options: []ModelOption{
			{Name: "Maruti Swift Dzire", Image: "/images/swift.jpg"},
			{Name: "Honda Amaze", Image: "/images/amaze.jpg"},
			{Name: "Hyundai Aura/Xcent", Image: "/images/aura.jpg"},
			{Name: "Toyota etios", Image: "/images/etios.jpg"},
		},
	},
	types.SedanPremium: {
		Category: types.SedanPremium,
		Title:    "Sedan Premium",
		Subtitle: "Premium Sedan • Automatic • Luxury",
		Image:    "/images/city.jpg",
		PriceKey: "sedanpremium",
		Options: []ModelOption{
			{Name: "Honda City", Image: "/images/city.jpg"},
			{Name: "Hyundai Verna", Image: "/images/verna.jpg"},
			{Name: "Maruti Ciaz", Image: "/images/ciaz.jpg"},
		},
	},
	types.SUV: {
		Category: types.SUV,
		Title:    "SUV",
		Subtitle: "Premium SUV • Automatic • Spacious",
		Image:    "/images/ertiga.jpg",
		PriceKey: "suv",
		Options: []ModelOption{
			{Name: "Maruti Ertiga", Image: "/images/ertiga.jpg"},
			{Name: "Mahindra Marazzo", Image: "/images/marazzo.jpg"},
		},
	},
	types.MUV: {
		Category: types.MUV,
		Title:    "MUV",
		Subtitle: "Luxury MUV • Automatic • Premium",
		Image:    "/images/innova.jpg",
		PriceKey: "suvplus",
	},
}

// Profile returns the static profile of a category.
func Profile(c types.Category) (CategoryProfile, bool) {
	p, ok := profiles[c]
	return p, ok
}
