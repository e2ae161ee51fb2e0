package landing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/models"
	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
	"github.com/Temutjin2k/wtl-cabs/pkg/metrics"
)

// counterSteps is the number of animation frames rendered per counter.
const counterSteps = 20

type Service struct {
	cities          map[string]models.CityPage
	defaultCity     string
	counterDuration time.Duration
	l               logger.Logger
}

func New(defaultCity string, counterDuration time.Duration, l logger.Logger) *Service {
	if counterDuration <= 0 {
		counterDuration = DefaultCounterDuration
	}
	return &Service{
		cities:          defaultCities(),
		defaultCity:     defaultCity,
		counterDuration: counterDuration,
		l:               l,
	}
}

func (s *Service) DefaultCity() string {
	return s.defaultCity
}

// Page builds the landing page of a city. open is the ?open= accordion state and
// tab the selected booking-form tab; unknown tabs fall back to cabs.
func (s *Service) Page(ctx context.Context, slug, open, tab string) (models.LandingPage, error) {
	ctx = wrap.WithAction(ctx, "landing_page")
	ctx = wrap.WithCity(ctx, slug)

	city, ok := s.cities[slug]
	if !ok {
		return models.LandingPage{}, wrap.Error(ctx, fmt.Errorf("%w: %q", types.ErrCityNotFound, slug))
	}

	activeTab := types.ParseBookingTab(tab)
	accordion := ParseAccordion(len(city.FAQs), open)
	faqs := make([]models.FAQItem, 0, len(city.FAQs))
	for i, faq := range city.FAQs {
		faqs = append(faqs, models.FAQItem{
			FAQ:         faq,
			Index:       i,
			Open:        accordion.IsOpen(i),
			ToggleQuery: accordion.Toggle(i).Encode(),
			Href:        PageQuery(accordion.Toggle(i).Encode(), activeTab) + "#faq-" + strconv.Itoa(i),
		})
	}

	counters := make([]models.CounterView, 0, len(city.Counters))
	for _, spec := range city.Counters {
		counters = append(counters, models.CounterView{
			CounterSpec: spec,
			Frames:      Frames(spec.Target, s.counterDuration, counterSteps),
			DurationMs:  s.counterDuration.Milliseconds(),
		})
	}

	tabs := make([]string, 0, len(types.BookingTabs))
	links := make([]models.TabLink, 0, len(types.BookingTabs))
	for _, t := range types.BookingTabs {
		tabs = append(tabs, string(t))
		links = append(links, models.TabLink{
			Name:   string(t),
			Href:   PageQuery(accordion.Encode(), t),
			Active: t == activeTab,
		})
	}

	metrics.RecordLandingView(city.Slug)
	s.l.Debug(ctx, "landing page built", "open", accordion.Encode())

	return models.LandingPage{
		City:      city,
		ActiveTab: string(activeTab),
		Tabs:      tabs,
		TabLinks:  links,
		Counters:  counters,
		FAQs:      faqs,
	}, nil
}

// PageQuery is the query string of a landing page with the given accordion state
// and booking tab. The default tab and an all-collapsed accordion are left out.
func PageQuery(open string, tab types.BookingTab) string {
	v := url.Values{}
	if open != "" {
		v.Set("open", open)
	}
	if tab != "" && tab != types.TabCabs {
		v.Set("tab", string(tab))
	}
	return "?" + v.Encode()
}
