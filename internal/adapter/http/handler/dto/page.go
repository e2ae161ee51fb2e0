package dto

import "github.com/Temutjin2k/wtl-cabs/internal/domain/models"

// OptionLink selects one model of a category and keeps everything else on the page.
type OptionLink struct {
	Name     string
	Image    string
	Href     string
	Selected bool
}

type CardView struct {
	models.CabCard
	Options []OptionLink
}

type FilterLink struct {
	Label  string
	Href   string
	Active bool
}

// HiddenField is carried by every reserve form.
type HiddenField struct {
	Name  string
	Value string
}

type SearchPage struct {
	Results         models.SearchResults
	Cards           []CardView
	Filters         []FilterLink
	QuoteToken      string
	SelectionFields []HiddenField
}

type NoticePage struct {
	Title    string
	Message  string
	BackHref string
}

type ErrorPage struct {
	Title    string
	Message  string
	HomeHref string
}
