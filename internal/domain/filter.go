package domain

// SearchPlaceholder is the legacy UI hint text. A search string equal to it
// means "no search", never a literal filter value.
const SearchPlaceholder = "Поиск..."

// HoursBucket selects an operating-hours category. The empty value means
// "any". Values outside the predefined set are matched as plain substrings
// of the stored work_hours text.
type HoursBucket string

const (
	HoursAny           HoursBucket = ""
	HoursRoundTheClock HoursBucket = "24h"
	HoursUntil23       HoursBucket = "until-23"
	HoursUntil20       HoursBucket = "until-20"
)

type SortMode int

const (
	SortUnspecified SortMode = iota
	SortRatingDesc
	SortRatingAsc
	SortNameAsc
	SortNameDesc
)

// FilterCriteria carries the independent, optional search dimensions for a
// catalog listing. Zero value selects every place with no ordering.
type FilterCriteria struct {
	Query string // free text over name/address; "" or SearchPlaceholder = off
	Type  string // exact place type; "" = all types
	Wifi  string // exact wifi quality; "" = any
	Hours HoursBucket
	Sort  SortMode
}
