package view

import (
	"strconv"
	"strings"
)

// Filters holds the five independently togglable filter inputs. A record
// is included only when it passes every non-empty sub-filter; an empty
// input always passes.
type Filters struct {
	General  string
	Owner    string
	Address  string
	MinPrice string
	MaxPrice string
}

// IsEmpty reports whether every filter input is blank after trimming.
func (f Filters) IsEmpty() bool {
	return strings.TrimSpace(f.General) == "" &&
		strings.TrimSpace(f.Owner) == "" &&
		strings.TrimSpace(f.Address) == "" &&
		strings.TrimSpace(f.MinPrice) == "" &&
		strings.TrimSpace(f.MaxPrice) == ""
}

// Match reports whether the row passes every non-empty sub-filter.
//
// The general filter matches case-insensitively against owner, address,
// name, and the decimal string forms of price and room count. The price
// bounds fail closed: a non-empty bound that does not parse as a number
// excludes every row.
func (f Filters) Match(row Row) bool {
	if general := strings.ToLower(strings.TrimSpace(f.General)); general != "" {
		matches := containsFold(row.Owner, general) ||
			containsFold(row.Address, general) ||
			containsFold(row.Name, general) ||
			strings.Contains(priceText(row.Price), general) ||
			strings.Contains(strconv.Itoa(row.RoomCount), general)
		if !matches {
			return false
		}
	}

	if owner := strings.ToLower(strings.TrimSpace(f.Owner)); owner != "" {
		if !containsFold(row.Owner, owner) {
			return false
		}
	}

	if address := strings.ToLower(strings.TrimSpace(f.Address)); address != "" {
		if !containsFold(row.Address, address) {
			return false
		}
	}

	if minText := strings.TrimSpace(f.MinPrice); minText != "" {
		min, err := strconv.ParseFloat(minText, 64)
		if err != nil {
			return false
		}
		if row.Price < min {
			return false
		}
	}

	if maxText := strings.TrimSpace(f.MaxPrice); maxText != "" {
		max, err := strconv.ParseFloat(maxText, 64)
		if err != nil {
			return false
		}
		if row.Price > max {
			return false
		}
	}

	return true
}

// containsFold reports whether haystack contains needle ignoring case.
// needle must already be lowercase.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// priceText is the decimal string form of a price used for general-filter
// containment matching.
func priceText(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
