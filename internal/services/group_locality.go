package services

import (
	"strings"

	"place-proximity/internal/ports"
)

// Bucket name for items whose locality key comes back empty.
const UnknownLocality = "Unknown"

// Granularity used when deriving a grouping key from a locality label.
type LocalityScope int

const (
	ScopeCity LocalityScope = iota
	ScopeRegion
	ScopeCountry
)

// Partition items into locality buckets.
//
// keyOf decides the bucket for each item; nil falls back to the item's own
// locality label. Items with an empty key land in the "Unknown" bucket.
// Bucket contents preserve input order and no bucket is sorted here;
// presentation order is the caller's concern.
func GroupByLocality(items []ports.LocatedItem, keyOf func(ports.LocatedItem) string) map[string][]ports.LocatedItem {
	if keyOf == nil {
		keyOf = func(it ports.LocatedItem) string { return it.Locality() }
	}

	groups := make(map[string][]ports.LocatedItem)
	for _, it := range items {
		key := keyOf(it)
		if key == "" {
			key = UnknownLocality
		}
		groups[key] = append(groups[key], it)
	}
	return groups
}

// Key function picking one part of a "City, Region, Country" locality label.
// City is the first part and country the last; region is the middle part of
// a three-part label. When the label does not carry the requested part the
// whole label is used, so single-part labels group as themselves.
func KeyByScope(scope LocalityScope) func(ports.LocatedItem) string {
	return func(it ports.LocatedItem) string {
		label := it.Locality()
		if label == "" {
			return ""
		}
		parts := strings.Split(label, ", ")

		switch scope {
		case ScopeCity:
			return parts[0]
		case ScopeCountry:
			return parts[len(parts)-1]
		case ScopeRegion:
			if len(parts) == 3 {
				return parts[1]
			}
		}
		return label
	}
}
