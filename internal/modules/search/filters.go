package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/geridir/core/internal/models"
)

// maxIndexedLocations bounds how far the indexed-suffix scan walks.
const maxIndexedLocations = 20

// storedRatingScale / uiRatingScale convert the public 0-5 star floor to
// the stored 0-10 rating scale.
const (
	uiRatingScale     = 5
	storedRatingScale = 10
)

// facet pairs a query parameter with the listing column it filters.
type facet struct {
	Param  string
	Column string
}

// facetColumns lists every boolean capability facet, grouped by family.
// A facet only filters when the client sends the literal string "true".
var facetColumns = []facet{
	// Stay type
	{"hasDayCare", "has_day_care"},
	{"hasPermanentStay", "has_permanent_stay"},
	// Room and bath
	{"hasPrivateRoom", "has_private_room"},
	{"hasDoubleRoom", "has_double_room"},
	{"hasSharedRoom", "has_shared_room"},
	{"hasPrivateBath", "has_private_bath"},
	{"hasSharedBath", "has_shared_bath"},
	// Dependency level
	{"hasIndependentCare", "has_independent_care"},
	{"hasSemiDependent", "has_semi_dependent"},
	{"hasDependent", "has_dependent"},
	{"hasHighComplexity", "has_high_complexity"},
	// Medical coverage
	{"has24hMedical", "has_24h_medical"},
	{"has24hNursing", "has_24h_nursing"},
	{"hasPresentialDoctor", "has_presential_doctor"},
	{"hasMedicationSupply", "has_medication_supply"},
	{"hasAttentionForNeurologicalDiseases", "has_attention_for_neurological_diseases"},
}

// Location is one city/province/country selection. Matching is per-field
// substring, fields OR'd within the selection.
type Location struct {
	City     string
	Province string
	Country  string
}

// Empty reports whether no field of the selection is set.
func (l Location) Empty() bool {
	return l.City == "" && l.Province == "" && l.Country == ""
}

// Filters is the decoded facet state of one search request. It is a plain
// value: decoding never fails, malformed input degrades to "not set".
type Filters struct {
	SearchQuery string

	// RatingFloor is on the stored 0-10 scale, nil when unset.
	RatingFloor *float64

	// FacetColumns holds the columns of every facet sent as "true",
	// in declaration order.
	FacetColumns []string

	// Nullable price bounds; nil means no constraint, 0 is a valid bound.
	PriceMin *int
	PriceMax *int

	Locations []Location
	Therapies []models.Therapy
}

// DecodeFilters builds Filters from raw query parameters.
func DecodeFilters(values url.Values) Filters {
	f := Filters{
		SearchQuery: strings.TrimSpace(values.Get("searchQuery")),
	}

	if raw := strings.TrimSpace(values.Get("rating")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			floor := v * storedRatingScale / uiRatingScale
			if floor > storedRatingScale {
				floor = storedRatingScale
			}
			f.RatingFloor = &floor
		}
	}

	for _, fc := range facetColumns {
		if values.Get(fc.Param) == "true" {
			f.FacetColumns = append(f.FacetColumns, fc.Column)
		}
	}

	f.PriceMin = parseIntParam(values.Get("priceRangeMin"))
	f.PriceMax = parseIntParam(values.Get("priceRangeMax"))

	f.Locations = decodeLocations(values)
	f.Therapies = decodeTherapies(values["therapies"])
	return f
}

// HasSpecificFilters reports whether the request narrows the result set
// enough to justify a longer cache window. Price bounds and country-only
// locations do not count.
func (f Filters) HasSpecificFilters() bool {
	if f.SearchQuery != "" || len(f.FacetColumns) > 0 || len(f.Therapies) > 0 {
		return true
	}
	for _, loc := range f.Locations {
		if loc.City != "" || loc.Province != "" {
			return true
		}
	}
	return false
}

// AsLog flattens the filters into the loggable shape persisted by the
// search-log endpoint.
func (f Filters) AsLog() map[string]interface{} {
	entry := map[string]interface{}{}
	if f.SearchQuery != "" {
		entry["searchQuery"] = f.SearchQuery
	}
	if f.RatingFloor != nil {
		entry["rating"] = *f.RatingFloor
	}
	if len(f.FacetColumns) > 0 {
		entry["facets"] = f.FacetColumns
	}
	if f.PriceMin != nil {
		entry["priceRangeMin"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		entry["priceRangeMax"] = *f.PriceMax
	}
	if len(f.Locations) > 0 {
		locs := make([]map[string]string, 0, len(f.Locations))
		for _, loc := range f.Locations {
			locs = append(locs, map[string]string{
				"city":     loc.City,
				"province": loc.Province,
				"country":  loc.Country,
			})
		}
		entry["locations"] = locs
	}
	if len(f.Therapies) > 0 {
		entry["therapies"] = f.Therapies
	}
	return entry
}

// decodeLocations reads indexed selections (city0/province0/country0, ...).
// When no indexed key is present, the unsuffixed city/province/country
// params are accepted as a single selection. All-empty selections drop.
func decodeLocations(values url.Values) []Location {
	var locations []Location
	indexed := false
	for i := 0; i < maxIndexedLocations; i++ {
		suffix := strconv.Itoa(i)
		_, hasCity := values[buildKey("city", suffix)]
		_, hasProvince := values[buildKey("province", suffix)]
		_, hasCountry := values[buildKey("country", suffix)]
		if !hasCity && !hasProvince && !hasCountry {
			continue
		}
		indexed = true
		loc := Location{
			City:     strings.TrimSpace(values.Get(buildKey("city", suffix))),
			Province: strings.TrimSpace(values.Get(buildKey("province", suffix))),
			Country:  strings.TrimSpace(values.Get(buildKey("country", suffix))),
		}
		if !loc.Empty() {
			locations = append(locations, loc)
		}
	}
	if indexed {
		return locations
	}

	loc := Location{
		City:     strings.TrimSpace(values.Get("city")),
		Province: strings.TrimSpace(values.Get("province")),
		Country:  strings.TrimSpace(values.Get("country")),
	}
	if loc.Empty() {
		return nil
	}
	return []Location{loc}
}

func decodeTherapies(raw []string) []models.Therapy {
	var therapies []models.Therapy
	seen := map[models.Therapy]bool{}
	for _, value := range raw {
		t, ok := models.ParseTherapy(strings.TrimSpace(value))
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		therapies = append(therapies, t)
	}
	return therapies
}

func parseIntParam(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func buildKey(field, suffix string) string { return field + suffix }
