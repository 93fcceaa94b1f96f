package search

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/geridir/core/internal/models"
)

func TestDecodeFiltersFacets(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect []string
	}{
		{"no facets", "", nil},
		{"one true facet", "hasDayCare=true", []string{"has_day_care"}},
		{"false is not a filter", "hasDayCare=false", nil},
		{"arbitrary value is not a filter", "hasDayCare=1", nil},
		{
			"multiple facets keep declaration order",
			"has24hMedical=true&hasDayCare=true&hasPrivateRoom=true",
			[]string{"has_day_care", "has_private_room", "has_24h_medical"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			f := DecodeFilters(values)
			if !reflect.DeepEqual(f.FacetColumns, tt.expect) {
				t.Errorf("FacetColumns = %v, want %v", f.FacetColumns, tt.expect)
			}
		})
	}
}

func TestDecodeFiltersRatingFloor(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect *float64
	}{
		{"unset", "", nil},
		{"zero is unset", "rating=0", nil},
		{"garbage is unset", "rating=abc", nil},
		{"ui scale doubled", "rating=4", floatPtr(8)},
		{"fractional stars", "rating=2.5", floatPtr(5)},
		{"capped at stored max", "rating=7", floatPtr(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			f := DecodeFilters(values)
			switch {
			case tt.expect == nil && f.RatingFloor != nil:
				t.Errorf("RatingFloor = %v, want nil", *f.RatingFloor)
			case tt.expect != nil && f.RatingFloor == nil:
				t.Errorf("RatingFloor = nil, want %v", *tt.expect)
			case tt.expect != nil && *f.RatingFloor != *tt.expect:
				t.Errorf("RatingFloor = %v, want %v", *f.RatingFloor, *tt.expect)
			}
		})
	}
}

func TestDecodeFiltersPriceBounds(t *testing.T) {
	values, _ := url.ParseQuery("priceRangeMin=0&priceRangeMax=150000")
	f := DecodeFilters(values)
	if f.PriceMin == nil || *f.PriceMin != 0 {
		t.Errorf("PriceMin = %v, want 0 (zero is a valid bound)", f.PriceMin)
	}
	if f.PriceMax == nil || *f.PriceMax != 150000 {
		t.Errorf("PriceMax = %v, want 150000", f.PriceMax)
	}

	values, _ = url.ParseQuery("priceRangeMin=&priceRangeMax=abc")
	f = DecodeFilters(values)
	if f.PriceMin != nil || f.PriceMax != nil {
		t.Errorf("malformed bounds should be unset, got min=%v max=%v", f.PriceMin, f.PriceMax)
	}
}

func TestDecodeFiltersLocations(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect []Location
	}{
		{
			"indexed selections",
			"city0=Springfield&province0=Western&city1=Shelbyville",
			[]Location{
				{City: "Springfield", Province: "Western"},
				{City: "Shelbyville"},
			},
		},
		{
			"unsuffixed fallback",
			"city=Springfield&country=AR",
			[]Location{{City: "Springfield", Country: "AR"}},
		},
		{
			"indexed keys win over unsuffixed",
			"city=Ignored&city0=Springfield",
			[]Location{{City: "Springfield"}},
		},
		{
			"all-empty selections dropped",
			"city0=&province0=&country0=",
			nil,
		},
		{
			"sparse indexes are tolerated",
			"city0=Springfield&city3=Shelbyville",
			[]Location{{City: "Springfield"}, {City: "Shelbyville"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			f := DecodeFilters(values)
			if !reflect.DeepEqual(f.Locations, tt.expect) {
				t.Errorf("Locations = %+v, want %+v", f.Locations, tt.expect)
			}
		})
	}
}

func TestDecodeFiltersTherapies(t *testing.T) {
	values, _ := url.ParseQuery("therapies=kinesiology&therapies=Occupational&therapies=KINESIOLOGY&therapies=bogus")
	f := DecodeFilters(values)
	expect := []models.Therapy{models.TherapyKinesiology, models.TherapyOccupational}
	if !reflect.DeepEqual(f.Therapies, expect) {
		t.Errorf("Therapies = %v, want %v", f.Therapies, expect)
	}
}

func TestHasSpecificFilters(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect bool
	}{
		{"empty request", "", false},
		{"free text", "searchQuery=care", true},
		{"facet", "hasDayCare=true", true},
		{"therapy", "therapies=kinesiology", true},
		{"city", "city0=Springfield", true},
		{"province", "province=Western", true},
		{"country alone does not count", "country=AR", false},
		{"price bounds do not count", "priceRangeMin=100&priceRangeMax=200", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			if got := DecodeFilters(values).HasSpecificFilters(); got != tt.expect {
				t.Errorf("HasSpecificFilters() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
