package search

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/geridir/core/internal/models"
)

func filtersFromQuery(t *testing.T, query string) Filters {
	t.Helper()
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return DecodeFilters(values)
}

func TestBuildPredicateEmpty(t *testing.T) {
	p := BuildPredicate(Filters{})
	if len(p.Conds) != 0 {
		t.Fatalf("empty filters produced %d conjuncts", len(p.Conds))
	}
	clause, args := p.SQL()
	if clause != "" || args != nil {
		t.Errorf("empty predicate rendered %q with %v", clause, args)
	}
}

func TestBuildPredicateFreeText(t *testing.T) {
	p := BuildPredicate(filtersFromQuery(t, "searchQuery=sunny"))
	if len(p.Conds) != 1 {
		t.Fatalf("want one conjunct, got %d", len(p.Conds))
	}
	group, ok := p.Conds[0].(Or)
	if !ok {
		t.Fatalf("free text conjunct is %T, want Or", p.Conds[0])
	}
	columns := make([]string, 0, len(group))
	for _, cond := range group {
		cf, ok := cond.(ContainsFold)
		if !ok {
			t.Fatalf("free text member is %T, want ContainsFold", cond)
		}
		columns = append(columns, cf.Column)
	}
	want := []string{"name", "address", "description"}
	if !reflect.DeepEqual(columns, want) {
		t.Errorf("free text columns = %v, want %v", columns, want)
	}
}

func TestBuildPredicateFacetConjunction(t *testing.T) {
	base := filtersFromQuery(t, "hasDayCare=true")
	wider := filtersFromQuery(t, "hasDayCare=true&has24hMedical=true")

	// Adding a facet must only append conjuncts, never loosen.
	if got := len(BuildPredicate(wider).Conds) - len(BuildPredicate(base).Conds); got != 1 {
		t.Errorf("extra facet added %d conjuncts, want 1", got)
	}
	for _, cond := range BuildPredicate(wider).Conds {
		eq, ok := cond.(Eq)
		if !ok {
			t.Fatalf("facet conjunct is %T, want Eq", cond)
		}
		if eq.Value != true {
			t.Errorf("facet %s filters on %v, want true", eq.Column, eq.Value)
		}
	}
}

func TestBuildPredicateLocations(t *testing.T) {
	// Two selections: listing in either matches, so selections form a
	// single OR-group conjunct.
	p := BuildPredicate(filtersFromQuery(t, "city0=Springfield&city1=Shelbyville"))
	if len(p.Conds) != 1 {
		t.Fatalf("want one location conjunct, got %d", len(p.Conds))
	}
	group, ok := p.Conds[0].(Or)
	if !ok || len(group) != 2 {
		t.Fatalf("location group = %#v, want Or of 2 selections", p.Conds[0])
	}

	clause, args := p.SQL()
	if !strings.Contains(clause, "LOWER(city) LIKE ?") {
		t.Errorf("clause %q missing city match", clause)
	}
	wantArgs := []interface{}{"%springfield%", "%shelbyville%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestBuildPredicateTherapiesAreANDed(t *testing.T) {
	p := BuildPredicate(filtersFromQuery(t, "therapies=kinesiology&therapies=occupational"))
	if len(p.Conds) != 2 {
		t.Fatalf("want one conjunct per therapy, got %d", len(p.Conds))
	}
	clause, args := p.SQL()
	if strings.Count(clause, "EXISTS") != 2 {
		t.Errorf("clause %q should contain two EXISTS subqueries", clause)
	}
	if !strings.Contains(clause, " AND ") {
		t.Errorf("therapies must be ANDed, clause %q", clause)
	}
	want := []interface{}{string(models.TherapyKinesiology), string(models.TherapyOccupational)}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildPredicatePriceAndRating(t *testing.T) {
	p := BuildPredicate(filtersFromQuery(t, "priceRangeMin=50000&priceRangeMax=150000&rating=4"))
	clause, args := p.SQL()

	for _, fragment := range []string{
		"rating >= ?",
		"price_range_min >= ?",
		"price_range_max <= ?",
	} {
		if !strings.Contains(clause, fragment) {
			t.Errorf("clause %q missing %q", clause, fragment)
		}
	}
	want := []interface{}{8.0, 50000, 150000}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestPredicateSQLEndToEnd(t *testing.T) {
	p := BuildPredicate(filtersFromQuery(t,
		"searchQuery=care&hasDayCare=true&priceRangeMin=50000&priceRangeMax=150000&city0=Springfield"))
	clause, args := p.SQL()

	want := "(LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(description) LIKE ?)" +
		" AND LOWER(city) LIKE ?" +
		" AND has_day_care = ?" +
		" AND price_range_min >= ?" +
		" AND price_range_max <= ?"
	if clause != want {
		t.Errorf("clause =\n%q\nwant\n%q", clause, want)
	}
	wantArgs := []interface{}{"%care%", "%care%", "%care%", "%springfield%", true, 50000, 150000}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}
