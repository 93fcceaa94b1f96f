package search

import (
	"strings"

	"github.com/geridir/core/internal/models"
	"gorm.io/gorm"
)

// Cond is one node of the predicate condition tree.
type Cond interface{ isCond() }

// Eq matches a column exactly.
type Eq struct {
	Column string
	Value  interface{}
}

// Gte matches column >= value.
type Gte struct {
	Column string
	Value  interface{}
}

// Lte matches column <= value.
type Lte struct {
	Column string
	Value  interface{}
}

// ContainsFold matches case-insensitive substring containment.
type ContainsFold struct {
	Column string
	Value  string
}

// HasTherapy matches listings with an associated therapy row.
type HasTherapy struct {
	Therapy models.Therapy
}

// Or is a disjunction of child conditions.
type Or []Cond

func (Eq) isCond()           {}
func (Gte) isCond()          {}
func (Lte) isCond()          {}
func (ContainsFold) isCond() {}
func (HasTherapy) isCond()   {}
func (Or) isCond()           {}

// Predicate is the conjunction of its conditions. An empty predicate
// matches everything.
type Predicate struct {
	Conds []Cond
}

// BuildPredicate deterministically converts decoded filters into the
// conjunctive predicate used by count, page and secondary queries. Pure:
// no database, no I/O.
func BuildPredicate(f Filters) Predicate {
	var conds []Cond

	if f.SearchQuery != "" {
		conds = append(conds, Or{
			ContainsFold{Column: "name", Value: f.SearchQuery},
			ContainsFold{Column: "address", Value: f.SearchQuery},
			ContainsFold{Column: "description", Value: f.SearchQuery},
		})
	}

	if group := locationGroup(f.Locations); group != nil {
		conds = append(conds, group)
	}

	for _, column := range f.FacetColumns {
		conds = append(conds, Eq{Column: column, Value: true})
	}

	if f.RatingFloor != nil {
		conds = append(conds, Gte{Column: "rating", Value: *f.RatingFloor})
	}
	if f.PriceMin != nil {
		conds = append(conds, Gte{Column: "price_range_min", Value: *f.PriceMin})
	}
	if f.PriceMax != nil {
		conds = append(conds, Lte{Column: "price_range_max", Value: *f.PriceMax})
	}

	for _, therapy := range f.Therapies {
		conds = append(conds, HasTherapy{Therapy: therapy})
	}

	return Predicate{Conds: conds}
}

// locationGroup builds the OR-of-selections condition. Each selection is
// itself an OR of its non-empty field matches; the whole group is one
// top-level conjunct.
func locationGroup(locations []Location) Cond {
	var groups []Cond
	for _, loc := range locations {
		var fields Or
		if loc.City != "" {
			fields = append(fields, ContainsFold{Column: "city", Value: loc.City})
		}
		if loc.Province != "" {
			fields = append(fields, ContainsFold{Column: "province", Value: loc.Province})
		}
		if loc.Country != "" {
			fields = append(fields, ContainsFold{Column: "country", Value: loc.Country})
		}
		switch len(fields) {
		case 0:
		case 1:
			groups = append(groups, fields[0])
		default:
			groups = append(groups, fields)
		}
	}
	switch len(groups) {
	case 0:
		return nil
	case 1:
		return groups[0]
	default:
		return Or(groups)
	}
}

// SQL renders the predicate as a WHERE fragment with placeholder args.
// An empty predicate renders as ("", nil).
func (p Predicate) SQL() (string, []interface{}) {
	if len(p.Conds) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(p.Conds))
	var args []interface{}
	for _, cond := range p.Conds {
		clause, condArgs := condSQL(cond)
		clauses = append(clauses, clause)
		args = append(args, condArgs...)
	}
	return strings.Join(clauses, " AND "), args
}

// Apply attaches the predicate to a listings query.
func (p Predicate) Apply(db *gorm.DB) *gorm.DB {
	clause, args := p.SQL()
	if clause == "" {
		return db
	}
	return db.Where(clause, args...)
}

func condSQL(cond Cond) (string, []interface{}) {
	switch c := cond.(type) {
	case Eq:
		return c.Column + " = ?", []interface{}{c.Value}
	case Gte:
		return c.Column + " >= ?", []interface{}{c.Value}
	case Lte:
		return c.Column + " <= ?", []interface{}{c.Value}
	case ContainsFold:
		return "LOWER(" + c.Column + ") LIKE ?",
			[]interface{}{"%" + strings.ToLower(c.Value) + "%"}
	case HasTherapy:
		return "EXISTS (SELECT 1 FROM geriatric_therapies gt" +
				" WHERE gt.geriatric_id = geriatrics.id AND gt.therapy = ?" +
				" AND gt.deleted_at IS NULL)",
			[]interface{}{string(c.Therapy)}
	case Or:
		clauses := make([]string, 0, len(c))
		var args []interface{}
		for _, child := range c {
			clause, childArgs := condSQL(child)
			clauses = append(clauses, clause)
			args = append(args, childArgs...)
		}
		return "(" + strings.Join(clauses, " OR ") + ")", args
	}
	return "1 = 1", nil
}
