package database

import (
	"fmt"
	"strings"
)

// Operator is a comparison used in a filter condition
type Operator string

const (
	OpEq  Operator = "="
	OpGte Operator = ">="
	OpLte Operator = "<="
)

// Condition compares one column with a value
type Condition struct {
	Column   string
	Operator Operator
	Value    interface{}
}

// TextSearch matches Term as a case-insensitive substring of any of Columns
type TextSearch struct {
	Term    string
	Columns []string
}

// Filter is a conjunction of conditions plus an optional text search.
// Column names come from code, never from request input.
type Filter struct {
	Conditions []Condition
	Search     *TextSearch
}

// Eq adds an equality condition
func (f *Filter) Eq(column string, value interface{}) *Filter {
	f.Conditions = append(f.Conditions, Condition{Column: column, Operator: OpEq, Value: value})
	return f
}

// Gte adds a lower bound condition
func (f *Filter) Gte(column string, value interface{}) *Filter {
	f.Conditions = append(f.Conditions, Condition{Column: column, Operator: OpGte, Value: value})
	return f
}

// Lte adds an upper bound condition
func (f *Filter) Lte(column string, value interface{}) *Filter {
	f.Conditions = append(f.Conditions, Condition{Column: column, Operator: OpLte, Value: value})
	return f
}

// Match sets the free-text search
func (f *Filter) Match(term string, columns ...string) *Filter {
	f.Search = &TextSearch{Term: term, Columns: columns}
	return f
}

// Where renders the filter as a WHERE clause with positional placeholders
// starting at $1. It returns an empty string for an empty filter.
func (f Filter) Where() (string, []interface{}) {
	var parts []string
	var args []interface{}

	for _, c := range f.Conditions {
		args = append(args, c.Value)
		parts = append(parts, fmt.Sprintf("%s %s $%d", c.Column, c.Operator, len(args)))
	}

	if f.Search != nil && len(f.Search.Columns) > 0 {
		args = append(args, likePattern(f.Search.Term))
		ors := make([]string, len(f.Search.Columns))
		for i, col := range f.Search.Columns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, len(args))
		}
		parts = append(parts, "("+strings.Join(ors, " OR ")+")")
	}

	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// likePattern builds a substring pattern with LIKE wildcards in term escaped
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

// SortField orders by a single column
type SortField struct {
	Column string
	Desc   bool
}

// Sort is an ordered list of sort fields
type Sort []SortField

// OrderBy renders the sort as an ORDER BY clause
func (s Sort) OrderBy() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, f := range s {
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts[i] = f.Column + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// selectPage renders a paged SELECT over table
func selectPage(columns, table string, f Filter, s Sort, limit, offset int) (string, []interface{}) {
	where, args := f.Where()
	query := "SELECT " + columns + " FROM " + table + where + s.OrderBy()
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return query, args
}

// selectCount renders a COUNT over table
func selectCount(table string, f Filter) (string, []interface{}) {
	where, args := f.Where()
	return "SELECT COUNT(*) FROM " + table + where, args
}
