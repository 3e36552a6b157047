package collectors

import (
	"fmt"
	"strings"

	"github.com/planz/planz/pkg/domain"
)

// fieldColumns maps the document field names a collection can be queried
// by to their SQL columns.
type fieldColumns map[string]string

var eventFields = fieldColumns{
	"id":                  "id",
	"title":               "title",
	"date":                "date",
	"zone":                "zone",
	"category":            "category",
	"price":               "price",
	"maxParticipants":     "max_participants",
	"currentParticipants": "current_participants",
}

var appInfoFields = fieldColumns{
	"id":       "id",
	"name":     "name",
	"version":  "version",
	"isActive": "is_active",
}

// where renders conditions as a parameterized WHERE clause. Unknown
// fields and operators are rejected before any SQL is built.
func (f fieldColumns) where(collection string, conditions []domain.Condition) (string, []interface{}, error) {
	if len(conditions) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(conditions))
	args := make([]interface{}, 0, len(conditions))
	for _, c := range conditions {
		column, ok := f[c.Field]
		if !ok {
			return "", nil, domain.ValidationError{
				Field:   "field",
				Message: fmt.Sprintf("%s cannot be queried by %q", collection, c.Field),
			}
		}
		op, err := c.Operator.SQL()
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, fmt.Sprintf("%s %s ?", column, op))
		args = append(args, c.Value)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
