package domain

import "fmt"

// Operator compares a document field to a value.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

var operatorSQL = map[Operator]string{
	OpEqual:        "=",
	OpNotEqual:     "<>",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
}

// Condition is one field/operator/value constraint of a collection query.
type Condition struct {
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

func Where(field string, op Operator, value interface{}) Condition {
	return Condition{Field: field, Operator: op, Value: value}
}

// SQL returns the SQL comparison operator.
func (o Operator) SQL() (string, error) {
	s, ok := operatorSQL[o]
	if !ok {
		return "", ValidationError{Field: "operator", Message: fmt.Sprintf("unsupported operator %q", o)}
	}
	return s, nil
}
