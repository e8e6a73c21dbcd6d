package query

import "fmt"

// Condition represents a WHERE clause condition. Implementations
// generate SQL fragments and parameter maps using Spanner's named
// parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "placed") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

type eqCondition struct {
	field string
	value interface{}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("placed_at") generates "placed_at IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
}
