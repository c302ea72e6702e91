package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("order_status", "delivered") generates "order_status = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// gtCondition implements strict greater-than comparison.
type gtCondition struct {
	field string
	value interface{}
}

// Gt creates a WHERE condition for "field > value".
func Gt(field string, value interface{}) Condition {
	return &gtCondition{field: field, value: value}
}

// SQL generates the SQL fragment for greater-than comparison.
func (c *gtCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s > @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// lteCondition implements less-than-or-equal comparison.
type lteCondition struct {
	field string
	value interface{}
}

// Lte creates a WHERE condition for "field <= value".
func Lte(field string, value interface{}) Condition {
	return &lteCondition{field: field, value: value}
}

// SQL generates the SQL fragment for less-than-or-equal comparison.
func (c *lteCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s <= @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// inCondition implements set membership (field IN UNNEST(@p)).
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition matching any of the given values.
// Spanner binds array parameters through UNNEST.
// Example: In("genre", []string{"Fiction", "Sci-Fi"}) generates
// "genre IN UNNEST(@p0)".
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

// SQL generates the SQL fragment for set membership.
func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.values}
}

// containsFoldCondition implements case-insensitive substring match.
type containsFoldCondition struct {
	field   string
	keyword string
}

// ContainsFold creates a WHERE condition for a case-insensitive substring
// match of keyword against field. LIKE metacharacters in the keyword are
// escaped so user input cannot widen the match.
// Example: ContainsFold("title", "dun") generates
// "LOWER(title) LIKE @p0" with parameter "%dun%".
func ContainsFold(field, keyword string) Condition {
	return &containsFoldCondition{field: field, keyword: keyword}
}

// SQL generates the SQL fragment for case-insensitive substring match.
func (c *containsFoldCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, paramName)
	pattern := "%" + escapeLike(strings.ToLower(c.keyword)) + "%"
	return sql, map[string]interface{}{paramName: pattern}
}

// escapeLike escapes LIKE metacharacters in a literal keyword.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// orCondition combines child conditions with OR.
type orCondition struct {
	conditions []Condition
}

// Or creates a WHERE condition that matches when any child condition
// matches. The group is parenthesized so it composes with the builder's
// AND logic.
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

// SQL generates the parenthesized OR group.
func (c *orCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	parts := make([]string, 0, len(c.conditions))
	params := make(map[string]interface{})

	for _, cond := range c.conditions {
		fragment, condParams := cond.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}

	return "(" + strings.Join(parts, " OR ") + ")", params
}
