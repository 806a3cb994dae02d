package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause.
type Condition interface {
	render(w *sqlWriter)
}

type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr copies raw SQL, binding each '?' to the next argument.
func (w *sqlWriter) expr(raw string, exprArgs []any) {
	next := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(raw[i])
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.buf.WriteString(" WHERE ")
		} else {
			w.buf.WriteString(" AND ")
		}
		c.render(w)
	}
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func (c compareCondition) render(w *sqlWriter) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(c.op)
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: " = ", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: " >= ", value: value}
}

type inCondition struct {
	column string
	values []any
}

func (c inCondition) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}
	w.buf.WriteString(c.column)
	w.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InIDs is In for string id lists.
func InIDs(column string, ids []string) Condition {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return inCondition{column: column, values: values}
}

type isNullCondition struct {
	column string
	not    bool
}

func (c isNullCondition) render(w *sqlWriter) {
	w.buf.WriteString(c.column)
	if c.not {
		w.buf.WriteString(" IS NOT NULL")
		return
	}
	w.buf.WriteString(" IS NULL")
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func IsNotNull(column string) Condition {
	return isNullCondition{column: column, not: true}
}

type exprCondition struct {
	raw  string
	args []any
}

func (c exprCondition) render(w *sqlWriter) {
	w.expr(c.raw, c.args)
}

func Expr(raw string, args ...any) Condition {
	return exprCondition{raw: raw, args: args}
}
