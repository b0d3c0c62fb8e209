package dataset

import (
	"reflect"
	"strings"

	"github.com/goupdate/collbench/person"
	"github.com/goupdate/collbench/stream"
)

// FindCondition matches one exported field of a record.
// Op is one of eq (default), gt, lt, like; see compareValues for aliases.
type FindCondition struct {
	Field string
	Value interface{}
	Op    string
}

// panics on unknown condition
func checkCondition(cond string) {
	switch cond {
	case "AND", "OR", "":
	default:
		panic("unknown condition: \"" + cond + "\"")
	}
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func compareValues(v1, v2 interface{}, op string) bool {
	switch op {
	case "equal", "eq", "=", "":
		return v1 == v2
	case "gt", "more", ">":
		f1, ok1 := toFloat(v1)
		f2, ok2 := toFloat(v2)
		return ok1 && ok2 && f1 > f2
	case "lt", "less", "<":
		f1, ok1 := toFloat(v1)
		f2, ok2 := toFloat(v2)
		return ok1 && ok2 && f1 < f2
	case "like", "contains":
		str1, ok1 := v1.(string)
		str2, ok2 := v2.(string)
		return ok1 && ok2 && strings.Contains(str1, str2)
	default:
		return false
	}
}

func matchOne(val reflect.Value, cond FindCondition) bool {
	f := val.FieldByName(cond.Field)
	return f.IsValid() && f.CanInterface() && compareValues(f.Interface(), cond.Value, cond.Op)
}

// Match builds a record predicate. condition "AND" or "" requires every
// where clause to hold, "OR" any of them. No clauses match everything.
func Match(condition string, where ...FindCondition) func(person.Person) bool {
	checkCondition(condition)

	return func(p person.Person) bool {
		if len(where) == 0 {
			return true
		}
		val := reflect.ValueOf(p)
		if condition == "OR" {
			for _, cond := range where {
				if matchOne(val, cond) {
					return true
				}
			}
			return false
		}
		for _, cond := range where {
			if !matchOne(val, cond) {
				return false
			}
		}
		return true
	}
}

// Find returns the matching records in insertion order.
func (d *Dataset) Find(condition string, where ...FindCondition) []person.Person {
	return stream.Collect(stream.Filter(d.Values(), Match(condition, where...)))
}
