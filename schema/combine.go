package schema

import (
	"fmt"
	"reflect"
)

// IntegrityError reports two subqueries of a nested query type answering
// the same query key.
type IntegrityError struct {
	Parent string
	Key    string
}

// Error returns the error string.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("schema: key %q is answered by more than one subquery of %s", e.Key, e.Parent)
}

// Combine merges the registries of the subqueries of parent.
func Combine(parent string, subqueries ...Registry) (Registry, error) {
	size := 0
	for _, sub := range subqueries {
		size += len(sub)
	}
	out := make(Registry, size)
	for _, sub := range subqueries {
		for _, key := range sub.Keys() {
			if _, dup := out[key]; dup {
				return nil, &IntegrityError{Parent: parent, Key: key}
			}
			out[key] = sub[key]
		}
	}
	return out, nil
}

// CombineSubqueries merges the registries of the subqueries of P. A key
// answered by two subqueries panics with *IntegrityError, since the
// generated query type could never dispatch it.
func CombineSubqueries[P any](subqueries []Registry) Registry {
	out, err := Combine(reflect.TypeFor[P]().String(), subqueries...)
	if err != nil {
		panic(err)
	}
	return out
}
