// SPDX-License-Identifier: MIT

package qubit

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ErrInvalidQubit indicates a nil or non-comparable qubit label.
var ErrInvalidQubit = errors.New("qubit: label must be a non-nil comparable value")

// Qubit is a qubit label. Any comparable value is accepted; ints and strings
// are the common cases.
type Qubit = any

// Validate reports ErrInvalidQubit when q cannot be used as a map key.
func Validate(q Qubit) error {
	if q == nil {
		return ErrInvalidQubit
	}
	if !reflect.TypeOf(q).Comparable() {
		return fmt.Errorf("%w: %T", ErrInvalidQubit, q)
	}

	return nil
}

// TypeName returns the name used as the primary sort key of q.
func TypeName(q Qubit) string {
	return fmt.Sprintf("%T", q)
}

// Compare returns -1, 0 or +1 comparing a and b in canonical qubit order.
// Compare(a, b) == 0 exactly when a == b.
//
// Steps:
//  1. Different type names ⇒ order by type name.
//  2. Same type ⇒ natural order of the underlying kind.
//  3. Composite kinds compare field by field (structs), element by element
//     (arrays), by dynamic type then value (interfaces), or by address.
func Compare(a, b Qubit) int {
	// 1) Primary key: runtime type name
	ta, tb := TypeName(a), TypeName(b)
	if ta != tb {
		return strings.Compare(ta, tb)
	}
	if a == nil { // both nil: same type name "<nil>"
		return 0
	}
	// same name, different packages
	if c := compareTypes(reflect.TypeOf(a), reflect.TypeOf(b)); c != 0 {
		return c
	}

	// 2) + 3)
	return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func compareTypes(a, b reflect.Type) int {
	if a == b {
		return 0
	}
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}

	return strings.Compare(a.PkgPath(), b.PkgPath())
}

// compareValues orders two values of the same comparable type.
func compareValues(va, vb reflect.Value) int {
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := va.Complex(), vb.Complex()
		if c := cmp.Compare(real(ca), real(cb)); c != 0 {
			return c
		}

		return cmp.Compare(imag(ca), imag(cb))
	case reflect.String:
		return strings.Compare(va.String(), vb.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(va.Pointer(), vb.Pointer())
	case reflect.Interface:
		switch {
		case va.IsNil() && vb.IsNil():
			return 0
		case va.IsNil():
			return -1
		case vb.IsNil():
			return 1
		}
		ea, eb := va.Elem(), vb.Elem()
		if c := compareTypes(ea.Type(), eb.Type()); c != 0 {
			return c
		}

		return compareValues(ea, eb)
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if c := compareValues(va.Field(i), vb.Field(i)); c != 0 {
				return c
			}
		}
	case reflect.Array:
		for i := 0; i < va.Len(); i++ {
			if c := compareValues(va.Index(i), vb.Index(i)); c != 0 {
				return c
			}
		}
	}

	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Qubit) bool { return Compare(a, b) < 0 }

// Sort sorts qs in place in canonical order.
func Sort(qs []Qubit) {
	slices.SortStableFunc(qs, Compare)
}

// Sorted returns a sorted copy of qs.
func Sorted(qs []Qubit) []Qubit {
	out := slices.Clone(qs)
	Sort(out)

	return out
}

// Dedup returns the distinct labels of qs in canonical order.
func Dedup(qs []Qubit) []Qubit {
	out := Sorted(qs)

	return slices.CompactFunc(out, func(a, b Qubit) bool { return Compare(a, b) == 0 })
}

// Ints is a convenience for building a label list from integer indices.
func Ints(ids ...int) []Qubit {
	out := make([]Qubit, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
