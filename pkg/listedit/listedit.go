// Package listedit implements the add / remove-at / update-at editing
// operations used by form-bound ordered lists. Every operation returns a new
// slice and leaves its input untouched.
package listedit

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address an element.
var ErrIndexOutOfRange = errors.New("index out of range")

// Append returns a copy of items with v added at the end.
func Append[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

// RemoveAt returns a copy of items without the element at i.
func RemoveAt[T any](items []T, i int) ([]T, error) {
	if err := checkIndex(len(items), i); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}

// UpdateAt returns a copy of items with the element at i replaced by v.
func UpdateAt[T any](items []T, i int, v T) ([]T, error) {
	if err := checkIndex(len(items), i); err != nil {
		return nil, err
	}
	out := append([]T(nil), items...)
	out[i] = v
	return out, nil
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}
