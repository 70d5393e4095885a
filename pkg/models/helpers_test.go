package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertSameItems compares by pointer identity; assert.Equal would treat two
// distinct accounts with the same name and segments as equal.
func assertSameItems[T any](t *testing.T, want, got []*T, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range want {
		ok = assert.Same(t, want[i], got[i], msgAndArgs...) && ok
	}
	return ok
}

func assertHas[T any](t *testing.T, items []*T, item *T, msgAndArgs ...any) bool {
	t.Helper()
	if containsPtr(items, item) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("%p not found in %v", item, items), msgAndArgs...)
}

func assertHasNot[T any](t *testing.T, items []*T, item *T, msgAndArgs ...any) bool {
	t.Helper()
	if !containsPtr(items, item) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("%p should not be in %v", item, items), msgAndArgs...)
}

func containsPtr[T any](items []*T, item *T) bool {
	return countPtr(items, item) > 0
}

func countPtr[T any](items []*T, item *T) int {
	count := 0
	for _, candidate := range items {
		if candidate == item {
			count++
		}
	}
	return count
}
