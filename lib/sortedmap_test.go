package lib

import (
	"reflect"
	"testing"
)

func TestSortedMap(t *testing.T) {
	t.Run("keeps keys sorted as they are set", func(t *testing.T) {
		sm := NewSortedMap[int]()
		sm.Set("c", 3)
		sm.Set("a", 1)
		sm.Set("b", 2)
		sm.Set("a", 10)

		expected := []string{"a", "b", "c"}
		if !reflect.DeepEqual(expected, sm.Keys) {
			t.Errorf("want %v, but got %v", expected, sm.Keys)
		}
		if v, _ := sm.Get("a"); v != 10 {
			t.Errorf("want %d, but got %d", 10, v)
		}
	})

	t.Run("deletes keys", func(t *testing.T) {
		sm := NewSortedMap[string]()
		sm.Set("a", "x")
		sm.Set("b", "y")

		if !sm.Delete("a") {
			t.Errorf("want a to be deleted")
		}
		if sm.Delete("missing") {
			t.Errorf("want missing key to report false")
		}
		expected := []string{"b"}
		if !reflect.DeepEqual(expected, sm.Keys) {
			t.Errorf("want %v, but got %v", expected, sm.Keys)
		}
		if sm.Len() != 1 {
			t.Errorf("want %d, but got %d", 1, sm.Len())
		}
	})
}
