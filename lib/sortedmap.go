package lib

import (
	"sort"
)

type SortedMap[T any] struct {
	Keys   []string
	Values map[string]T
}

func NewSortedMap[T any]() *SortedMap[T] {
	return &SortedMap[T]{
		Keys:   make([]string, 0),
		Values: map[string]T{},
	}
}

func (sm *SortedMap[T]) Set(key string, value T) {
	if _, ok := sm.Values[key]; !ok {
		index := sort.SearchStrings(sm.Keys, key)
		sm.Keys = append(sm.Keys, "")
		copy(sm.Keys[index+1:], sm.Keys[index:])
		sm.Keys[index] = key
	}
	sm.Values[key] = value
}

func (sm *SortedMap[T]) Get(key string) (T, bool) {
	val, ok := sm.Values[key]
	return val, ok
}

// Delete reports whether the key was present.
func (sm *SortedMap[T]) Delete(key string) bool {
	if _, ok := sm.Values[key]; !ok {
		return false
	}
	index := sort.SearchStrings(sm.Keys, key)
	sm.Keys = append(sm.Keys[:index], sm.Keys[index+1:]...)
	delete(sm.Values, key)
	return true
}

func (sm *SortedMap[T]) Clear() {
	sm.Keys = make([]string, 0)
	sm.Values = map[string]T{}
}

func (sm *SortedMap[T]) Iterate(f func(key string, value T)) {
	for _, key := range sm.Keys {
		f(key, sm.Values[key])
	}
}

func (sm *SortedMap[T]) Len() int {
	return len(sm.Values)
}
