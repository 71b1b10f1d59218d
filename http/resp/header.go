package resp

import "strings"

// A Header is a single name-value pair held by a *Response.
type Header struct {
	Name  string
	Value string
}

// A headerStore keeps headers in insertion order,
// keyed case-insensitively while preserving the casing first seen.
//
// Setting a name already present overwrites its value in place,
// so forward iteration matches insertion order.
type headerStore struct {
	entries []Header
	index   map[string]int
}

func newHeaderStore() *headerStore {
	return &headerStore{index: make(map[string]int)}
}

// Set stores value under name, overwriting any prior value for name
// while keeping its original slot and casing.
func (hs *headerStore) Set(name, value string) {
	key := strings.ToLower(name)
	if i, ok := hs.index[key]; ok {
		hs.entries[i].Value = value
		return
	}

	hs.index[key] = len(hs.entries)
	hs.entries = append(hs.entries, Header{Name: name, Value: value})
}

// Get retrieves the value stored under name, matching case-insensitively.
func (hs *headerStore) Get(name string) (string, bool) {
	i, ok := hs.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}

	return hs.entries[i].Value, true
}

// Del removes the header stored under name, matching case-insensitively.
// Headers inserted after it shift up one slot.
func (hs *headerStore) Del(name string) {
	key := strings.ToLower(name)
	i, ok := hs.index[key]
	if !ok {
		return
	}

	hs.entries = append(hs.entries[:i], hs.entries[i+1:]...)
	delete(hs.index, key)
	for k, j := range hs.index {
		if j > i {
			hs.index[k] = j - 1
		}
	}
}

// All returns every stored header in insertion order.
func (hs *headerStore) All() []Header { return hs.entries }

// Len returns the count of stored headers.
func (hs *headerStore) Len() int { return len(hs.entries) }
