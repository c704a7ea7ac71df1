package main

import "github.com/brianvoe/gofakeit/v6"

// fakeKey is the demo's StringKey object: a generated username paired with
// the index it was generated at. Only the username is the key, so a
// duplicate username (gofakeit does produce them at large N) is rejected by
// Add with ErrAlreadyExists.
type fakeKey struct {
	name string
	seq  int
}

func (k *fakeKey) StringKey() string { return k.name }

func newFakeKeys(n int) []*fakeKey {
	out := make([]*fakeKey, n)
	for i := range out {
		out[i] = &fakeKey{name: gofakeit.Username(), seq: i}
	}
	return out
}
