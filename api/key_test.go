package api

import "testing"

import "pgregory.net/rapid"

func TestKeyof(t *testing.T) {
	if Keyof([]byte("plumless")) != Keyof([]byte("plumless")) {
		t.Errorf("key derivation is not deterministic")
	}
	if Keyof([]byte("plumless")) == Keyof([]byte("buckeroo")) {
		t.Errorf("unexpected collision")
	}
}

func TestKeyofBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		item := rapid.SliceOf(rapid.Byte()).Draw(t, "item")
		key := Keyof(item)
		if key <= Minkeylimit {
			t.Errorf("key %v not above head sentinel", key)
		}
		if key >= Maxkeylimit {
			t.Errorf("key %v not below tail sentinel", key)
		}
	})
}
