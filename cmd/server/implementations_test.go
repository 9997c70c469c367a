package main

import "testing"

func TestSequenceGenerator_Next(t *testing.T) {
	var seq SequenceGenerator = NewSequenceGenerator()
	for want := uint64(1); want <= 3; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("Expected %d, got: %d", want, got)
		}
	}
}
