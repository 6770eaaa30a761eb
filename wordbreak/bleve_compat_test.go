package wordbreak_test

import (
	"bytes"
	"testing"

	"github.com/wordkit/uax29/wordbreak"
)

func TestBleveNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected bool
	}{
		{"3.5", true},
		{"25", true},
		{"3,456.789", true},
		{"cat3.5", false},
		{"age", false},
		{"", true}, // vacuously true: an empty loop satisfies every rule
	}

	for _, test := range tests {
		if got := wordbreak.BleveNumeric([]byte(test.token)); got != test.expected {
			t.Errorf("BleveNumeric(%q) = %v, want %v", test.token, got, test.expected)
		}
	}
}

func TestBleveIdeographic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		expected bool
	}{
		{"こんにちは", true},
		{"你好世界", true},
		{"サッカ", true},
		{"hello", false},
		{"", true}, // vacuously true: an empty loop satisfies every rule
	}

	for _, test := range tests {
		if got := wordbreak.BleveIdeographic([]byte(test.token)); got != test.expected {
			t.Errorf("BleveIdeographic(%q) = %v, want %v", test.token, got, test.expected)
		}
	}
}

func TestBleveCompatWithSegmentation(t *testing.T) {
	t.Parallel()

	input := []byte("age 25")
	expected := [][]byte{[]byte("age"), []byte(" "), []byte("25")}

	iter := wordbreak.FromBytes(input)
	var i int
	for iter.Next() {
		if !bytes.Equal(iter.Value(), expected[i]) {
			t.Fatalf("token %d: expected %q, got %q", i, expected[i], iter.Value())
		}
		i++
	}
	if i != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), i)
	}
	if !wordbreak.BleveNumeric(expected[2]) {
		t.Errorf("expected %q to be BleveNumeric", expected[2])
	}
}
