package wordbreak_test

import (
	"strings"
	"testing"

	"github.com/wordkit/uax29/wordbreak"
)

var joinersInput = []byte("Hello, 世界. Tell me about your super-cool .com. I'm .01% interested and 3/4 of a mile away. Email me at foo@example.biz. #winning")

var joiners = &wordbreak.Joiners[[]byte]{
	Middle:  []rune("@-/"),
	Leading: []rune("#."),
}

type joinersTest struct {
	input string
	// word should be found in the plain iterator
	plain bool
	// word should be found in the iterator with joiners applied
	joined bool
}

var joinersTests = []joinersTest{
	{"Hello", true, true},
	{"世", true, true},
	{"super", true, false},
	{"-", true, false},
	{"cool", true, false},
	{"super-cool", false, true},
	{"com", true, false},
	{".com", false, true},
	{"01", true, false},
	{".01", false, true},
	{"3", true, false},
	{"3/4", false, true},
	{"foo", true, false},
	{"@", true, false},
	{"example.biz", true, false},
	{"foo@example.biz", false, true},
	{"#", true, false},
	{"winning", true, false},
	{"#winning", false, true},
}

func wordsOf(t *testing.T, data []byte, j *wordbreak.Joiners[[]byte]) []string {
	t.Helper()
	iter := wordbreak.FromBytes(data)
	if j != nil {
		iter.Joiners(j)
	}
	var got []string
	for iter.Next() {
		got = append(got, string(iter.Value()))
	}
	return got
}

func contains(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}

func TestJoiners(t *testing.T) {
	t.Parallel()

	plain := wordsOf(t, joinersInput, nil)
	joined := wordsOf(t, joinersInput, joiners)

	for _, test := range joinersTests {
		if got := contains(plain, test.input); got != test.plain {
			t.Errorf("plain iterator: %q: expected found=%v, got %v", test.input, test.plain, got)
		}
		if got := contains(joined, test.input); got != test.joined {
			t.Errorf("joined iterator: %q: expected found=%v, got %v", test.input, test.joined, got)
		}
	}
}

func TestJoinersRoundtrip(t *testing.T) {
	t.Parallel()

	joined := wordsOf(t, joinersInput, joiners)
	if got := strings.Join(joined, ""); got != string(joinersInput) {
		t.Errorf("joined words did not reconstruct the input:\n got  %q\n want %q", got, string(joinersInput))
	}
}

func TestJoinersSplitFunc(t *testing.T) {
	t.Parallel()

	sc := wordbreak.FromReader(strings.NewReader(string(joinersInput)))
	sc.Joiners(joiners)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}

	for _, test := range joinersTests {
		if got := contains(got, test.input); got != test.joined {
			t.Errorf("Scanner with joiners: %q: expected found=%v, got %v", test.input, test.joined, got)
		}
	}
}
