package textutil

import "testing"

func TestStripTokens(t *testing.T) {
	testCases := []struct {
		in       string
		n        int
		expected string
	}{
		{"101 - 01 HN English II", 3, "HN English II"},
		{"2201 - 05 AP Calculus BC", 3, "AP Calculus BC"},
		{"101  -   01  HN  English II", 3, "HN English II"},
		{"101 - 01", 3, ""},
		{"", 3, ""},
	}
	for _, test := range testCases {
		got := StripTokens(test.in, test.n)
		if got != test.expected {
			t.Fatalf("StripTokens(%q, %d) = %q, expected %q", test.in, test.n, got, test.expected)
		}
	}
}

func TestStripEnclosing(t *testing.T) {
	got := StripEnclosing("(Last Updated: 10/12/2024)", "(Last Updated: ", ")")
	if got != "10/12/2024" {
		t.Fatalf("got %q", got)
	}
	got = StripEnclosing(" Student Grades 93.40% ", "Student Grades ", "%")
	if got != "93.40" {
		t.Fatalf("got %q", got)
	}
}
