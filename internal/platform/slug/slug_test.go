package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Python Fundamentals":     "python-fundamentals",
		"  Git & Version Control": "git-and-version-control",
		"CI/CD":                   "ci-cd",
		"C++":                     "c-plus-plus",
		"!!!":                     "untitled",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNumbered(t *testing.T) {
	t.Parallel()
	if got := Numbered(4, "SQL & Databases"); got != "04-sql-and-databases" {
		t.Fatalf("got %q", got)
	}
}
