package mathexpr

import "testing"

func TestSanitize_AllowListEnforced(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean passes", "2*x+1", "2*x+1"},
		{"emoji stripped", "2+2 😀", "2+2"},
		{"stray arabic letters stripped", "x + قلم", "x +"},
		{"degree sign stripped", "60°", "60"},
		{"currency stripped", "5$+1", "5 +1"},
		{"brackets kept", "[1,2;3,4]", "[1,2;3,4]"},
		{"underscore and bar kept", "a_1|b", "a_1|b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sanitize(c.in); got != c.want {
				t.Fatalf("Sanitize(%q) = %q want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitize_Whitespace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapse runs", "2  +   3", "2 + 3"},
		{"trim", "  x+1  ", "x+1"},
		{"newlines and tabs", "2\n+\t3", "2 + 3"},
		{"space inside parens", "( x + 1 )", "(x + 1)"},
		{"whitespace only", " \t\n ", ""},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Sanitize(c.in); got != c.want {
				t.Fatalf("Sanitize(%q) = %q want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	ins := []string{"2*x+1", "sin(60*pi/180)", "( a )", "x + قلم", "2+2 😀"}
	for _, in := range ins {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Fatalf("Sanitize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
