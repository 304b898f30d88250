package normalize_test

import (
	"testing"

	"github.com/bistroboss/bistrohub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"User@Test.COM", "user@test.com"},
		{"  a@x.com  ", "a@x.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := normalize.Email(c.in); got != c.want {
			t.Errorf("Email(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Jane   Doe ", "Jane Doe"},
		{"Jane", "Jane"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Name(c.in); got != c.want {
			t.Errorf("Name(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
