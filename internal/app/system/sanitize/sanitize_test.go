package sanitize_test

import (
	"testing"

	"github.com/bistroboss/bistrohub/internal/app/system/sanitize"
)

func TestText_StripsScript(t *testing.T) {
	got := sanitize.Text(`Caesar Salad<script>alert("x")</script>`)
	if got != "Caesar Salad" {
		t.Errorf("got %q, want %q", got, "Caesar Salad")
	}
}

func TestText_StripsTagsKeepsContent(t *testing.T) {
	got := sanitize.Text("<b>Spicy</b> chicken & rice")
	if got != "Spicy chicken & rice" {
		t.Errorf("got %q, want %q", got, "Spicy chicken & rice")
	}
}

func TestText_PlainPassesThrough(t *testing.T) {
	got := sanitize.Text("  Margherita Pizza ")
	if got != "Margherita Pizza" {
		t.Errorf("got %q, want %q", got, "Margherita Pizza")
	}
}
