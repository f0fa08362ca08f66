package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"fits":        {text: "short line", width: 20, exp: "short line"},
		"wraps words": {text: "the quick brown fox", width: 10, exp: "the quick\nbrown fox"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", Wrap(tt.text, tt.width), tt.exp)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"short":   {text: "hello", width: 10, exp: "hello"},
		"cut":     {text: "hello world", width: 6, exp: "hello…"},
		"unicode": {text: "héllo wörld", width: 6, exp: "héllo…"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "truncated", Truncate(tt.text, tt.width), tt.exp)
		})
	}
}

func TestHumanize(t *testing.T) {
	testutil.AssertEqual(t, "humanized", Humanize("open_building_inventory"), "Open building inventory")
	testutil.AssertEqual(t, "empty", Humanize(""), "")
}
