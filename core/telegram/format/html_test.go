package format

import "testing"

func TestEscapeHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"", ""},
		{"Fish & Chips", "Fish &amp; Chips"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"a < b > c", "a &lt; b &gt; c"},
	}
	for _, tc := range cases {
		if got := EscapeHTML(tc.in); got != tc.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
