package query

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"mixed case with padding", "  Hello   World  ", []string{"hello", "world"}},
		{"single term", "Redis", []string{"redis"}},
		{"duplicates kept", "go go go", []string{"go", "go", "go"}},
		{"order preserved", "Web Framework Core", []string{"web", "framework", "core"}},
		{"tabs and newlines", "one\ttwo\nthree", []string{"one", "two", "three"}},
		{"thai text", "ข้าวมันไก่ อร่อย", []string{"ข้าวมันไก่", "อร่อย"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw).Terms()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n  "} {
		ts := Normalize(raw)
		if !ts.IsEmpty() {
			t.Errorf("Normalize(%q).IsEmpty() = false, want true", raw)
		}
		if ts.Phrase() != "" {
			t.Errorf("Normalize(%q).Phrase() = %q, want empty", raw, ts.Phrase())
		}
	}
}

func TestPhrase(t *testing.T) {
	ts := Normalize("  ASP.NET   Core MVC ")
	if got, want := ts.Phrase(), "asp.net core mvc"; got != want {
		t.Errorf("Phrase() = %q, want %q", got, want)
	}
}

func TestEngineQuery_PlainTerms(t *testing.T) {
	ts := Normalize("hello world")
	if got, want := ts.EngineQuery(), "hello world"; got != want {
		t.Errorf("EngineQuery() = %q, want %q", got, want)
	}
}

func TestEngineQuery_EscapesOperators(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"c++", `c\+\+`},
		{"foo-bar", `foo\-bar`},
		{"a|b", `a\|b`},
		{"@field", `\@field`},
		{"star*", `star\*`},
		{"(group)", `\(group\)`},
		{`back\slash`, `back\\slash`},
		{"tag:value", `tag\:value`},
	}
	for _, tc := range tests {
		got := Normalize(tc.raw).EngineQuery()
		if got != tc.want {
			t.Errorf("EngineQuery(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
