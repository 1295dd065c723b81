package config

import (
	"testing"
	"time"

	"slugspot/internal/platform/testkit"
)

func TestMayStringAndPrefix(t *testing.T) {
	t.Setenv("CFGTEST_AUTH_SECRET", "s3cret")
	c := New().Prefix("CFGTEST_").Prefix("AUTH_")
	if got := c.MayString("SECRET", ""); got != "s3cret" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NOPE", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestMustStringPanicsWhenMissing(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	testkit.MustPanic(t, func() { c.MustString("DEFINITELY_MISSING") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("CFGTEST_PORT", "4000")
	c := New().Prefix("CFGTEST_")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("CFGTEST_PORT", "70000")
	testkit.MustPanic(t, func() { c.MustPort("PORT") })
}

func TestMayIntBoolDuration(t *testing.T) {
	c := New().Prefix("CFGTEST_")

	t.Setenv("CFGTEST_N", "12")
	if got := c.MayInt("N", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("CFGTEST_N", "nan")
	if got := c.MayInt("N", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}

	t.Setenv("CFGTEST_B", "true")
	if !c.MayBool("B", false) {
		t.Fatalf("MayBool true")
	}

	t.Setenv("CFGTEST_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("CFGTEST_D", "whenever")
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_DOMAINS", "ucsc.edu, berkeley.edu , ")
	got := c.MayCSV("DOMAINS", nil)
	if len(got) != 2 || got[0] != "ucsc.edu" || got[1] != "berkeley.edu" {
		t.Fatalf("MayCSV = %v", got)
	}
	if def := c.MayCSV("NOPE", []string{"x"}); len(def) != 1 || def[0] != "x" {
		t.Fatalf("MayCSV default = %v", def)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_SORT", "Newest")
	if got := c.MayEnum("SORT", "newest", "newest", "alphabetical", "top_rated"); got != "Newest" {
		t.Fatalf("MayEnum case-insensitive match = %q", got)
	}
	t.Setenv("CFGTEST_SORT", "bogus")
	testkit.MustPanic(t, func() { c.MayEnum("SORT", "newest", "newest", "alphabetical", "top_rated") })
}
