package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"a", "b"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"x"}
	if got := IfEmpty(in, def); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("MustString = %q", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for blank input")
		}
	}()
	MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"auth", "/auth"},
		{"/listings/", "/listings"},
		{"  /bookings ", "/bookings"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for root path")
		}
	}()
	MustPrefix("//")
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("v")
	if p == nil || *p != "v" {
		t.Fatalf("Ptr(v) wrong")
	}
	if Deref(nil) != "" || Deref(p) != "v" {
		t.Fatalf("Deref wrong")
	}
}

func TestSQLNull(t *testing.T) {
	if SQLNull("  ") != nil {
		t.Fatalf("SQLNull(blank) should be nil")
	}
	if SQLNull("x") != "x" {
		t.Fatalf("SQLNull(x) should pass through")
	}
}
