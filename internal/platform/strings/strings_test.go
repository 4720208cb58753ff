package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// non-empty slice should be returned as-is
	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// empty slice should fall back to default
	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("roster", "name"); got != "roster" {
		t.Fatalf("MustString changed the value: %q", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for whitespace input")
		}
	}()
	MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/analytics", "/analytics"},
		{"analytics", "/analytics"},
		{"  /analytics/ ", "/analytics"},
		{"//roster//", "/roster"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q)=%q want %q", c.in, got, c.want)
		}
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for empty prefix")
		}
	}()
	MustPrefix(" / ")
}

func TestPtrDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatalf("Ptr of empty string must be nil")
	}
	p := Ptr("MD-1")
	if p == nil || *p != "MD-1" {
		t.Fatalf("Ptr round trip failed: %v", p)
	}
	if Deref(nil) != "" {
		t.Fatalf("Deref(nil) must be empty")
	}
	if Deref(p) != "MD-1" {
		t.Fatalf("Deref lost the value")
	}
}
