package raw

import "testing"

func TestGetDefault(t *testing.T) {
	c := New().Prefix("RAW_TEST_")
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("RAW_TEST_A", "1")
	t.Setenv("RAW_TEST_B", "yes")
	t.Setenv("RAW_TEST_C", "false")
	c := New().Prefix("RAW_TEST_")
	if !c.GetBool("A", false) || !c.GetBool("B", false) {
		t.Fatalf("truthy values not recognized")
	}
	if c.GetBool("C", true) {
		t.Fatalf("false not recognized")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatalf("default not used")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("RAW_TEST_N", "12")
	t.Setenv("RAW_TEST_BAD", "x")
	c := New().Prefix("RAW_TEST_")
	if got := c.GetInt("N", 0); got != 12 {
		t.Fatalf("got %d", got)
	}
	if got := c.GetInt("BAD", 5); got != 5 {
		t.Fatalf("got %d", got)
	}
}
