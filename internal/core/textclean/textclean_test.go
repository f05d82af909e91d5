package textclean

import "testing"

func TestCleanEmpty(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	if got := Clean("  a\t\tb \n c  "); got != "a b c" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanRepairsUTF8(t *testing.T) {
	in := "ok\xff\xfetext"
	if got := Clean(in); got != "oktext" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanStripsFormatChars(t *testing.T) {
	// U+200D ZWJ is category Cf
	if got := Clean("a\u200db"); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanNFC(t *testing.T) {
	// e + combining acute composes to a single rune
	if got := Clean("e\u0301"); got != "\u00e9" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if got := Clean("  x   y  "); got != "x y" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
