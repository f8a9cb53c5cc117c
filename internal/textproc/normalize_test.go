package textproc

import "testing"

func TestNormalizeStripsMarkup(t *testing.T) {
	got := Normalize("<html><body><h1>Title</h1><p>Hello <b>world</b></p></body></html>")
	want := "Title Hello world"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("one\t\ttwo\n\nthree    four ")
	want := "one two three four"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeDiscardsScriptAndStyle(t *testing.T) {
	got := Normalize("<p>visible</p><script>var x = 1;</script><style>p { color: red }</style>")
	if got != "visible" {
		t.Errorf("Expected script/style content to be discarded, got %q", got)
	}
}

func TestNormalizePlainTextPassthrough(t *testing.T) {
	got := Normalize("just plain text")
	if got != "just plain text" {
		t.Errorf("Expected plain text unchanged, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("  Some <i>mixed</i>   input\nwith lines  ")
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Expected normalization to be idempotent: %q != %q", once, twice)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three"); got != 3 {
		t.Errorf("Expected 3 words, got %d", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("Expected 0 words for blank input, got %d", got)
	}
}
