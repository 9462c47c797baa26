package logger

import "testing"

func TestInitAcceptsBothFormats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		if _, err := Init("debug", format); err != nil {
			t.Fatalf("init %s: %v", format, err)
		}
		if L() == nil {
			t.Fatalf("global not set for %s", format)
		}
	}
}

func TestInitRejectsBadInput(t *testing.T) {
	if _, err := Init("loud", "json"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := Init("info", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
