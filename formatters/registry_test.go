package formatters_test

import (
	"bytes"
	"testing"

	"github.com/darianmavgo/arff2sql/formatters"
	_ "github.com/darianmavgo/arff2sql/formatters/all"
)

func TestDriversRegistered(t *testing.T) {
	got := formatters.Drivers()
	want := []string{"sql", "sqlite", "xlsx"}
	if len(got) != len(want) {
		t.Fatalf("got drivers %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("driver %d: got %q, want %q", i, got[i], name)
		}
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	var buf bytes.Buffer
	if _, err := formatters.Open("csv", &buf, nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestOpenDefaultDialect(t *testing.T) {
	var buf bytes.Buffer
	f, err := formatters.Open("sql", &buf, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
