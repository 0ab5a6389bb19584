package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestStandardErrorFormat(t *testing.T) {
	err := NewStandardError(CategoryConfig, "BAD", "broken", nil)

	if got := err.Error(); got != "[CONFIG:BAD] broken" {
		t.Errorf("expected=%q, got=%q", "[CONFIG:BAD] broken", got)
	}
	if !strings.HasSuffix(err.Caller, "TestStandardErrorFormat") {
		t.Errorf("expected caller to be the test function, got %q", err.Caller)
	}
}

func TestStandardErrorUnwrap(t *testing.T) {
	err := ReadFailed("song.stl", fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Category != CategoryIO {
		t.Errorf("expected=%q, got=%q", CategoryIO, err.Category)
	}
	if err.Context["path"] != "song.stl" {
		t.Errorf("expected path in context, got %v", err.Context)
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("message should include the cause: %q", err.Error())
	}
	if !strings.HasSuffix(err.Caller, "TestStandardErrorUnwrap") {
		t.Errorf("expected caller to be the test function, got %q", err.Caller)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorCategory
	}{
		{InvalidConfig("stellar.toml", stderrors.New("bad toml")), CategoryConfig},
		{VersionMismatch("0.3.0", ">= 1.0"), CategoryVersion},
		{SourceFailed("a.stl", stderrors.New("boom")), CategorySyntax},
		{stderrors.New("plain"), ""},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.err); got != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, got)
		}
	}
}
