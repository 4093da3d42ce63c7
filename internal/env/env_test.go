package env

import (
	"testing"
	"time"
)

func TestStr(t *testing.T) {
	t.Setenv("ENV_TEST_STR", "")
	if got := Str("ENV_TEST_STR", "fallback"); got != "fallback" {
		t.Errorf("Str(empty) = %q, want fallback", got)
	}
	t.Setenv("ENV_TEST_STR", "value")
	if got := Str("ENV_TEST_STR", "fallback"); got != "value" {
		t.Errorf("Str = %q, want value", got)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 7},
		{"42", 42},
		{"-3", -3},
		{"abc", 7},
	}
	for _, tt := range tests {
		t.Setenv("ENV_TEST_INT", tt.val)
		if got := Int("ENV_TEST_INT", 7); got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestUint64(t *testing.T) {
	t.Setenv("ENV_TEST_U64", "18")
	if got := Uint64("ENV_TEST_U64", 1); got != 18 {
		t.Errorf("Uint64 = %d, want 18", got)
	}
	t.Setenv("ENV_TEST_U64", "-1")
	if got := Uint64("ENV_TEST_U64", 1); got != 1 {
		t.Errorf("Uint64(negative) = %d, want fallback 1", got)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		val      string
		fallback bool
		want     bool
	}{
		{"", true, true},
		{"", false, false},
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"yes", false, true},
		{"off", true, false},
		{" on ", false, true},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Setenv("ENV_TEST_BOOL", tt.val)
		if got := Bool("ENV_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("Bool(%q, %v) = %v, want %v", tt.val, tt.fallback, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		val  string
		want time.Duration
	}{
		{"", time.Second},
		{"1500", 1500 * time.Millisecond},
		{"250ms", 250 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"soon", time.Second},
	}
	for _, tt := range tests {
		t.Setenv("ENV_TEST_DUR", tt.val)
		if got := Duration("ENV_TEST_DUR", time.Second); got != tt.want {
			t.Errorf("Duration(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}
