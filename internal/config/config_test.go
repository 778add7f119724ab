package config

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("PP_TEST_KEY", "hello")
	if got := Get("PP_TEST_KEY", "fallback"); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := Get("PP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("PP_TEST_EMPTY", "")
	if got := Get("PP_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("empty value should fall back, got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("PP_TEST_INT", "8")
	if got := GetInt("PP_TEST_INT", 3); got != 8 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("PP_TEST_INT", "eight")
	if got := GetInt("PP_TEST_INT", 3); got != 3 {
		t.Fatalf("non-numeric should fall back, got %d", got)
	}
	if got := GetInt("PP_TEST_INT_MISSING", 3); got != 3 {
		t.Fatalf("got %d", got)
	}
}

func TestGetFloat(t *testing.T) {
	t.Setenv("PP_TEST_FLOAT", "2.5")
	if got := GetFloat("PP_TEST_FLOAT", 1); got != 2.5 {
		t.Fatalf("got %v", got)
	}
	t.Setenv("PP_TEST_FLOAT", "x")
	if got := GetFloat("PP_TEST_FLOAT", 1); got != 1 {
		t.Fatalf("non-numeric should fall back, got %v", got)
	}
}
