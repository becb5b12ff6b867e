// ABOUTME: Tests for the tagged attribute value type
// ABOUTME: Verifies rendering and equality across value types

package attrs

import "testing"

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"string", NewStringValue("abc"), "abc"},
		{"int", NewIntValue(42), "42"},
		{"float", NewFloatValue(87.5), "87.50"},
		{"bool", NewBoolValue(true), "true"},
		{"list", NewListValue([]string{"a", "b"}), "[a, b]"},
	}

	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("%s: expected '%s', got '%s'", tc.name, tc.want, got)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !NewStringValue("x").Equal(NewStringValue("x")) {
		t.Error("Expected equal strings")
	}
	if NewStringValue("x").Equal(NewIntValue(0)) {
		t.Error("Expected different types to be unequal")
	}
	if !NewListValue([]string{"a", "b"}).Equal(NewListValue([]string{"a", "b"})) {
		t.Error("Expected equal lists")
	}
	if NewListValue([]string{"a"}).Equal(NewListValue([]string{"a", "b"})) {
		t.Error("Expected lists of different length to be unequal")
	}
}

func TestListValueIsCopied(t *testing.T) {
	src := []string{"a"}
	v := NewListValue(src)
	src[0] = "mutated"

	if v.List[0] != "a" {
		t.Errorf("Expected 'a', got '%s'", v.List[0])
	}
}
