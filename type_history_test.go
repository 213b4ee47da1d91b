package fundpool

import "testing"

func TestHistory_ValueAsOf(t *testing.T) {
	h := &History[float64]{}
	// Appended out of order on purpose.
	h.Append(day("2024-03-01"), 30)
	h.Append(day("2024-01-01"), 10)
	h.Append(day("2024-02-01"), 20)

	testCases := []struct {
		name  string
		on    string
		want  float64
		found bool
	}{
		{name: "before first fact", on: "2023-12-31", want: 0, found: false},
		{name: "exact match", on: "2024-02-01", want: 20, found: true},
		{name: "between facts", on: "2024-02-15", want: 20, found: true},
		{name: "after last fact", on: "2024-12-31", want: 30, found: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := h.ValueAsOf(day(tc.on))
			if found != tc.found || got != tc.want {
				t.Errorf("ValueAsOf(%s) = (%v, %v), want (%v, %v)", tc.on, got, found, tc.want, tc.found)
			}
		})
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2024-01-01"), 10)
	h.Append(day("2024-01-01"), 11)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after duplicate append", h.Len())
	}
	if got, _ := h.Get(day("2024-01-01")); got != 11 {
		t.Errorf("Get() = %v, want the last written value 11", got)
	}
}

func TestHistory_Empty(t *testing.T) {
	h := &History[float64]{}
	if _, found := h.ValueAsOf(day("2024-01-01")); found {
		t.Error("ValueAsOf on empty history reported a value")
	}
	if d, v := h.Latest(); !d.IsZero() || v != 0 {
		t.Errorf("Latest() on empty history = (%v, %v), want zero values", d, v)
	}
}

func TestHistory_ValuesChronological(t *testing.T) {
	h := &History[string]{}
	h.Append(day("2024-02-01"), "b")
	h.Append(day("2024-01-01"), "a")
	h.Append(day("2024-03-01"), "c")

	var got string
	for _, v := range h.Values() {
		got += v
	}
	if got != "abc" {
		t.Errorf("Values() order = %q, want %q", got, "abc")
	}
}
