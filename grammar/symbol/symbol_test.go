package symbol

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{
			text: "Expr",
			kind: KindNonTerminal,
		},
		{
			text: "S",
			kind: KindNonTerminal,
		},
		{
			text: "id",
			kind: KindTerminal,
		},
		{
			text: "+",
			kind: KindTerminal,
		},
		{
			text: "Ω",
			kind: KindNonTerminal,
		},
		{
			text: "",
			kind: KindTerminal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sym := New(1, tt.text)
			if sym.Kind() != tt.kind {
				t.Fatalf("unexpected kind\nwant: %v\ngot: %v", tt.kind, sym.Kind())
			}
			if sym.IsTerminal() == sym.IsNonTerminal() {
				t.Fatalf("a symbol must be either a terminal or a non-terminal: %v", sym)
			}
			if sym.Text() != tt.text || sym.ID() != 1 {
				t.Fatalf("unexpected symbol: %v", sym)
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet(3, 1)
	if !s.Add(2) {
		t.Fatal("Add must report a new member")
	}
	if s.Add(2) {
		t.Fatal("Add must not report an existing member")
	}
	if !s.Contains(1) || s.Contains(4) {
		t.Fatalf("unexpected membership: %v", s)
	}

	c := s.Clone()
	if !c.Equal(s) {
		t.Fatalf("a clone must equal the original\nwant: %v\ngot: %v", s, c)
	}
	if !c.Merge(NewSet(4, 1)) {
		t.Fatal("Merge must report a change")
	}
	if c.Merge(NewSet(4)) {
		t.Fatal("Merge must not report a change when nothing was added")
	}
	if s.Contains(4) {
		t.Fatal("a clone must not alias the original")
	}

	sorted := c.Sorted()
	want := []ID{1, 2, 3, 4}
	if len(sorted) != len(want) {
		t.Fatalf("unexpected members\nwant: %v\ngot: %v", want, sorted)
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("unexpected order\nwant: %v\ngot: %v", want, sorted)
		}
	}
}
