package symbol

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

type Kind string

const (
	KindNonTerminal = Kind("non-terminal")
	KindTerminal    = Kind("terminal")
)

func (k Kind) String() string {
	return string(k)
}

// ID identifies a symbol within a vocabulary. IDs are chosen by whoever builds the
// vocabulary and carry no meaning beyond identity.
type ID int

func (id ID) Int() int {
	return int(id)
}

// Symbol is an immutable vocabulary entry.
type Symbol struct {
	id   ID
	text string
	kind Kind
}

// New creates a symbol whose kind depends on the case of the first character of text:
// an upper-case letter makes a non-terminal, anything else makes a terminal.
func New(id ID, text string) *Symbol {
	r, _ := utf8.DecodeRuneInString(text)
	if unicode.IsUpper(r) {
		return NewNonTerminal(id, text)
	}
	return NewTerminal(id, text)
}

func NewTerminal(id ID, text string) *Symbol {
	return &Symbol{
		id:   id,
		text: text,
		kind: KindTerminal,
	}
}

func NewNonTerminal(id ID, text string) *Symbol {
	return &Symbol{
		id:   id,
		text: text,
		kind: KindNonTerminal,
	}
}

func (s *Symbol) ID() ID {
	return s.id
}

func (s *Symbol) Text() string {
	return s.text
}

func (s *Symbol) Kind() Kind {
	return s.kind
}

func (s *Symbol) IsTerminal() bool {
	return s.kind == KindTerminal
}

func (s *Symbol) IsNonTerminal() bool {
	return s.kind == KindNonTerminal
}

func (s *Symbol) String() string {
	prefix := "t"
	if s.IsNonTerminal() {
		prefix = "n"
	}
	return fmt.Sprintf("%v%v(%v)", prefix, s.id, s.text)
}

// Set is a set of symbol IDs.
type Set map[ID]struct{}

func NewSet(ids ...ID) Set {
	s := Set{}
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add reports whether id was not in the set yet.
func (s Set) Add(id ID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Merge adds every member of t and reports whether s changed.
func (s Set) Merge(t Set) bool {
	changed := false
	for id := range t {
		if s.Add(id) {
			changed = true
		}
	}
	return changed
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for id := range s {
		if !t.Contains(id) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return ids
}

func SortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
}
