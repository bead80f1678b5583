package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/lltool/grammar/symbol"
)

// FormatNullable renders a nullable set as `Nullable = {A, B}` with members ordered by id.
func FormatNullable[P Production](g *Grammar[P], nullable symbol.Set) string {
	return fmt.Sprintf("Nullable = {%v}\n", g.joinTexts(nullable.Sorted()))
}

// FormatFirstSets renders one `First(A) = {a, b}` line per non-terminal, ordered by id.
func FormatFirstSets[P Production](g *Grammar[P], fst FirstSets) string {
	var b strings.Builder
	for _, id := range g.NonTerminals() {
		set, ok := fst.Of(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "First(%v) = {%v}\n", g.renderLenient([]symbol.ID{id}), g.joinTexts(set.Sorted()))
	}
	return b.String()
}

func (g *Grammar[P]) joinTexts(ids []symbol.ID) string {
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		texts = append(texts, g.renderLenient([]symbol.ID{id}))
	}
	return strings.Join(texts, ", ")
}
