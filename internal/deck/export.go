package deck

import (
	"strconv"
	"strings"
)

// ExportDeckText renders d as a plain text list, one entry per line in
// wire order. Heroes are written as "T<turn> <id>" and cards as "<n>x<id>".
// The name is converted with NameText.
func ExportDeckText(d Deck) string {
	lines := []string{}
	if d.Name != "" {
		name, _ := NameText(d.Name)
		lines = append(lines, "# "+name)
	}
	for _, h := range d.Heroes {
		lines = append(lines, "T"+strconv.FormatUint(uint64(h.Turn), 10)+" "+strconv.FormatUint(uint64(h.ID), 10))
	}
	if len(d.Heroes) > 0 && len(d.Cards) > 0 {
		lines = append(lines, "")
	}
	for _, c := range d.Cards {
		lines = append(lines, strconv.FormatUint(uint64(c.Count), 10)+"x"+strconv.FormatUint(uint64(c.ID), 10))
	}
	return strings.Join(lines, "\n")
}
