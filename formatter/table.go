package formatter

import (
	"strings"

	"github.com/gnolang/proplogic/logic"
)

// FormatTable renders a truth table with the same layout as
// logic.Table.String, colouring variable names and truth values.
func FormatTable(t *logic.Table) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for i, v := range t.Variables {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(variableStyle.Sprint(v))
	}
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		sb.WriteString("  ")
		writeBits(&sb, row.Inputs, noStyleBit)
		if len(row.Inputs) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		writeBits(&sb, row.Outputs, styledBit)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeBits(sb *strings.Builder, bits []bool, render func(bool) string) {
	for i, b := range bits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(render(b))
	}
}

func noStyleBit(b bool) string { return logic.Bit(b) }

func styledBit(b bool) string {
	if b {
		return trueStyle.Sprint(logic.Bit(b))
	}
	return falseStyle.Sprint(logic.Bit(b))
}
