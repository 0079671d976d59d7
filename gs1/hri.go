package gs1

import "strings"

// AIDataStr returns the bracketed AI element string rebuilt from the
// extracted AI list, with data "(" escaped as "\(". It is empty when the
// current data carries no AIs.
func (e *Engine) AIDataStr() string {
	var b strings.Builder
	for i := range e.aiData {
		if e.aiData[i].Kind != KindAIValue {
			continue
		}
		b.WriteByte('(')
		b.WriteString(e.AI(i))
		b.WriteByte(')')
		val := e.Value(i)
		for j := 0; j < len(val); j++ {
			if val[j] == '(' {
				b.WriteByte('\\')
			}
			b.WriteByte(val[j])
		}
	}
	return b.String()
}

// HRI returns the human readable interpretation of the extracted AIs, one
// "(ai) value" line per AI.
func (e *Engine) HRI() []string {
	var lines []string
	for i := range e.aiData {
		if e.aiData[i].Kind != KindAIValue {
			continue
		}
		lines = append(lines, "("+e.AI(i)+") "+e.Value(i))
	}
	return lines
}
