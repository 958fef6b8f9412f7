package merge

import (
	"strings"
)

// Conflict is a whole file that both sides changed differently.
type Conflict struct {
	aData []byte
	bData []byte
}

func NewConflict(aData, bData []byte) *Conflict {
	return &Conflict{
		aData: aData,
		bData: bData,
	}
}

func (c *Conflict) String(aName, bName string) string {
	var builder strings.Builder

	c.separator(&builder, "<", aName)
	builder.Write(c.aData)
	c.separator(&builder, "=", "")
	builder.Write(c.bData)
	c.separator(&builder, ">", bName)

	return builder.String()
}

func (c *Conflict) separator(builder *strings.Builder, char, name string) {
	builder.WriteString(strings.Repeat(char, 7))
	if name != "" {
		builder.WriteString(" " + name)
	}
	builder.WriteString("\n")
}
