package dump

import "github.com/fatih/color"

type palette struct {
	kind   func(string) string
	field  func(string) string
	value  func(string) string
	marker func(string) string
	loc    func(string) string
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func colors(enabled bool) *palette {
	if !enabled {
		id := func(s string) string { return s }
		return &palette{kind: id, field: id, value: id, marker: id, loc: id}
	}
	return &palette{
		kind:   sprint(color.New(color.FgMagenta, color.Bold)),
		field:  sprint(color.New(color.FgCyan)),
		value:  sprint(color.New(color.FgGreen)),
		marker: sprint(color.New(color.FgYellow)),
		loc:    sprint(color.New(color.Faint)),
	}
}
