package ui

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseCSS parses a stylesheet and keeps the rules the engine understands:
// selectors of the form .class, #id or a bare node type (checkbox, swatch),
// optionally grouped with commas. Other selectors (combinators,
// pseudo-classes) and @rules are skipped. Later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("css: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			props[d.Property] = d.Value
		}
		for _, sel := range r.Selectors {
			if sel = strings.TrimSpace(sel); validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
	}
	return sheet, nil
}

// validSelector accepts .class, #id and bare type names.
func validSelector(sel string) bool {
	if sel == "" {
		return false
	}
	name := sel
	if sel[0] == '.' || sel[0] == '#' {
		name = sel[1:]
	}
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return true
}
