// Package dom parses raw markup and answers simple CSS-selector queries
// against it. It supports the subset of selectors the resolvers probe with:
//
//   - tag, .class, #id, and tag.class / tag#id combinations
//   - [attr], [attr=v], [attr*=v], [attr^=v], [attr$=v], with an optional
//     trailing " i" flag for case-insensitive value matching
//   - descendant combinator (space) and selector groups (comma)
//
// Matches are always returned in document order, also across the
// alternatives of a selector group.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse builds a document tree from raw markup. The parser is lenient;
// only catastrophically broken input errors.
func Parse(markup string) (*html.Node, error) {
	return html.Parse(strings.NewReader(markup))
}

// QueryAll returns every element matching the selector, in document order.
func QueryAll(root *html.Node, selector string) []*html.Node {
	compounds := parseGroups(selector)
	if len(compounds) == 0 {
		return nil
	}

	var results []*html.Node
	walk(root, func(n *html.Node) {
		for _, compound := range compounds {
			if matchesCompound(n, compound) {
				results = append(results, n)
				return
			}
		}
	})
	return results
}

// First returns the first element matching the selector, or nil.
func First(root *html.Node, selector string) *html.Node {
	for _, n := range QueryAll(root, selector) {
		return n
	}
	return nil
}

// FirstVisible returns the first matching element that is not hidden.
func FirstVisible(root *html.Node, selector string) *html.Node {
	for _, n := range QueryAll(root, selector) {
		if Visible(n) {
			return n
		}
	}
	return nil
}

// Attr returns the value of an attribute on a node.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// Visible approximates rendered visibility from markup alone: an element
// counts as hidden when it or an ancestor sits in <head>, carries the
// hidden attribute, or declares display:none / visibility:hidden inline.
func Visible(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		if cur.Data == "head" {
			return false
		}
		if hasAttr(cur, "hidden") {
			return false
		}
		style := strings.ReplaceAll(strings.ToLower(Attr(cur, "style")), " ", "")
		if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
			return false
		}
	}
	return true
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

type simpleSelector struct {
	tag         string
	id          string
	class       string
	attrKey     string
	attrVal     string
	attrOp      byte // '=', '*', '^', '$'; 0 means presence check only
	attrAnyCase bool
}

// compound is a descendant chain; the last entry matches the node itself,
// earlier entries must match successive ancestors.
type compound []simpleSelector

func parseGroups(selector string) []compound {
	var groups []compound
	for _, alt := range splitOutsideBrackets(selector, ',') {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		var c compound
		for _, part := range splitOutsideBrackets(alt, ' ') {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			c = append(c, parseSimpleSelector(part))
		}
		if len(c) > 0 {
			groups = append(groups, c)
		}
	}
	return groups
}

// splitOutsideBrackets splits on sep, ignoring separators inside [...] so
// attribute values may contain spaces ("[alt*='logo' i]").
func splitOutsideBrackets(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseSimpleSelector parses "tag.class", "#id", "tag[attr*=val]", etc.
func parseSimpleSelector(sel string) simpleSelector {
	var s simpleSelector

	if idx := strings.IndexByte(sel, '['); idx >= 0 {
		attrPart := strings.TrimRight(sel[idx+1:], "]")
		sel = sel[:idx]
		if strings.HasSuffix(attrPart, " i") {
			s.attrAnyCase = true
			attrPart = strings.TrimSpace(strings.TrimSuffix(attrPart, " i"))
		}
		if eqIdx := strings.IndexByte(attrPart, '='); eqIdx >= 0 {
			key := attrPart[:eqIdx]
			s.attrOp = '='
			if len(key) > 0 {
				switch key[len(key)-1] {
				case '*', '^', '$':
					s.attrOp = key[len(key)-1]
					key = key[:len(key)-1]
				}
			}
			s.attrKey = key
			s.attrVal = strings.Trim(attrPart[eqIdx+1:], `"'`)
		} else {
			s.attrKey = attrPart
		}
	}

	if idx := strings.IndexByte(sel, '#'); idx >= 0 {
		s.id = sel[idx+1:]
		sel = sel[:idx]
	}

	if idx := strings.IndexByte(sel, '.'); idx >= 0 {
		s.class = sel[idx+1:]
		sel = sel[:idx]
	}

	s.tag = sel
	return s
}

func matchesCompound(n *html.Node, c compound) bool {
	if !matchesSelector(n, c[len(c)-1]) {
		return false
	}
	ancestor := n.Parent
	for i := len(c) - 2; i >= 0; i-- {
		for {
			if ancestor == nil {
				return false
			}
			if ancestor.Type == html.ElementNode && matchesSelector(ancestor, c[i]) {
				ancestor = ancestor.Parent
				break
			}
			ancestor = ancestor.Parent
		}
	}
	return true
}

func matchesSelector(n *html.Node, s simpleSelector) bool {
	if n.Type != html.ElementNode {
		return false
	}

	if s.tag != "" && n.Data != s.tag {
		return false
	}

	if s.id != "" && Attr(n, "id") != s.id {
		return false
	}

	if s.class != "" {
		found := false
		for _, c := range strings.Fields(Attr(n, "class")) {
			if c == s.class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if s.attrKey != "" {
		if s.attrOp == 0 {
			return hasAttr(n, s.attrKey)
		}
		val := Attr(n, s.attrKey)
		want := s.attrVal
		if s.attrAnyCase {
			val = strings.ToLower(val)
			want = strings.ToLower(want)
		}
		switch s.attrOp {
		case '=':
			return val == want
		case '*':
			return want != "" && strings.Contains(val, want)
		case '^':
			return want != "" && strings.HasPrefix(val, want)
		case '$':
			return want != "" && strings.HasSuffix(val, want)
		}
	}

	return true
}
