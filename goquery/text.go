package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// hiddenElements never contribute visible text.
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// visibleText walks the given nodes depth-first and joins every non-empty
// trimmed text node with sep.
func visibleText(nodes []*html.Node, sep string) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if hiddenElements[n.Data] {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
