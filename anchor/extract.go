package anchor

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the anchors of rendered output in document order. Only
// ids that parse as field or method anchors are returned.
func Extract(rendered string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, err
	}
	var ids []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key != "id" {
					continue
				}
				if _, _, err := ParseAnchor(a.Val); err == nil {
					ids = append(ids, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return ids, nil
}
