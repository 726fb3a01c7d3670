package site

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var strippedTags = "script, style, iframe, object, embed, form, link, meta, base"

// Sanitize drops active content from a description fragment: scripting
// elements, event handler attributes and javascript: URLs.
func Sanitize(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div id=\"pulse-root\">" + fragment + "</div>"))
	if err != nil {
		return ""
	}

	root := doc.Find("#pulse-root")
	root.Find(strippedTags).Remove()
	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			attrs := node.Attr[:0]
			for _, attr := range node.Attr {
				key := strings.ToLower(attr.Key)
				if strings.HasPrefix(key, "on") {
					continue
				}
				if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
					continue
				}
				attrs = append(attrs, attr)
			}
			node.Attr = attrs
		}
	})

	out, err := root.Html()
	if err != nil {
		return ""
	}
	return out
}
