package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var metaImage = FirstOf(
	MetaContent("meta[property='og:image']"),
	MetaContent("meta[property='og:image:url']"),
	MetaContent("meta[name='twitter:image']"),
	MetaContent("meta[property='twitter:image']"),
	MetaContent("meta[name='twitter:image:src']"),
)

// DiscoverImage finds a representative image: open-graph image, then the
// twitter card image, then the first inline image of article, main or body.
// The result is absolute, or empty when nothing usable was found.
func DiscoverImage(page *Page) string {
	if src := usable(page.Resolve(metaImage(page))); src != "" {
		return src
	}

	for _, scope := range []string{"article", "main", "body"} {
		sel := page.Doc.Find(scope).First()
		if sel.Length() == 0 {
			continue
		}
		var found string
		sel.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src, _ := img.Attr("src")
			if src == "" {
				src, _ = img.Attr("data-src")
			}
			found = usable(page.Resolve(src))
			return found == ""
		})
		if found != "" {
			return found
		}
	}

	return ""
}

func usable(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return ""
}
