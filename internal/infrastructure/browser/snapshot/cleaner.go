package snapshot

import (
	"fmt"
	"strings"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"

	"golang.org/x/net/html"
)

type CleanConfig struct {
	TagsToRemove     []string
	AttrsToRemove    []string
	MaxOutputSize    int
	CustomAttrFilter func(attr html.Attribute) bool
}

// DefaultCleanConfig оставляет style и aria-*: по ним разбирают, почему элемент не виден или не найден.
var DefaultCleanConfig = CleanConfig{
	TagsToRemove: []string{
		"script", "noscript", "iframe", "link", "meta", "template",
	},
	AttrsToRemove: []string{
		"srcset", "sizes", "loading", "decoding", "fetchpriority", "integrity", "nonce",
	},
	MaxOutputSize: 512_000,
}

var _ output.SnapshotRenderer = (*Renderer)(nil)

// Renderer renders snapshots with a fixed clean config.
type Renderer struct {
	cfg *CleanConfig
}

// NewRenderer uses DefaultCleanConfig when cfg is nil.
func NewRenderer(cfg *CleanConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Render(s *entity.PageSnapshot) string {
	return Render(s, r.cfg)
}

// Render returns a cleaned HTML document for the snapshot, headed by a comment
// with the page URL and title.
func Render(s *entity.PageSnapshot, cfg *CleanConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<!-- url: %s -->\n<!-- title: %s -->\n", escapeComment(s.URL), escapeComment(s.Title))
	sb.WriteString(Clean(s.HTML, cfg))
	sb.WriteString("\n")
	return sb.String()
}

// Clean strips scripts, comments and noisy attributes from rawHTML.
func Clean(rawHTML string, cfg *CleanConfig) string {
	if cfg == nil {
		cfg = &DefaultCleanConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return truncateHTML(rawHTML, cfg.MaxOutputSize)
	}

	root := findNode(doc, "html")
	if root == nil {
		root = doc
	}

	cleanNode(root, cfg)

	return truncateHTML(renderNode(root), cfg.MaxOutputSize)
}

func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func cleanNode(n *html.Node, cfg *CleanConfig) {
	if n.Type == html.CommentNode {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}

	if n.Type == html.ElementNode && isOneOf(n.Data, cfg.TagsToRemove...) {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}

	n.Attr = filterAttributes(n.Attr, cfg)

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		cleanNode(c, cfg)
		c = next
	}
}

func filterAttributes(attrs []html.Attribute, cfg *CleanConfig) []html.Attribute {
	var kept []html.Attribute
	for _, attr := range attrs {
		if shouldRemoveAttr(attr, cfg) {
			continue
		}
		kept = append(kept, attr)
	}
	return kept
}

func shouldRemoveAttr(attr html.Attribute, cfg *CleanConfig) bool {
	if isOneOf(attr.Key, cfg.AttrsToRemove...) {
		return true
	}
	// обработчики событий
	if strings.HasPrefix(attr.Key, "on") {
		return true
	}
	if cfg.CustomAttrFilter != nil && cfg.CustomAttrFilter(attr) {
		return true
	}
	return false
}

func renderNode(n *html.Node) string {
	var sb strings.Builder
	_ = html.Render(&sb, n)
	return sb.String()
}

func truncateHTML(htmlStr string, maxSize int) string {
	if maxSize > 0 && len(htmlStr) > maxSize {
		return htmlStr[:maxSize] + "\n<!-- truncated -->"
	}
	return htmlStr
}

func escapeComment(s string) string {
	return strings.ReplaceAll(s, "--", "- -")
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
