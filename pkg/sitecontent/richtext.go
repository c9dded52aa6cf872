package sitecontent

import (
	"fmt"
	"html"
	"strings"
)

// Rich text node types as delivered by the CMS.
const (
	nodeDocument      = "document"
	nodeParagraph     = "paragraph"
	nodeUnorderedList = "unordered-list"
	nodeOrderedList   = "ordered-list"
	nodeListItem      = "list-item"
	nodeBlockquote    = "blockquote"
	nodeHr            = "hr"
	nodeHyperlink     = "hyperlink"
	nodeText          = "text"
)

var blockTags = map[string]string{
	nodeParagraph:     "p",
	nodeUnorderedList: "ul",
	nodeOrderedList:   "ol",
	nodeListItem:      "li",
	nodeBlockquote:    "blockquote",
	"heading-1":       "h1",
	"heading-2":       "h2",
	"heading-3":       "h3",
	"heading-4":       "h4",
	"heading-5":       "h5",
	"heading-6":       "h6",
}

var markTags = map[string]string{
	"bold":      "b",
	"italic":    "i",
	"underline": "u",
	"code":      "code",
}

// IsRichTextDocument reports whether a raw field value is a rich-text
// document node.
func IsRichTextDocument(v map[string]any) bool {
	nt, _ := v["nodeType"].(string)
	return nt == nodeDocument
}

// RenderRichText converts a rich-text document into an HTML string. Text is
// HTML-escaped; nodes with an unknown nodeType contribute only their
// children. A structurally malformed document (non-string text value,
// non-array content) yields an error wrapping ErrRichTextRender; callers
// degrade the field to an empty string in that case.
func RenderRichText(doc map[string]any) (string, error) {
	if !IsRichTextDocument(doc) {
		return "", fmt.Errorf("%w: not a document node", ErrRichTextRender)
	}
	var b strings.Builder
	if err := renderContent(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderContent(b *strings.Builder, node map[string]any) error {
	raw, ok := node["content"]
	if raw == nil {
		return nil
	}
	children, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: content is not an array", ErrRichTextRender)
	}
	for _, child := range children {
		m, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: node is not an object", ErrRichTextRender)
		}
		if err := renderNode(b, m); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(b *strings.Builder, node map[string]any) error {
	nt, _ := node["nodeType"].(string)
	switch {
	case nt == nodeText:
		return renderText(b, node)
	case nt == nodeHr:
		b.WriteString("<hr/>")
		return nil
	case nt == nodeHyperlink:
		uri := ""
		if data, ok := node["data"].(map[string]any); ok {
			uri, _ = data["uri"].(string)
		}
		b.WriteString(`<a href="` + html.EscapeString(uri) + `">`)
		if err := renderContent(b, node); err != nil {
			return err
		}
		b.WriteString("</a>")
		return nil
	case blockTags[nt] != "":
		tag := blockTags[nt]
		b.WriteString("<" + tag + ">")
		if err := renderContent(b, node); err != nil {
			return err
		}
		b.WriteString("</" + tag + ">")
		return nil
	default:
		// Unknown node: render children only.
		return renderContent(b, node)
	}
}

func renderText(b *strings.Builder, node map[string]any) error {
	value, ok := node["value"].(string)
	if !ok {
		return fmt.Errorf("%w: text node without string value", ErrRichTextRender)
	}
	open, closing := markWrappers(node)
	b.WriteString(open)
	b.WriteString(html.EscapeString(value))
	b.WriteString(closing)
	return nil
}

func markWrappers(node map[string]any) (open, closing string) {
	marks, _ := node["marks"].([]any)
	for _, m := range marks {
		mm, ok := m.(map[string]any)
		if !ok {
			continue
		}
		kind, _ := mm["type"].(string)
		if tag := markTags[kind]; tag != "" {
			open += "<" + tag + ">"
			closing = "</" + tag + ">" + closing
		}
	}
	return open, closing
}
