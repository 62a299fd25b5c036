package domain

import (
	"fmt"
	"strings"
)

// MessageKind discriminates the variants of MessageContent.
type MessageKind int

const (
	// MessageText is a plain text fragment.
	MessageText MessageKind = iota
	// MessageLink is a hyperlink with display text.
	MessageLink
	// MessageSequence is an ordered list of sub-fragments.
	MessageSequence
)

// MessageContent is the tagged variant behind a masterlist message body: a
// plain string, a {text, url} link object, or an ordered list of nested
// fragments. Exactly one variant is populated, selected by Kind.
type MessageContent struct {
	Kind  MessageKind
	Text  string
	URL   string
	Items []MessageContent
}

// TextContent builds a plain-text fragment.
func TextContent(s string) MessageContent {
	return MessageContent{Kind: MessageText, Text: s}
}

// LinkContent builds a link fragment.
func LinkContent(text, url string) MessageContent {
	return MessageContent{Kind: MessageLink, Text: text, URL: url}
}

// SequenceContent builds an ordered list fragment.
func SequenceContent(items ...MessageContent) MessageContent {
	return MessageContent{Kind: MessageSequence, Items: items}
}

// Render flattens the fragment into display text. Links render as
// "text (url)", sequences join their rendered items with "; ".
func (c MessageContent) Render() string {
	switch c.Kind {
	case MessageText:
		return c.Text
	case MessageLink:
		if c.URL == "" {
			return c.Text
		}
		if c.Text == "" {
			return c.URL
		}
		return fmt.Sprintf("%s (%s)", c.Text, c.URL)
	case MessageSequence:
		parts := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			if s := item.Render(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

// FormatMessage substitutes rendered positional values into the "{}"
// placeholders of a template. Each sub is rendered before substitution.
// When the placeholder and value counts disagree the raw template is
// returned unchanged; a malformed message must not fail the whole parse.
func FormatMessage(template string, subs []MessageContent) string {
	if len(subs) == 0 {
		return template
	}
	if strings.Count(template, "{}") != len(subs) {
		return template
	}
	var b strings.Builder
	rest := template
	for _, sub := range subs {
		head, tail, _ := strings.Cut(rest, "{}")
		b.WriteString(head)
		b.WriteString(sub.Render())
		rest = tail
	}
	b.WriteString(rest)
	return b.String()
}
