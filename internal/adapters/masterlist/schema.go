// Package masterlist parses raw LOOT masterlist documents into the mod
// database.
package masterlist

import (
	"github.com/loadstone/loadstone/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is the top-level shape of a masterlist YAML file.
type document struct {
	Plugins []pluginDTO `yaml:"plugins"`
}

// pluginDTO is one raw plugin entry. req/inc/after/before carry plugin
// names; patch maps another mod's name to the patch plugin that reconciles
// the two. YAML merge keys inside msg entries are resolved by yaml.v3
// itself.
type pluginDTO struct {
	Name   string            `yaml:"name"`
	Tag    []string          `yaml:"tag"`
	Req    []string          `yaml:"req"`
	Inc    []string          `yaml:"inc"`
	After  []string          `yaml:"after"`
	Before []string          `yaml:"before"`
	Patch  map[string]string `yaml:"patch"`
	Dirty  bool              `yaml:"dirty"`
	URL    string            `yaml:"url"`
	Msg    []messageDTO      `yaml:"msg"`
}

// messageDTO is one parameterized message template.
type messageDTO struct {
	Content contentDTO   `yaml:"content"`
	Subs    []contentDTO `yaml:"subs"`
}

// contentDTO wraps domain.MessageContent with YAML decoding. A content node
// is a scalar string, a {text, url} mapping, or a sequence of nested
// contents.
type contentDTO struct {
	domain.MessageContent
}

type linkDTO struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *contentDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		c.MessageContent = domain.TextContent(s)
		return nil
	case yaml.MappingNode:
		var link linkDTO
		if err := node.Decode(&link); err != nil {
			return err
		}
		c.MessageContent = domain.LinkContent(link.Text, link.URL)
		return nil
	case yaml.SequenceNode:
		var items []contentDTO
		if err := node.Decode(&items); err != nil {
			return err
		}
		contents := make([]domain.MessageContent, len(items))
		for i, item := range items {
			contents[i] = item.MessageContent
		}
		c.MessageContent = domain.SequenceContent(contents...)
		return nil
	case yaml.AliasNode:
		return c.UnmarshalYAML(node.Alias)
	default:
		return zerr.With(zerr.New("unsupported message content node"), "line", node.Line)
	}
}
