// Package markup renders message bodies for the terminal: mentions,
// spoilers, interactive components, attachments, embeds and fenced code.
package markup

import (
	"regexp"
	"sort"
	"strings"

	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

var (
	mentionPattern = regexp.MustCompile(`<(@!?|@&|#)(\d+)>`)
	alertPattern   = regexp.MustCompile(`@(everyone|here)`)
	spoilerPattern = regexp.MustCompile(`\|\|([^|]+)\|\|`)
	fencePattern   = regexp.MustCompile("(?s)```([\\w+-]*)\\n?(.*?)```")
)

// Lookup resolves an id the unit itself carries no name for. It may be nil.
type Lookup func(kind source.Kind, id string) (string, bool)

// Body renders the content of u with the controls appended. The result may
// span several lines when the content does.
func Body(u source.Unit, lookup Lookup) string {
	var b strings.Builder

	last := 0
	for _, m := range fencePattern.FindAllStringSubmatchIndex(u.Content, -1) {
		b.WriteString(inline(u.Content[last:m[0]], u, lookup))
		b.WriteString(Highlight(u.Content[m[4]:m[5]], u.Content[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(inline(u.Content[last:], u, lookup))

	if len(u.Controls) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(theme.Extra.Render("[" + strings.Join(u.Controls, " | ") + "]"))
	}
	return b.String()
}

// Extras returns one line per attachment followed by one per embed.
func Extras(u source.Unit) []string {
	lines := make([]string, 0, len(u.Attachments)+len(u.Embeds))
	for _, a := range u.Attachments {
		lines = append(lines, theme.Extra.Render("["+a.Name+"]"))
	}
	for _, e := range u.Embeds {
		lines = append(lines, theme.Extra.Render(EmbedText(e)))
	}
	return lines
}

// EmbedText returns "[embed: title description]" or "[embed]".
func EmbedText(e source.Embed) string {
	var parts []string
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if len(parts) == 0 {
		return "[embed]"
	}
	return "[embed: " + strings.Join(parts, " ") + "]"
}

type span struct {
	start, end int
	text       string
}

// inline styles mentions in text and spoilers in the text between them.
func inline(text string, u source.Unit, lookup Lookup) string {
	if text == "" {
		return ""
	}

	var spans []span
	for _, m := range mentionPattern.FindAllStringSubmatchIndex(text, -1) {
		kind, id := text[m[2]:m[3]], text[m[4]:m[5]]
		spans = append(spans, span{m[0], m[1], mention(kind, id, u, lookup)})
	}
	for _, m := range alertPattern.FindAllStringIndex(text, -1) {
		// skip matches inside angle brackets
		before := text[:m[0]]
		if strings.LastIndex(before, "<") > strings.LastIndex(before, ">") {
			continue
		}
		spans = append(spans, span{m[0], m[1], theme.MentionAlert.Render(text[m[0]:m[1]])})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	last := 0
	for _, s := range spans {
		if s.start < last {
			continue
		}
		b.WriteString(spoilers(text[last:s.start]))
		b.WriteString(s.text)
		last = s.end
	}
	b.WriteString(spoilers(text[last:]))
	return b.String()
}

func mention(kind, id string, u source.Unit, lookup Lookup) string {
	switch kind {
	case "@", "@!":
		if name, ok := find(u.Mentions, id); ok {
			return theme.MentionUser.Render("@" + name)
		}
		if name, ok := lookupName(lookup, source.KindNode, id); ok {
			return theme.MentionUser.Render("@" + name)
		}
		return theme.MentionUser.Render("@unknown")
	case "@&":
		if name, ok := find(u.RoleMentions, id); ok {
			return theme.MentionRole.Render("@" + name)
		}
		if name, ok := lookupName(lookup, source.KindPackage, id); ok {
			return theme.MentionRole.Render("@" + name)
		}
		return theme.MentionRole.Render("@unknown-role")
	default:
		if name, ok := find(u.ChannelMentions, id); ok {
			return theme.MentionChannel.Render("#" + name)
		}
		if name, ok := lookupName(lookup, source.KindTopic, id); ok {
			return theme.MentionChannel.Render("#" + name)
		}
		return theme.MentionChannel.Render("#unknown-channel")
	}
}

func find(refs []source.Ref, id string) (string, bool) {
	for _, r := range refs {
		if r.ID == id && r.Name != "" {
			return r.Name, true
		}
	}
	return "", false
}

func lookupName(lookup Lookup, kind source.Kind, id string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	return lookup(kind, id)
}

func spoilers(text string) string {
	return spoilerPattern.ReplaceAllStringFunc(text, func(m string) string {
		return theme.Spoiler.Render(m[2 : len(m)-2])
	})
}
