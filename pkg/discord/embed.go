package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voicecms/internal/domain/entities"
)

// Discord embed limits.
const (
	maxFields     = 25
	maxFieldValue = 1024
	maxListLength = 1900
)

const embedColor = 0x5865F2

// BuildRecordEmbed renders one translated record, fields sorted by name.
// Missing translations are shown as "—".
func BuildRecordEmbed(collection, key, footer string, record entities.Record) *discordgo.MessageEmbed {
	names := make([]string, 0, len(record))
	for name := range record {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxFields {
		names = names[:maxFields]
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(names))
	for _, name := range names {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: FormatValue(record[name]),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s · %s", collection, key),
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: footer},
	}
}

// FormatValue renders a record value for an embed field.
func FormatValue(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return "—"
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return truncate(s, maxFieldValue)
}

// FormatList joins names with ", " and truncates to fit a message.
func FormatList(names []string) string {
	return truncate(strings.Join(names, ", "), maxListLength)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
