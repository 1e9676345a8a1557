package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicecms/internal/domain/entities"
)

func TestBuildRecordEmbed(t *testing.T) {
	embed := BuildRecordEmbed("prompts", "welcome", "prompts · de", entities.Record{
		"text":  "Hallo",
		"audio": "welcome.mp3",
		"gap":   nil,
	})

	assert.Equal(t, "prompts · welcome", embed.Title)
	assert.Equal(t, "prompts · de", embed.Footer.Text)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "audio", embed.Fields[0].Name)
	assert.Equal(t, "gap", embed.Fields[1].Name)
	assert.Equal(t, "—", embed.Fields[1].Value)
	assert.Equal(t, "Hallo", embed.Fields[2].Value)
}

func TestBuildRecordEmbed_FieldLimit(t *testing.T) {
	record := entities.Record{}
	for i := 0; i < 30; i++ {
		record[strings.Repeat("f", i+1)] = i
	}

	embed := BuildRecordEmbed("c", "k", "", record)

	assert.Len(t, embed.Fields, maxFields)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "—", FormatValue(nil))
	assert.Equal(t, "—", FormatValue("  "))
	assert.Equal(t, "3", FormatValue(3))
	assert.Equal(t, "true", FormatValue(true))

	long := FormatValue(strings.Repeat("ä", 2000))
	assert.Equal(t, maxFieldValue, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "…"))
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "a, b", FormatList([]string{"a", "b"}))
	assert.Equal(t, "", FormatList(nil))
}
