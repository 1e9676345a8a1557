package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voicecms/internal/domain"
	pkgdiscord "voicecms/pkg/discord"
)

const (
	commandName = "cms"

	optCollection = "collection"
	optKey        = "key"
	optLocale     = "locale"

	maxChoices = 25
)

var cmsCommand = &discordgo.ApplicationCommand{
	Name:        commandName,
	Description: "Look up CMS content",
	Options: []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: optCollection, Description: "Collection name", Autocomplete: true},
		{Type: discordgo.ApplicationCommandOptionString, Name: optKey, Description: "Item key", Autocomplete: true},
		{Type: discordgo.ApplicationCommandOptionString, Name: optLocale, Description: "Locale, e.g. en or de"},
	},
}

type commandArgs struct {
	Collection string
	Key        string
	Locale     string
	// Focused is the option being autocompleted, if any.
	Focused string
	Prefix  string
}

func parseArgs(options []*discordgo.ApplicationCommandInteractionDataOption) commandArgs {
	var args commandArgs
	for _, o := range options {
		if o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		v := strings.TrimSpace(o.StringValue())
		switch o.Name {
		case optCollection:
			args.Collection = v
		case optKey:
			args.Key = v
		case optLocale:
			args.Locale = v
		}
		if o.Focused {
			args.Focused = o.Name
			args.Prefix = v
		}
	}
	return args
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	args := parseArgs(i.ApplicationCommandData().Options)
	reply, embed := h.resolve(context.Background(), string(i.Locale), args)
	if embed != nil {
		respondEmbed(s, i.Interaction, embed)
		return
	}
	respondEphemeral(s, i.Interaction, reply)
}

// resolve answers a /cms command with either a text reply or an embed.
// userLocale is the client's locale, used when no locale option was given.
func (h *Handler) resolve(ctx context.Context, userLocale string, args commandArgs) (string, *discordgo.MessageEmbed) {
	uc := h.contentUseCase
	t := translator{uc}
	locale := args.Locale
	if locale == "" {
		locale = userLocale
	}

	if args.Collection == "" {
		names := uc.Collections(ctx)
		if len(names) == 0 {
			return uc.Translate(locale, "reply_empty", nil), nil
		}
		return uc.Translate(locale, "reply_collections", map[string]any{"List": pkgdiscord.FormatList(names)}), nil
	}

	if args.Key == "" {
		keys, err := uc.Keys(ctx, args.Collection)
		if err != nil {
			return pkgdiscord.DomainErrorMessage(t, locale, err), nil
		}
		if len(keys) == 0 {
			return uc.Translate(locale, "reply_empty", nil), nil
		}
		return uc.Translate(locale, "reply_keys", map[string]any{
			"Collection": args.Collection,
			"List":       pkgdiscord.FormatList(keys),
		}), nil
	}

	record, err := uc.Lookup(ctx, locale, args.Collection, args.Key)
	if err != nil && args.Locale == "" && errors.Is(err, domain.ErrUnknownLocale) {
		// The client's locale is not a project locale: use the default one.
		locale = ""
		record, err = uc.Lookup(ctx, locale, args.Collection, args.Key)
	}
	if err != nil {
		h.logger.Debugf("discord: lookup %s.%s (%s): %v", args.Collection, args.Key, locale, err)
		return pkgdiscord.DomainErrorMessage(t, locale, err), nil
	}
	footer := uc.Translate(locale, "embed_footer", map[string]any{
		"Collection": args.Collection,
		"Locale":     displayLocale(locale),
	})
	return "", pkgdiscord.BuildRecordEmbed(args.Collection, args.Key, footer, record)
}

func displayLocale(locale string) string {
	if locale == "" {
		return "default"
	}
	return locale
}

func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	args := parseArgs(i.ApplicationCommandData().Options)
	respondChoices(s, i.Interaction, h.choices(context.Background(), args))
}

func (h *Handler) choices(ctx context.Context, args commandArgs) []*discordgo.ApplicationCommandOptionChoice {
	var values []string
	switch args.Focused {
	case optCollection:
		values = h.contentUseCase.Collections(ctx)
	case optKey:
		keys, err := h.contentUseCase.Keys(ctx, args.Collection)
		if err != nil {
			return nil
		}
		values = keys
	}
	return filterChoices(values, args.Prefix)
}

func filterChoices(values []string, prefix string) []*discordgo.ApplicationCommandOptionChoice {
	prefix = strings.ToLower(prefix)
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, v := range values {
		if !strings.HasPrefix(strings.ToLower(v), prefix) {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
		if len(out) == maxChoices {
			break
		}
	}
	return out
}
