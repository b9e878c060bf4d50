package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/naming"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

// rarityQuery is the parsed form of a /rarity invocation.
type rarityQuery struct {
	Domain   domain.DropDomain
	Source   string
	ItemID   int
	Quantity int
}

// RarityCommand returns the /rarity command definition and handler
func RarityCommand(engines *rarity.Registry, names naming.Resolver) (*discordgo.ApplicationCommand, CommandHandler) {
	minItemID := float64(domain.NothingItemID)
	minQuantity := 0.0

	cmd := &discordgo.ApplicationCommand{
		Name:        CommandRarity,
		Description: "Look up how rare a drop is",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionDomain,
				Description: "Drop table to search",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "NPC kills", Value: string(domain.DomainNPC)},
					{Name: "Thieving", Value: string(domain.DomainThieving)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionSource,
				Description: "NPC or stall name, exactly as it appears in game",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionItemID,
				Description: "Item id (-1 for Nothing)",
				Required:    true,
				MinValue:    &minItemID,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionQuantity,
				Description: "Stack size, defaults to 1",
				MinValue:    &minQuantity,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		q, err := parseRarityOptions(i.ApplicationCommandData().Options)
		if err != nil {
			slog.Warn(LogMsgInvalidQuery, "error", err)
			respondEphemeral(s, i, MsgInvalidQuery)
			return
		}

		embed, err := buildRarityEmbed(engines, names, q)
		if err != nil {
			slog.Warn(LogMsgInvalidQuery, "error", err)
			respondEphemeral(s, i, MsgInvalidQuery)
			return
		}

		respond(s, i, &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		})
	}

	return cmd, handler
}

func parseRarityOptions(options []*discordgo.ApplicationCommandInteractionDataOption) (rarityQuery, error) {
	q := rarityQuery{Quantity: 1}
	seen := make(map[string]bool, len(options))

	for _, opt := range options {
		seen[opt.Name] = true
		switch opt.Name {
		case OptionDomain:
			q.Domain = domain.DropDomain(opt.StringValue())
		case OptionSource:
			q.Source = opt.StringValue()
		case OptionItemID:
			q.ItemID = int(opt.IntValue())
		case OptionQuantity:
			q.Quantity = int(opt.IntValue())
		}
	}

	for _, required := range []string{OptionDomain, OptionSource, OptionItemID} {
		if !seen[required] {
			return q, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, required)
		}
	}
	if !q.Domain.Valid() {
		return q, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, q.Domain)
	}
	if q.Quantity < 0 {
		return q, fmt.Errorf("%w: negative quantity", domain.ErrInvalidInput)
	}
	return q, nil
}

func buildRarityEmbed(engines *rarity.Registry, names naming.Resolver, q rarityQuery) (*discordgo.MessageEmbed, error) {
	engine, err := engines.Lookup(q.Domain)
	if err != nil {
		return nil, err
	}

	title := names.DisplayName(q.ItemID)
	switch {
	case q.ItemID == domain.NothingItemID:
		title = "Nothing"
	case title == "":
		title = fmt.Sprintf("Item %d", q.ItemID)
	}
	if q.Quantity > 1 {
		title = fmt.Sprintf("%s x%d", title, q.Quantity)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("From **%s**", q.Source),
		Color:       RarityEmbedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: EmbedFooterText},
	}

	p, ok := engine.GetRarity(q.Source, q.ItemID, q.Quantity)
	if !ok {
		embed.Description += "\n" + MsgNoRarity
		return embed, nil
	}
	return AppendRarityField(embed, p, ok), nil
}
