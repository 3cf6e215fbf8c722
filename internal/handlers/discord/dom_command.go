package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/pentarch/dombot/internal/cache"
	"github.com/pentarch/dombot/internal/nations"
	"github.com/pentarch/dombot/internal/services/server"
)

// DomCommand handles the /dom command
type DomCommand struct {
	BaseCommand
	serverService server.Service
	snapshotCache *cache.Cache
}

// NewDomCommand creates a new dom command handler
func NewDomCommand(serverService server.Service, snapshotCache *cache.Cache) *DomCommand {
	return &DomCommand{
		BaseCommand: BaseCommand{
			Name:        "dom",
			Description: "Track Dominions servers and player registrations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Track a running game server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "address",
							Description: "Game server address (host:port)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Alias to track the server under",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lobby",
					Description: "Open a new game lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Alias for the lobby",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "players",
							Description: "Target player count",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "era",
							Description: "Game era",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Early Age", Value: string(nations.EraEarly)},
								{Name: "Middle Age", Value: string(nations.EraMiddle)},
								{Name: "Late Age", Value: string(nations.EraLate)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Lobby description",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register a nation on a tracked server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Server alias",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "nation",
							Description: "Nation id",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unregister",
					Description: "Remove your registration from a tracked server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Server alias",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "details",
					Description: "Show the current state of a tracked server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Server alias",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all tracked servers",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Stop tracking a server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Server alias",
							Required:    true,
						},
					},
				},
			},
		},
		serverService: serverService,
		snapshotCache: snapshotCache,
	}
}

// Handle processes a Discord interaction for the dom command
func (c *DomCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID

	sub := data.Options[0]
	options := commandOptions(sub)

	var err error
	switch sub.Name {
	case "add":
		err = c.handleAdd(s, i, options["address"].StringValue(), options["alias"].StringValue())
	case "lobby":
		err = c.handleLobby(s, i, userID, options)
	case "register":
		err = c.handleRegister(s, i, userID, options["alias"].StringValue(), uint32(options["nation"].IntValue()))
	case "unregister":
		err = c.handleUnregister(s, i, userID, options["alias"].StringValue())
	case "details":
		err = c.handleDetails(s, i, options["alias"].StringValue())
	case "list":
		err = c.handleList(s, i)
	case "remove":
		err = c.handleRemove(s, i, options["alias"].StringValue())
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// commandOptions indexes a subcommand's options by name
func commandOptions(sub *discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}
	return options
}

// handleAdd handles the add subcommand
func (c *DomCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, address, alias string) error {
	ctx := context.Background()

	output, err := c.serverService.AddServer(ctx, &server.AddServerInput{
		Address: address,
		Alias:   alias,
	})
	if err != nil {
		log.Printf("Error adding server %s: %v", alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"Now tracking **%s** at `%s` (turn %d).",
		output.Server.Alias, address, output.Server.Started.LastSeenTurn))
}

// handleLobby handles the lobby subcommand
func (c *DomCommand) handleLobby(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &server.AddLobbyInput{
		Alias:       options["alias"].StringValue(),
		Owner:       userID,
		PlayerCount: int(options["players"].IntValue()),
	}
	if opt, ok := options["era"]; ok {
		era := nations.Era(opt.StringValue())
		input.Era = &era
	}
	if opt, ok := options["description"]; ok {
		input.Description = opt.StringValue()
	}

	output, err := c.serverService.AddLobby(ctx, input)
	if err != nil {
		log.Printf("Error creating lobby %s: %v", input.Alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"Lobby **%s** is open for %d players. Register with `/dom register`.",
		output.Server.Alias, output.Server.Lobby.PlayerCount))
}

// handleRegister handles the register subcommand
func (c *DomCommand) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate, userID, alias string, nationID uint32) error {
	ctx := context.Background()

	output, err := c.serverService.RegisterPlayer(ctx, &server.RegisterPlayerInput{
		Alias:    alias,
		PlayerID: userID,
		NationID: nationID,
	})
	if err != nil {
		log.Printf("Error registering player for %s: %v", alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"<@%s> registered as **%s** on **%s**.", userID, output.NationName, alias))
}

// handleUnregister handles the unregister subcommand
func (c *DomCommand) handleUnregister(s *discordgo.Session, i *discordgo.InteractionCreate, userID, alias string) error {
	ctx := context.Background()

	output, err := c.serverService.UnregisterPlayer(ctx, &server.UnregisterPlayerInput{
		Alias:    alias,
		PlayerID: userID,
	})
	if err != nil {
		log.Printf("Error unregistering player for %s: %v", alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	if !output.Success {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You are not registered on **%s**.", alias))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("<@%s> unregistered from **%s**.", userID, alias))
}

// handleDetails handles the details subcommand, reusing a cached remote
// snapshot while it is fresh. Registrations are re-read either way.
func (c *DomCommand) handleDetails(s *discordgo.Session, i *discordgo.InteractionCreate, alias string) error {
	ctx := context.Background()

	var output *server.GetDetailsOutput
	var err error

	if entry, ok := c.snapshotCache.Get(alias); ok {
		output, err = c.serverService.GetDetailsWithSnapshot(ctx, &server.GetDetailsWithSnapshotInput{
			Alias: alias,
			Entry: entry,
		})
	} else {
		output, err = c.serverService.GetDetails(ctx, &server.GetDetailsInput{
			Alias: alias,
		})
		if err == nil && output.Details.CacheEntry != nil {
			c.snapshotCache.Put(alias, output.Details.CacheEntry)
		}
	}
	if err != nil {
		log.Printf("Error getting details for %s: %v", alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	return RespondWithEmbed(s, i, renderGameDetails(output.Details))
}

// handleList handles the list subcommand
func (c *DomCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.serverService.ListServers(ctx, &server.ListServersInput{})
	if err != nil {
		log.Printf("Error listing servers: %v", err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	return RespondWithEmbed(s, i, renderServerList(output.Servers))
}

// handleRemove handles the remove subcommand
func (c *DomCommand) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, alias string) error {
	ctx := context.Background()

	_, err := c.serverService.RemoveServer(ctx, &server.RemoveServerInput{
		Alias: alias,
	})
	if err != nil {
		log.Printf("Error removing server %s: %v", alias, err)
		return RespondWithError(s, i, serviceErrorMessage(err))
	}

	c.snapshotCache.Invalidate(alias)

	return RespondWithMessage(s, i, fmt.Sprintf("Stopped tracking **%s**.", alias))
}

// serviceErrorMessage maps service errors to user-facing text
func serviceErrorMessage(err error) string {
	switch {
	case errors.Is(err, server.ErrServerNotFound):
		return server.ErrServerNotFound.Error()
	case errors.Is(err, server.ErrServerUnreachable):
		return "The game server is unavailable right now. Try again later."
	case errors.Is(err, server.ErrServerAlreadyExists):
		return server.ErrServerAlreadyExists.Error()
	case errors.Is(err, server.ErrInvalidNation):
		return "That nation id is not in the catalog."
	case errors.Is(err, server.ErrStoreFailure):
		return "Internal error, please try again."
	default:
		return err.Error()
	}
}
