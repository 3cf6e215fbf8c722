package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pentarch/dombot/internal/connection"
	"github.com/pentarch/dombot/internal/models"
	"github.com/pentarch/dombot/internal/services/server"
)

// renderGameDetails builds the embed for a reconciled server view
func renderGameDetails(details *server.GameDetails) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: details.Alias,
		Color: 0x00ff00, // Green color
	}

	if details.Description != "" {
		embed.Description = details.Description
	}

	if details.Owner != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Owner",
			Value: fmt.Sprintf("<@%s>", details.Owner),
		})
	}

	switch nations := details.Nations.(type) {
	case *server.LobbyDetails:
		renderLobbyFields(embed, nations)
	case *server.StartedDetails:
		renderStartedFields(embed, nations)
	}

	return embed
}

// renderLobbyFields adds lobby player and capacity fields
func renderLobbyFields(embed *discordgo.MessageEmbed, lobby *server.LobbyDetails) {
	if lobby.Era != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Era",
			Value:  string(*lobby.Era),
			Inline: true,
		})
	}

	var sb strings.Builder
	for _, player := range lobby.Players {
		fmt.Fprintf(&sb, "%s — <@%s>\n", player.NationName, player.PlayerID)
	}
	for slot := 0; slot < lobby.RemainingSlots; slot++ {
		sb.WriteString("*open slot*\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("No players yet")
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("Players (%d open)", lobby.RemainingSlots),
		Value: sb.String(),
	})
}

// renderStartedFields adds the live-game fields for a started server
func renderStartedFields(embed *discordgo.MessageEmbed, started *server.StartedDetails) {
	embed.Title = fmt.Sprintf("%s (%s)", embed.Title, started.GameName)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Address",
		Value:  started.Address,
		Inline: true,
	})

	switch state := started.State.(type) {
	case *server.PlayingState:
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name:   "Turn",
				Value:  fmt.Sprintf("%d", state.Turn),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Time remaining",
				Value:  fmt.Sprintf("%dh %dm", state.HoursRemaining, state.MinsRemaining),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:  "Nations",
				Value: renderPotentialPlayers(state.Players),
			},
		)
	case *server.UploadingState:
		var sb strings.Builder
		for _, player := range state.Players {
			mark := "❌"
			if player.Uploaded {
				mark = "✅"
			}
			fmt.Fprintf(&sb, "%s %s\n", mark, renderPotentialPlayer(player.Player))
		}
		if sb.Len() == 0 {
			sb.WriteString("No nations yet")
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Uploading pretenders",
			Value: sb.String(),
		})
	}
}

// renderPotentialPlayers renders the playing-state nation list
func renderPotentialPlayers(players []server.PotentialPlayer) string {
	if len(players) == 0 {
		return "No nations"
	}

	var sb strings.Builder
	for _, player := range players {
		switch p := player.(type) {
		case server.RegisteredOnly:
			fmt.Fprintf(&sb, "⚠️ %s — <@%s> (not in game)\n", p.Name, p.Player)
		case server.RegisteredAndGame:
			fmt.Fprintf(&sb, "%s %s — <@%s>\n", submissionMark(p.Details.Submitted), p.Details.NationName, p.Player)
		case server.GameOnly:
			fmt.Fprintf(&sb, "%s %s\n", submissionMark(p.Details.Submitted), p.Details.NationName)
		}
	}
	return sb.String()
}

// renderPotentialPlayer renders a single nation slot without a mark
func renderPotentialPlayer(player server.PotentialPlayer) string {
	if playerID, ok := player.PlayerID(); ok {
		return fmt.Sprintf("%s — <@%s>", player.NationName(), playerID)
	}
	return player.NationName()
}

// submissionMark maps a submission status to its display mark
func submissionMark(status connection.SubmissionStatus) string {
	switch status {
	case connection.SubmissionDone:
		return "✅"
	case connection.SubmissionPartial:
		return "🕓"
	default:
		return "❌"
	}
}

// renderServerList builds the embed for the tracked server list
func renderServerList(servers []*models.GameServer) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Tracked servers",
		Color: 0x00ff00, // Green color
	}

	if len(servers) == 0 {
		embed.Description = "No servers are being tracked."
		return embed
	}

	var sb strings.Builder
	for _, srv := range servers {
		switch srv.State {
		case models.StateLobby:
			fmt.Fprintf(&sb, "**%s** — lobby (%d players)\n", srv.Alias, srv.Lobby.PlayerCount)
		case models.StateStarted:
			fmt.Fprintf(&sb, "**%s** — `%s`, turn %d\n", srv.Alias, srv.Started.Address, srv.Started.LastSeenTurn)
		}
	}
	embed.Description = sb.String()

	return embed
}
