package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// commandTimeout bounds the work done for a single interaction.
const commandTimeout = 15 * time.Second

// OsuCommand returns the /osu command group and its handler
func OsuCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	modeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: domain.ModeDisplayNames[domain.ModeStandard], Value: domain.ModeStandard},
		{Name: domain.ModeDisplayNames[domain.ModeTaiko], Value: domain.ModeTaiko},
		{Name: domain.ModeDisplayNames[domain.ModeCatch], Value: domain.ModeCatch},
		{Name: domain.ModeDisplayNames[domain.ModeMania], Value: domain.ModeMania},
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        CommandOsu,
		Description: "osu! account commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandLink,
				Description: "Check whether your osu! account is linked",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandUnlink,
				Description: "Unlink your osu! account",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandAuth,
				Description: "Get a link to authorize your osu! account",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandProf,
				Description: "Show an osu! profile",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionUser,
						Description: "osu! username (default: yourself)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionMode,
						Description: "Game mode (default: osu!standard)",
						Required:    false,
						Choices:     modeChoices,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        OptionDetailed,
						Description: "Also show extended profile details",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandTop,
				Description: "Show the best plays of an osu! user",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionUser,
						Description: "osu! username (default: yourself)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionMode,
						Description: "Game mode (default: osu!standard)",
						Required:    false,
						Choices:     modeChoices,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		sub, options := getSubcommand(i)
		user := getInteractionUser(i)
		if user == nil {
			return
		}

		public := sub == SubcommandProf || sub == SubcommandTop
		if !deferResponse(s, i, !public) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
		logger.FromContext(ctx).Debug("Handling osu command", LogKeyCommand, sub, LogKeyUserID, user.ID)

		switch sub {
		case SubcommandLink:
			handleLinkStatus(ctx, s, i, svc, user)
		case SubcommandUnlink:
			handleUnlink(ctx, s, i, svc, user)
		case SubcommandAuth:
			sendEmbed(s, i, authEmbed(svc.Auth.AuthCodeURL(user.ID)))
		case SubcommandProf:
			handleProfile(ctx, s, i, svc, user, stringOption(options, OptionUser), stringOption(options, OptionMode), boolOption(options, OptionDetailed))
		case SubcommandTop:
			handleTop(ctx, s, i, svc, user, stringOption(options, OptionUser), stringOption(options, OptionMode))
		default:
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}

func handleLinkStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User) {
	record, err := svc.Links.Status(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(s, i, MsgNotLinked)
		return
	}
	if err != nil {
		slog.Error("Failed to get link status", LogKeyUserID, user.ID, LogKeyError, err)
		respondError(s, i, friendlyError(err))
		return
	}
	sendEmbed(s, i, linkStatusEmbed(record))
}

func handleUnlink(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User) {
	err := svc.Links.Unlink(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(s, i, MsgNotLinked)
		return
	}
	if err != nil {
		slog.Error("Failed to unlink", LogKeyUserID, user.ID, LogKeyError, err)
		respondError(s, i, friendlyError(err))
		return
	}
	if svc.Profiles != nil {
		svc.Profiles.Forget(user.ID)
	}
	sendEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "osu! account unlinked",
		Description: MsgUnlinked,
		Color:       ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	})
}

func handleProfile(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User, username, mode string, detailed bool) {
	mode = normalizeMode(mode)
	profile, err := svc.Profiles.Lookup(ctx, user.ID, username, mode)
	if err != nil {
		logLookupFailure(user.ID, err)
		respondError(s, i, friendlyError(err))
		return
	}
	if detailed {
		sendEmbeds(s, i, profileEmbed(profile, mode), profileDetailsEmbed(profile))
		return
	}
	sendEmbed(s, i, profileEmbed(profile, mode))
}

func handleTop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User, username, mode string) {
	mode = normalizeMode(mode)
	profile, scores, err := svc.Profiles.TopScores(ctx, user.ID, username, mode)
	if err != nil {
		logLookupFailure(user.ID, err)
		respondError(s, i, friendlyError(err))
		return
	}
	if len(scores) == 0 {
		respondError(s, i, fmt.Sprintf(MsgNoTopScores, profile.Username, domain.ModeDisplayNames[mode]))
		return
	}
	sendEmbed(s, i, topScoresEmbed(profile, scores, mode))
}

// logLookupFailure logs errors the caller cannot explain by their own input.
func logLookupFailure(userID string, err error) {
	if errors.Is(err, ErrNotLinked) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidRequest) {
		return
	}
	slog.Error("Failed to fetch osu! data", LogKeyUserID, userID, LogKeyError, err)
}

func linkStatusEmbed(record *domain.LinkRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔗 osu! account linked",
		Description: fmt.Sprintf(MsgLinkedSince, record.LinkedAt.Unix()),
		Color:       ColorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
}

func authEmbed(url string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Authorize osu!lounge",
		Description: fmt.Sprintf(MsgAuthPrompt, url),
		URL:         url,
		Color:       ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
}

func profileEmbed(user *osu.User, mode string) *discordgo.MessageEmbed {
	stats := user.Statistics
	rank := func(r *int) string {
		if r == nil {
			return "-"
		}
		return fmt.Sprintf("#%d", *r)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s :flag_%s: (%s)", user.Username, strings.ToLower(user.CountryCode), domain.ModeDisplayNames[mode]),
		URL:   fmt.Sprintf("https://osu.ppy.sh/users/%d/%s", user.ID, mode),
		Color: ColorOsuPink,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Global Rank", Value: rank(stats.GlobalRank), Inline: true},
			{Name: "Country Rank", Value: rank(stats.CountryRank), Inline: true},
			{Name: "PP", Value: fmt.Sprintf("%.2f", stats.PP), Inline: true},
			{Name: "Accuracy", Value: fmt.Sprintf("%.2f%%", stats.HitAccuracy), Inline: true},
			{Name: "Play Count", Value: fmt.Sprintf("%d", stats.PlayCount), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d (%d%%)", stats.Level.Current, stats.Level.Progress), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
}

func profileDetailsEmbed(user *osu.User) *discordgo.MessageEmbed {
	stats := user.Statistics
	grades := stats.GradeCounts

	fields := []*discordgo.MessageEmbedField{
		{Name: "Peak Rank", Value: peakRank(user), Inline: true},
		{Name: "Ranked Score", Value: formatInt(stats.RankedScore), Inline: true},
		{Name: "Total Score", Value: formatInt(stats.TotalScore), Inline: true},
		{Name: "Grades", Value: fmt.Sprintf("SS `%d` SSH `%d` S `%d` SH `%d` A `%d`", grades.SS, grades.SSH, grades.S, grades.SH, grades.A)},
		{Name: "Hits", Value: fmt.Sprintf("300 `%s` 100 `%s` 50 `%s` miss `%s`",
			formatInt(stats.Count300), formatInt(stats.Count100), formatInt(stats.Count50), formatInt(stats.CountMiss))},
		{Name: "Previous Usernames", Value: joinOrNA(user.PreviousUsernames), Inline: true},
		{Name: "Playstyle", Value: joinOrNA(user.Playstyle), Inline: true},
		{Name: "Team", Value: teamName(user.Team), Inline: true},
		{Name: "Occupation", Value: orNA(user.Occupation), Inline: true},
		{Name: "Interests", Value: orNA(user.Interests), Inline: true},
		{Name: "Location", Value: orNA(user.Location), Inline: true},
		{Name: "Discord", Value: orNA(user.Discord), Inline: true},
		{Name: "Twitter", Value: orNA(user.Twitter), Inline: true},
		{Name: "Kudosu", Value: fmt.Sprintf("%d (available: %d)", user.Kudosu.Total, user.Kudosu.Available), Inline: true},
		{Name: "Pending Beatmapsets", Value: formatInt(int64(user.PendingBeatmapsetCount)), Inline: true},
		{Name: "Replays Watched by Others", Value: formatInt(int64(stats.ReplaysWatchedByOthers)), Inline: true},
		{Name: "Supporter Level", Value: fmt.Sprintf("%d", user.SupportLevel), Inline: true},
	}
	if user.LastVisit != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Last Online", Value: fmt.Sprintf("<t:%d:R>", user.LastVisit.Unix()), Inline: true})
	}

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Additional details for %s", user.Username),
		Color:  ColorOsuPink,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
	if user.Cover.URL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: user.Cover.URL}
	}
	return embed
}

func topScoresEmbed(user *osu.User, scores []osu.Score, mode string) *discordgo.MessageEmbed {
	if len(scores) > TopScoresLimit {
		scores = scores[:TopScoresLimit]
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(scores))
	for n, score := range scores {
		mods := "No mods"
		if len(score.Mods) > 0 {
			mods = "+" + strings.Join(score.Mods, "")
		}
		hits := score.Statistics
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d", n+1),
			Value: fmt.Sprintf("[%s - %s [%s]](https://osu.ppy.sh/b/%d)\n**%spp** • %.2f%% • %s • %dx\n%s • %s\n300 `%d` 100 `%d` 50 `%d` miss `%d`",
				score.Beatmapset.Artist, score.Beatmapset.Title, score.Beatmap.Version, score.Beatmap.ID,
				formatFloat(score.PP), score.Accuracy*100, score.Rank, score.MaxCombo,
				mods, score.CreatedAt.Format("Jan 02, 2006"),
				hits.Count300, hits.Count100, hits.Count50, hits.CountMiss),
		})
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("%s top plays for %s", domain.ModeDisplayNames[mode], user.Username),
		URL:       fmt.Sprintf("https://osu.ppy.sh/users/%d/%s", user.ID, mode),
		Color:     ColorOsuPink,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL},
		Fields:    fields,
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterOsuLounge},
	}
}

func peakRank(user *osu.User) string {
	if user.RankHighest == nil {
		return NotAvailable
	}
	return "#" + formatInt(int64(user.RankHighest.Rank))
}

func teamName(team *osu.Team) string {
	if team == nil || team.Name == "" {
		return NotAvailable
	}
	return fmt.Sprintf("[%s (%s)](https://osu.ppy.sh/teams/%d)", team.Name, team.ShortName, team.ID)
}
