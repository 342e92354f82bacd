package discord

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// MaxListedDifficulties caps the difficulty lines of a beatmapset embed.
const MaxListedDifficulties = 15

var (
	beatmapsetLinkPattern = regexp.MustCompile(`https?://osu\.ppy\.sh/beatmapsets/(\d+)(?:#(?:osu|taiko|fruits|mania)/(\d+))?`)
	beatmapLinkPattern    = regexp.MustCompile(`https?://osu\.ppy\.sh/b(?:eatmaps)?/(\d+)`)
)

// BeatmapLink is the beatmap a chat message points at. BeatmapID is zero
// when the link names a whole set.
type BeatmapLink struct {
	BeatmapsetID int
	BeatmapID    int
}

// ParseBeatmapLink finds an osu! beatmap link in content. Set links win
// over direct difficulty links.
func ParseBeatmapLink(content string) (BeatmapLink, bool) {
	if m := beatmapsetLinkPattern.FindStringSubmatch(content); m != nil {
		setID, err := strconv.Atoi(m[1])
		if err != nil {
			return BeatmapLink{}, false
		}
		link := BeatmapLink{BeatmapsetID: setID}
		if m[2] != "" {
			if link.BeatmapID, err = strconv.Atoi(m[2]); err != nil {
				return BeatmapLink{}, false
			}
		}
		return link, true
	}
	if m := beatmapLinkPattern.FindStringSubmatch(content); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return BeatmapLink{}, false
		}
		return BeatmapLink{BeatmapID: id}, true
	}
	return BeatmapLink{}, false
}

// messageCreate answers beatmap links with a summary embed. Lookups use the
// author's tokens, so links from unlinked users are ignored.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || b.Services == nil || b.Services.Profiles == nil {
		return
	}
	link, ok := ParseBeatmapLink(m.Content)
	if !ok {
		return
	}
	metrics.BotCommands.WithLabelValues(CommandBeatmapLink).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	embed, err := beatmapLinkEmbed(ctx, b.Services.Profiles, m.Author.ID, link)
	if errors.Is(err, ErrNotLinked) {
		return
	}
	if err != nil {
		log.Error("Failed to fetch linked beatmap", LogKeyUserID, m.Author.ID, LogKeyBeatmapID, link.BeatmapID, LogKeyError, err)
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Error("Failed to send beatmap embed", LogKeyError, err)
	}
}

func beatmapLinkEmbed(ctx context.Context, profiles *ProfileService, discordID string, link BeatmapLink) (*discordgo.MessageEmbed, error) {
	if link.BeatmapID != 0 {
		beatmap, err := profiles.Beatmap(ctx, discordID, link.BeatmapID)
		if err != nil {
			return nil, err
		}
		return beatmapEmbed(beatmap), nil
	}

	set, err := profiles.Beatmapset(ctx, discordID, link.BeatmapsetID)
	if err != nil {
		return nil, err
	}
	return beatmapsetEmbed(set), nil
}

func beatmapEmbed(bm *osu.Beatmap) *discordgo.MessageEmbed {
	set := bm.Beatmapset
	if set == nil {
		set = &osu.Beatmapset{ID: bm.BeatmapsetID}
	}
	setID := set.ID
	if setID == 0 {
		setID = bm.BeatmapsetID
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "**Mapped by** %s\n", set.Creator)
	fmt.Fprintf(&desc, "**Status:** %s • **Mode:** %s\n", titleCase(bm.Status), bm.Mode)
	fmt.Fprintf(&desc, "**Difficulty:** %.2f★\n\n", bm.DifficultyRating)
	fmt.Fprintf(&desc, "**Length:** %s • **BPM:** %g\n", formatLength(bm.TotalLength), bm.BPM)
	fmt.Fprintf(&desc, "**Objects:** %d (%d circles, %d sliders, %d spinners)\n",
		bm.CountCircles+bm.CountSliders+bm.CountSpinners, bm.CountCircles, bm.CountSliders, bm.CountSpinners)
	fmt.Fprintf(&desc, "**Max Combo:** %dx\n\n", bm.MaxCombo)
	fmt.Fprintf(&desc, "**CS:** %g • **AR:** %g • **OD:** %g • **HP:** %g", bm.CS, bm.AR, bm.OD, bm.HP)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - %s [%s]", set.Artist, set.Title, bm.Version),
		URL:         fmt.Sprintf("https://osu.ppy.sh/b/%d", bm.ID),
		Description: desc.String(),
		Color:       ColorOsuPink,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Beatmap ID: %d • Beatmapset ID: %d", bm.ID, setID)},
	}
	if set.Covers.Cover2x != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: set.Covers.Cover2x}
	}
	if set.Covers.List2x != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: set.Covers.List2x}
	}
	return embed
}

func beatmapsetEmbed(set *osu.Beatmapset) *discordgo.MessageEmbed {
	length := "-"
	var modes []string
	seenModes := make(map[string]bool)
	if len(set.Beatmaps) > 0 {
		shortest, longest := set.Beatmaps[0].TotalLength, set.Beatmaps[0].TotalLength
		for _, bm := range set.Beatmaps {
			shortest = min(shortest, bm.TotalLength)
			longest = max(longest, bm.TotalLength)
			if bm.Mode != "" && !seenModes[bm.Mode] {
				seenModes[bm.Mode] = true
				modes = append(modes, bm.Mode)
			}
		}
		length = formatLength(shortest)
		if longest != shortest {
			length += " - " + formatLength(longest)
		}
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "**Length:** %s **BPM:** %g **Modes:** %s\n", length, set.BPM, joinOrNA(modes))
	fmt.Fprintf(&desc, "**Download:** [map](https://osu.ppy.sh/d/%[1]d) | [nerinyan](https://api.nerinyan.moe/d/%[1]d) | "+
		"[beatconnect](https://beatconnect.io/b/%[1]d) | [sayobot](https://osu.sayobot.cn/osu.php?s=%[1]d)\n\n", set.ID)

	for n, bm := range set.Beatmaps {
		if n == MaxListedDifficulties {
			fmt.Fprintf(&desc, "…and %d more\n", len(set.Beatmaps)-n)
			break
		}
		fmt.Fprintf(&desc, "▸ **[%s](https://osu.ppy.sh/b/%d):** %.2f★ • Max Combo: %dx\n",
			bm.Version, bm.ID, bm.DifficultyRating, bm.MaxCombo)
		fmt.Fprintf(&desc, "  **AR:** %g • **OD:** %g • **HP:** %g • **CS:** %g\n", bm.AR, bm.OD, bm.HP, bm.CS)
	}

	status := titleCase(set.Status)
	if set.RankedDate != nil && strings.EqualFold(set.Status, "ranked") {
		fmt.Fprintf(&desc, "\n**%s** | %s", status, set.RankedDate.Format("Jan 02, 2006"))
	} else {
		fmt.Fprintf(&desc, "\n**%s**", status)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - %s by %s", set.Artist, set.Title, set.Creator),
		URL:         fmt.Sprintf("https://osu.ppy.sh/beatmapsets/%d", set.ID),
		Description: desc.String(),
		Color:       ColorOsuPink,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Beatmapset ID: %d", set.ID)},
	}
	if set.Covers.Card2x != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: set.Covers.Card2x}
	}
	if set.Covers.Cover2x != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: set.Covers.Cover2x}
	}
	return embed
}
