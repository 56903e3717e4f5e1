/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"mascot-madness/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"go.mongodb.org/mongo-driver/mongo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Mascot Madness Bot v1.0\n")
	res.WriteString("`$info`: Get information about the tournament including year, bracket, regions and number of picks\n")
	res.WriteString("`$new [name]`: Starts a fresh bracket. An existing bracket for this tournament is replaced\n")
	res.WriteString("`$pick region team`: Picks the winner of the current matchup in that region. There is fuzzy matching on names, but you should try and have a close match for the best results. Names that contain two or more words need to be encased in \" (e.g. \"north carolina\")\n")
	res.WriteString("`$show`: shows the current status of your bracket, region by region\n")
	res.WriteString("`$reset region`: clears your picks for one region so you can redo it. Resetting a completed region also clears its final four slot\n")
	res.WriteString("`$publish`: locks in a completed bracket so it is included in scoring. Incomplete brackets cannot be published\n")
	res.WriteString("`$champion`: shows the overall champion picked in your bracket\n")
	res.WriteString("`$results`: shows the real tournament results recorded so far\n")
	res.WriteString("`$leaderboard`: shows which brackets have the most points. Ties share a rank\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// infoHandler handles the $info command with a DiscordSession interface
func (b *Bot) infoHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.GetTournamentInfo()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occured")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// newBracketHandler handles the $new command with a DiscordSession interface.
// Everything after the command word is the bracket's display name.
func (b *Bot) newBracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	name := strings.TrimSpace(strings.TrimPrefix(message.Content, "$new"))
	if name == "" {
		name = fmt.Sprintf("%s's bracket", user.Username)
	}

	res := fmt.Sprintf("%s's bracket has been created. Use $pick to fill it in\n", user.Username)
	if _, err := b.APIPtr.CreateBracket(user, name); err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured creating %s's bracket: %s", user.Username, err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// pickWinnerHandler handles the $pick command with a DiscordSession interface
func (b *Bot) pickWinnerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	// we use splitter here instead of go's built in splitter because now we can
	// have team names that contain spaces e.g. "north carolina" recognised as
	// one team not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	msg, _ := spaceSplitter.Split(message.Content)
	if len(msg) < 3 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $pick region team")
		return
	}
	regionName := strings.ToLower(msg[1])
	teamInput := strings.Trim(strings.Join(msg[2:], " "), "\"")

	res, err := b.APIPtr.PickWinner(user, regionName, teamInput)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $new to start one\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured setting %s's pick: %s", user.Username, err)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// showBracketHandler handles the $show command with a DiscordSession interface
func (b *Bot) showBracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res, err := b.APIPtr.ShowBracket(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $new to start one\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured showing %s's bracket", user.Username)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// resetRegionHandler handles the $reset command with a DiscordSession interface
func (b *Bot) resetRegionHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	fields := strings.Fields(message.Content)
	if len(fields) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $reset region")
		return
	}
	regionName := strings.ToLower(fields[1])

	res := fmt.Sprintf("%s's %s picks have been reset\n", user.Username, regionName)
	if err := b.APIPtr.ResetRegion(user, regionName); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $new to start one\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured resetting %s's picks: %s", user.Username, err)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// publishBracketHandler handles the $publish command with a DiscordSession interface
func (b *Bot) publishBracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	res := fmt.Sprintf("%s's bracket has been published and will be scored\n", user.Username)
	if err := b.APIPtr.PublishBracket(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $new to start one\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured publishing %s's bracket: %s", user.Username, err)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// championHandler handles the $champion command with a DiscordSession interface
func (b *Bot) championHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	res, err := b.APIPtr.GetChampion(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored. Use $new to start one\n", user.Username)
		} else {
			log.Println(err)
			res = fmt.Sprintf("An error occured getting %s's champion", user.Username)
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// resultsHandler handles the $results command with a DiscordSession interface
func (b *Bot) resultsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetResults()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = "No results have been recorded yet"
		} else {
			log.Println(err)
			res = "An error occurred getting the results"
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetLeaderboard()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = "No brackets have been scored yet"
		} else {
			log.Println(err)
			res = "An error occurred getting the leaderboard"
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case strings.HasPrefix(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case strings.HasPrefix(message.Content, "$info"):
		b.infoHandler(session, message)

	case strings.HasPrefix(message.Content, "$new"):
		b.newBracketHandler(session, message)

	case strings.HasPrefix(message.Content, "$pick"):
		b.pickWinnerHandler(session, message)

	case strings.HasPrefix(message.Content, "$show"):
		b.showBracketHandler(session, message)

	case strings.HasPrefix(message.Content, "$reset"):
		b.resetRegionHandler(session, message)

	case strings.HasPrefix(message.Content, "$publish"):
		b.publishBracketHandler(session, message)

	case strings.HasPrefix(message.Content, "$champion"):
		b.championHandler(session, message)

	case strings.HasPrefix(message.Content, "$results"):
		b.resultsHandler(session, message)

	case strings.HasPrefix(message.Content, "$leaderboard"):
		b.leaderboardHandler(session, message)
	}
}
