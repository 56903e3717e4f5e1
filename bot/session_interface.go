/* session_interface.go
 * Contains the subset of the discordgo session the handlers depend on
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is the slice of *discordgo.Session the handlers call. The
// signature matches discordgo exactly so the real session satisfies it.
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ DiscordSession = (*discordgo.Session)(nil)
