/* mock_session.go
 * In-memory DiscordSession used by the handler tests
 */

package bot

import "github.com/bwmarrin/discordgo"

// MockDiscordSession records every message a handler sends so tests can
// assert on the reply without a live gateway connection.
type MockDiscordSession struct {
	SentMessages  []MockMessage
	ErrorToReturn error // returned from ChannelMessageSend when set
}

// MockMessage is one recorded channel send.
type MockMessage struct {
	ChannelID string
	Content   string
}

func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{}
}

// ChannelMessageSend records the message and echoes it back the way the real
// session would.
func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	m.SentMessages = append(m.SentMessages, MockMessage{ChannelID: channelID, Content: content})
	return &discordgo.Message{ID: "mock_message_id", ChannelID: channelID, Content: content}, nil
}

// GetLastMessage returns the most recent recorded send, or a zero value when
// nothing has been sent.
func (m *MockDiscordSession) GetLastMessage() MockMessage {
	if len(m.SentMessages) == 0 {
		return MockMessage{}
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages discards the recorded sends.
func (m *MockDiscordSession) ClearMessages() {
	m.SentMessages = nil
}
