package telegram

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// channelUsername addresses public channels and groups by @username.
type channelUsername string

func (c channelUsername) Recipient() string {
	return string(c)
}

func parseRecipient(chatID string) tele.Recipient {
	chatID = strings.TrimSpace(chatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tele.ChatID(id)
	}

	if !strings.HasPrefix(chatID, "@") {
		chatID = "@" + chatID
	}
	return channelUsername(chatID)
}
