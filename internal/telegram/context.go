package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/keshon/tgclick/pkg/chat"
)

// messageContext adapts one incoming Telegram message to chat.Context. The
// sender's chat-member status is fetched lazily on the first admin/creator
// query and cached for the rest of the dispatch.
type messageContext struct {
	api *tgbotapi.BotAPI
	msg *tgbotapi.Message

	once   sync.Once
	status string
}

func newMessageContext(api *tgbotapi.BotAPI, msg *tgbotapi.Message) *messageContext {
	return &messageContext{api: api, msg: msg}
}

func (c *messageContext) ChatKind() chat.Kind {
	switch c.msg.Chat.Type {
	case "private":
		return chat.KindPrivate
	case "group":
		return chat.KindGroup
	case "supergroup":
		return chat.KindSuperGroup
	default:
		return chat.KindUnknown
	}
}

func (c *messageContext) ChatID() int64 {
	return c.msg.Chat.ID
}

func (c *messageContext) UserID() int64 {
	if c.msg.From == nil {
		return 0
	}
	return c.msg.From.ID
}

func (c *messageContext) Username() string {
	if c.msg.From == nil {
		return ""
	}
	return c.msg.From.UserName
}

func (c *messageContext) IsAdmin() bool {
	return c.memberStatus() == "administrator"
}

func (c *messageContext) IsCreator() bool {
	return c.memberStatus() == "creator"
}

func (c *messageContext) memberStatus() string {
	c.once.Do(func() {
		if c.msg.From == nil {
			return
		}
		member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				ChatID: c.msg.Chat.ID,
				UserID: c.msg.From.ID,
			},
		})
		if err != nil {
			return
		}
		c.status = member.Status
	})
	return c.status
}

func (c *messageContext) Text() string {
	return c.msg.Text
}

func (c *messageContext) Reply(text string) error {
	reply := tgbotapi.NewMessage(c.msg.Chat.ID, text)
	reply.ReplyToMessageID = c.msg.MessageID
	reply.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.api.Send(reply)
	return err
}
