// Package chat defines the actor-context contract the command and permission
// layers consume. Adapters (Telegram, test fakes) implement Context; the rest
// of the toolkit never imports a platform client directly.
package chat

// Kind is the type of chat a message arrived in.
type Kind int

const (
	KindUnknown Kind = iota
	KindPrivate
	KindGroup
	KindSuperGroup
)

// String returns the lowercase platform name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPrivate:
		return "private"
	case KindGroup:
		return "group"
	case KindSuperGroup:
		return "supergroup"
	default:
		return "unknown"
	}
}

// Context carries everything the toolkit needs to know about one incoming
// message: where it came from, who sent it, their status in the chat, and a
// way to answer. One Context per message; implementations may resolve admin
// status lazily but must be safe to query more than once.
type Context interface {
	ChatKind() Kind
	ChatID() int64
	UserID() int64
	Username() string
	IsAdmin() bool
	IsCreator() bool
	Text() string
	Reply(text string) error
}
