package permission

import (
	"fmt"
	"strings"

	"github.com/keshon/tgclick/pkg/chat"
)

type named struct {
	name string
	eval func(ctx chat.Context) bool
}

func (n named) Evaluate(ctx chat.Context) bool { return n.eval(ctx) }

func (n named) String() string { return n.name }

// Anybody grants always.
var Anybody Permission = named{"anybody", func(chat.Context) bool { return true }}

// Nobody denies always.
var Nobody Permission = named{"nobody", func(chat.Context) bool { return false }}

// PrivateChat grants only inside a private chat.
var PrivateChat Permission = named{"private_chat", func(ctx chat.Context) bool {
	return ctx.ChatKind() == chat.KindPrivate
}}

// GroupChat grants only inside a normal group chat.
var GroupChat Permission = named{"group_chat", func(ctx chat.Context) bool {
	return ctx.ChatKind() == chat.KindGroup
}}

// SuperGroupChat grants only inside a supergroup chat.
var SuperGroupChat Permission = named{"supergroup_chat", func(ctx chat.Context) bool {
	return ctx.ChatKind() == chat.KindSuperGroup
}}

// AnyGroupChat grants inside either group chat kind.
var AnyGroupChat = Or(GroupChat, SuperGroupChat)

// GroupCreator grants when the sender created the chat.
var GroupCreator Permission = named{"group_creator", func(ctx chat.Context) bool {
	return ctx.IsCreator()
}}

// GroupAdmin grants when the sender is an administrator of the chat.
var GroupAdmin Permission = named{"group_admin", func(ctx chat.Context) bool {
	return ctx.IsAdmin()
}}

// ChatAdmin grants for chat creators and administrators, and always inside a
// private chat, where the sender owns the conversation by definition.
var ChatAdmin Permission = named{"chat_admin", func(ctx chat.Context) bool {
	if ctx.ChatKind() == chat.KindPrivate {
		return true
	}
	return ctx.IsCreator() || ctx.IsAdmin()
}}

// UserID grants when the sender's user id is one of the given ids.
func UserID(ids ...int64) Permission {
	set := make(map[int64]struct{}, len(ids))
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return named{
		name: "user_id(" + strings.Join(parts, "|") + ")",
		eval: func(ctx chat.Context) bool {
			_, ok := set[ctx.UserID()]
			return ok
		},
	}
}

// Username grants when the sender's username is one of the given names.
// A leading '@' is stripped; blank names are dropped.
func Username(names ...string) Permission {
	set := make(map[string]struct{}, len(names))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		if name == "" {
			continue
		}
		set[name] = struct{}{}
		parts = append(parts, name)
	}
	return named{
		name: "username(" + strings.Join(parts, "|") + ")",
		eval: func(ctx chat.Context) bool {
			_, ok := set[ctx.Username()]
			return ok
		},
	}
}
