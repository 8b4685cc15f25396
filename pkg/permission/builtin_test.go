package permission

import (
	"testing"

	"github.com/keshon/tgclick/pkg/chat"
)

func TestChatKindPermissions(t *testing.T) {
	private := &fakeContext{kind: chat.KindPrivate}
	group := &fakeContext{kind: chat.KindGroup}
	super := &fakeContext{kind: chat.KindSuperGroup}

	tests := []struct {
		name string
		perm Permission
		ctx  *fakeContext
		want bool
	}{
		{"private in private", PrivateChat, private, true},
		{"private in group", PrivateChat, group, false},
		{"group in group", GroupChat, group, true},
		{"group in supergroup", GroupChat, super, false},
		{"supergroup in supergroup", SuperGroupChat, super, true},
		{"supergroup in private", SuperGroupChat, private, false},
		{"any group in group", AnyGroupChat, group, true},
		{"any group in supergroup", AnyGroupChat, super, true},
		{"any group in private", AnyGroupChat, private, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.perm.Evaluate(tt.ctx); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserPermissions(t *testing.T) {
	ctx := &fakeContext{userID: 42, username: "markus"}

	if !UserID(1, 42).Evaluate(ctx) {
		t.Error("UserID(1, 42) should grant user 42")
	}
	if UserID(1, 2).Evaluate(ctx) {
		t.Error("UserID(1, 2) should deny user 42")
	}

	if !Username("@markus").Evaluate(ctx) {
		t.Error("Username should strip the leading @")
	}
	if !Username("other", "markus").Evaluate(ctx) {
		t.Error("Username should grant on any listed name")
	}
	if Username("other").Evaluate(ctx) {
		t.Error("Username should deny unlisted names")
	}
	if Username(" ", "").Evaluate(&fakeContext{username: ""}) {
		t.Error("blank names must be dropped, not matched")
	}
}

func TestAdminPermissions(t *testing.T) {
	tests := []struct {
		name string
		perm Permission
		ctx  *fakeContext
		want bool
	}{
		{"admin granted", GroupAdmin, &fakeContext{kind: chat.KindGroup, admin: true}, true},
		{"admin denied for plain member", GroupAdmin, &fakeContext{kind: chat.KindGroup}, false},
		{"creator granted", GroupCreator, &fakeContext{kind: chat.KindGroup, creator: true}, true},
		{"creator denied for admin", GroupCreator, &fakeContext{kind: chat.KindGroup, admin: true}, false},
		{"chat admin accepts creator", ChatAdmin, &fakeContext{kind: chat.KindSuperGroup, creator: true}, true},
		{"chat admin accepts admin", ChatAdmin, &fakeContext{kind: chat.KindSuperGroup, admin: true}, true},
		{"chat admin denies member", ChatAdmin, &fakeContext{kind: chat.KindSuperGroup}, false},
		{"chat admin always true in private", ChatAdmin, &fakeContext{kind: chat.KindPrivate}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.perm.Evaluate(tt.ctx); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnybodyNobody(t *testing.T) {
	ctx := &fakeContext{}
	if !Anybody.Evaluate(ctx) {
		t.Error("Anybody = false, want true")
	}
	if Nobody.Evaluate(ctx) {
		t.Error("Nobody = true, want false")
	}
}
