package fakebackend

import (
	"net/http"
	"sort"

	"github.com/ougggg/pai-picture/client"
)

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req client.UserRegisterRequest
	if !b.decode(w, r, &req) {
		return
	}
	switch {
	case len(req.UserAccount) < 4:
		b.writeFail(w, client.CodeParamsError, "account too short")
		return
	case len(req.UserPassword) < 8:
		b.writeFail(w, client.CodeParamsError, "password too short")
		return
	case req.UserPassword != req.CheckPassword:
		b.writeFail(w, client.CodeParamsError, "passwords do not match")
		return
	}

	b.mu.Lock()
	if _, taken := b.accounts[req.UserAccount]; taken {
		b.mu.Unlock()
		b.writeFail(w, client.CodeParamsError, "account already exists")
		return
	}
	name := req.UserName
	if name == "" {
		name = req.UserAccount
	}
	id := b.addUserLocked(req.UserAccount, req.UserPassword, name)
	b.mu.Unlock()

	b.writeOK(w, id)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req client.UserLoginRequest
	if !b.decode(w, r, &req) {
		return
	}
	b.mu.Lock()
	id, ok := b.accounts[req.UserAccount]
	var acc *account
	if ok {
		acc = b.users[id]
	}
	b.mu.Unlock()
	if acc == nil || acc.password != req.UserPassword {
		b.writeFail(w, client.CodeParamsError, "user does not exist or password is wrong")
		return
	}
	b.openSession(w, id)
	b.writeOK(w, acc.vo)
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	live := false
	if c, err := r.Cookie(SessionCookie); err == nil {
		b.mu.Lock()
		_, live = b.sessions[c.Value]
		delete(b.sessions, c.Value)
		b.mu.Unlock()
	}
	if !live {
		b.writeFail(w, client.CodeOperationFailed, "not logged in")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	b.writeOK(w, true)
}

func (b *Backend) getLoginUser(w http.ResponseWriter, r *http.Request) {
	id, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	b.mu.Lock()
	vo := b.users[id].vo
	b.mu.Unlock()
	b.writeOK(w, vo)
}

func (b *Backend) getUserVO(w http.ResponseWriter, r *http.Request) {
	id := client.ID(r.URL.Query().Get("id"))
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[id]; !ok {
		b.writeFail(w, client.CodeNotFound, "user not found")
		return
	}
	b.writeOK(w, b.userVOLocked(id))
}

func (b *Backend) userVOLocked(id client.ID) client.UserVO {
	acc := b.users[id]
	followers := 0
	for _, followees := range b.follows {
		if followees[id] {
			followers++
		}
	}
	return client.UserVO{
		ID:             id,
		UserAccount:    acc.vo.UserAccount,
		UserName:       acc.vo.UserName,
		UserRole:       acc.vo.UserRole,
		FollowerCount:  client.Count(followers),
		FollowingCount: client.Count(len(b.follows[id])),
	}
}

func sortedIDs(set map[client.ID]bool) []client.ID {
	out := make([]client.ID, 0, len(set))
	for id, on := range set {
		if on {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
