package fakebackend

import (
	"net/http"

	"github.com/ougggg/pai-picture/client"
)

func (b *Backend) follow(w http.ResponseWriter, r *http.Request) {
	b.setFollow(w, r, true)
}

func (b *Backend) unfollow(w http.ResponseWriter, r *http.Request) {
	b.setFollow(w, r, false)
}

func (b *Backend) setFollow(w http.ResponseWriter, r *http.Request, on bool) {
	me, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	var req client.UserFollowRequest
	if !b.decode(w, r, &req) {
		return
	}
	if req.TargetUserID == "" {
		b.writeFail(w, client.CodeParamsError, "targetUserId is required")
		return
	}
	if req.TargetUserID == me {
		b.writeFail(w, client.CodeParamsError, "cannot follow yourself")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.TargetUserID]; !exists {
		b.writeFail(w, client.CodeNotFound, "user not found")
		return
	}
	if b.follows[me] == nil {
		b.follows[me] = map[client.ID]bool{}
	}
	if on {
		b.follows[me][req.TargetUserID] = true
	} else {
		delete(b.follows[me], req.TargetUserID)
	}
	b.writeOK(w, true)
}

func (b *Backend) isFollowing(w http.ResponseWriter, r *http.Request) {
	me, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	target := client.ID(r.URL.Query().Get("targetUserId"))
	if target == "" {
		b.writeFail(w, client.CodeParamsError, "targetUserId is required")
		return
	}
	b.mu.Lock()
	following := b.follows[me][target]
	b.mu.Unlock()
	b.writeOK(w, following)
}

func (b *Backend) listFollowers(w http.ResponseWriter, r *http.Request) {
	b.listFollow(w, r, func(subject client.ID) []client.ID {
		set := map[client.ID]bool{}
		for follower, followees := range b.follows {
			if followees[subject] {
				set[follower] = true
			}
		}
		return sortedIDs(set)
	})
}

func (b *Backend) listFollowing(w http.ResponseWriter, r *http.Request) {
	b.listFollow(w, r, func(subject client.ID) []client.ID {
		return sortedIDs(b.follows[subject])
	})
}

// listFollow pages the users selected by pick, which runs under b.mu.
func (b *Backend) listFollow(w http.ResponseWriter, r *http.Request, pick func(client.ID) []client.ID) {
	me, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	var req client.UserFollowQueryRequest
	if !b.decode(w, r, &req) {
		return
	}
	subject := req.UserID
	if subject == "" {
		subject = me
	}

	b.mu.Lock()
	ids := pick(subject)
	users := make([]client.UserVO, 0, len(ids))
	for _, id := range ids {
		users = append(users, b.userVOLocked(id))
	}
	b.mu.Unlock()

	b.writeOK(w, pageOf(users, req.PageRequest))
}
