package fakebackend

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ougggg/pai-picture/client"
)

// Redraw task states reported by the image service.
const (
	TaskPending   = "PENDING"
	TaskSucceeded = "SUCCEEDED"
)

// pictureVOLocked decorates a stored picture for viewer. Caller holds b.mu.
func (b *Backend) pictureVOLocked(p *client.PictureVO, viewer client.ID) client.PictureVO {
	vo := *p
	likes, favs := 0, 0
	for _, set := range b.likes {
		if set[p.ID] {
			likes++
		}
	}
	for _, set := range b.favorites {
		if set[p.ID] {
			favs++
		}
	}
	vo.LikeCount = client.Count(likes)
	vo.FavoriteCount = client.Count(favs)
	if viewer != "" {
		vo.IsLiked = b.likes[viewer][p.ID]
		vo.IsFavorited = b.favorites[viewer][p.ID]
	}
	if _, ok := b.users[p.UserID]; ok {
		u := b.userVOLocked(p.UserID)
		vo.User = &u
	}
	return vo
}

// viewer returns the session user without failing the request.
func (b *Backend) viewer(r *http.Request) client.ID {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[c.Value]
}

func (b *Backend) getPictureVO(w http.ResponseWriter, r *http.Request) {
	viewer := b.viewer(r)
	id := client.ID(r.URL.Query().Get("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.pictures[id]
	if !ok {
		b.writeFail(w, client.CodeNotFound, "picture not found")
		return
	}
	if p.SpaceID != "" && p.UserID != viewer {
		b.writeFail(w, client.CodeNoAuth, "no permission")
		return
	}
	b.writeOK(w, b.pictureVOLocked(p, viewer))
}

func (b *Backend) listPictureVOs(w http.ResponseWriter, r *http.Request) {
	viewer := b.viewer(r)
	var req client.PictureQueryRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	var out []client.PictureVO
	for _, id := range b.pictureIDsLocked() {
		p := b.pictures[id]
		if !matches(p, req) {
			continue
		}
		out = append(out, b.pictureVOLocked(p, viewer))
	}
	b.mu.Unlock()

	b.writeOK(w, pageOf(out, req.PageRequest))
}

func (b *Backend) pictureIDsLocked() []client.ID {
	set := make(map[client.ID]bool, len(b.pictures))
	for id := range b.pictures {
		set[id] = true
	}
	return sortedIDs(set)
}

func matches(p *client.PictureVO, q client.PictureQueryRequest) bool {
	switch {
	case q.SpaceID != "" && p.SpaceID != q.SpaceID:
		return false
	case q.SpaceID == "" && p.SpaceID != "":
		return false
	case q.ID != "" && p.ID != q.ID:
		return false
	case q.UserID != "" && p.UserID != q.UserID:
		return false
	case q.Category != "" && p.Category != q.Category:
		return false
	case q.Name != "" && !strings.Contains(p.Name, q.Name):
		return false
	case q.SearchText != "" && !strings.Contains(p.Name+" "+p.Introduction, q.SearchText):
		return false
	}
	return true
}

func (b *Backend) toggle(marks map[client.ID]map[client.ID]bool, on bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := b.sessionUser(w, r)
		if !ok {
			return
		}
		var req client.PictureInteractionRequest
		if !b.decode(w, r, &req) {
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if _, exists := b.pictures[req.PictureID]; !exists {
			b.writeFail(w, client.CodeNotFound, "picture not found")
			return
		}
		if marks[me] == nil {
			marks[me] = map[client.ID]bool{}
		}
		if on {
			marks[me][req.PictureID] = true
		} else {
			delete(marks[me], req.PictureID)
		}
		b.writeOK(w, true)
	}
}

func (b *Backend) listMarked(marks map[client.ID]map[client.ID]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := b.sessionUser(w, r)
		if !ok {
			return
		}
		var req client.PictureInteractionQueryRequest
		if !b.decode(w, r, &req) {
			return
		}
		subject := req.UserID
		if subject == "" {
			subject = me
		}

		b.mu.Lock()
		var out []client.PictureVO
		for _, id := range sortedIDs(marks[subject]) {
			if p, ok := b.pictures[id]; ok {
				out = append(out, b.pictureVOLocked(p, me))
			}
		}
		b.mu.Unlock()

		b.writeOK(w, pageOf(out, req.PageRequest))
	}
}

func (b *Backend) saveToPrivate(w http.ResponseWriter, r *http.Request) {
	me, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	var req client.PictureSaveToPrivateRequest
	if !b.decode(w, r, &req) {
		return
	}
	if req.SpaceID == "" {
		b.writeFail(w, client.CodeParamsError, "spaceId is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	src, exists := b.pictures[req.PictureID]
	if !exists || src.SpaceID != "" {
		b.writeFail(w, client.CodeNotFound, "picture not found")
		return
	}
	cp := *src
	cp.ID = b.newIDLocked()
	cp.UserID = me
	cp.SpaceID = req.SpaceID
	b.pictures[cp.ID] = &cp
	b.writeOK(w, true)
}

func (b *Backend) publishToPublic(w http.ResponseWriter, r *http.Request) {
	me, ok := b.sessionUser(w, r)
	if !ok {
		return
	}
	var req client.PicturePublishToPublicRequest
	if !b.decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	p, exists := b.pictures[req.PictureID]
	if !exists {
		b.writeFail(w, client.CodeNotFound, "picture not found")
		return
	}
	if p.UserID != me {
		b.writeFail(w, client.CodeNoAuth, "no permission")
		return
	}
	if p.SpaceID == "" {
		b.writeFail(w, client.CodeOperationFailed, "picture is already public")
		return
	}
	p.SpaceID = ""
	b.writeOK(w, true)
}

func (b *Backend) createRedrawTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.sessionUser(w, r); !ok {
		return
	}
	var req client.CreatePortraitStyleRedrawTaskRequest
	if !b.decode(w, r, &req) {
		return
	}
	if req.StyleIndex == -1 && req.StyleRefURL == "" {
		b.writeFail(w, client.CodeParamsError, "styleRefUrl is required for styleIndex -1")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.pictures[req.PictureID]; !exists {
		b.writeFail(w, client.CodeNotFound, "picture not found")
		return
	}
	task := &client.RedrawTaskInfo{
		TaskID:     uuid.NewString(),
		TaskStatus: TaskPending,
		SubmitTime: time.Now().UTC().Format(time.DateTime),
		StyleIndex: req.StyleIndex,
	}
	b.tasks[task.TaskID] = task
	b.writeOK(w, client.CreatePortraitStyleRedrawTaskResponse{
		RequestID: uuid.NewString(),
		Output:    *task,
	})
}

// getRedrawTask completes a pending task on its first poll.
func (b *Backend) getRedrawTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.sessionUser(w, r); !ok {
		return
	}
	taskID := r.URL.Query().Get("taskId")

	b.mu.Lock()
	defer b.mu.Unlock()
	task, exists := b.tasks[taskID]
	if !exists {
		b.writeFail(w, client.CodeNotFound, "task not found")
		return
	}
	if task.TaskStatus == TaskPending {
		task.TaskStatus = TaskSucceeded
		task.EndTime = time.Now().UTC().Format(time.DateTime)
		task.Results = []client.RedrawResult{{URL: "https://cdn.example.com/redraw/" + taskID + ".png"}}
	}
	b.writeOK(w, client.GetPortraitStyleRedrawTaskResponse{
		RequestID: uuid.NewString(),
		Output:    *task,
	})
}
