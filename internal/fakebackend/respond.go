package fakebackend

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ougggg/pai-picture/client"
)

type envelope struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func (b *Backend) writeOK(w http.ResponseWriter, data any) {
	b.writeEnvelope(w, client.CodeSuccess, data, "ok")
}

func (b *Backend) writeFail(w http.ResponseWriter, code int, message string) {
	b.writeEnvelope(w, code, nil, message)
}

func (b *Backend) writeEnvelope(w http.ResponseWriter, code int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope{Code: code, Data: data, Message: message}); err != nil {
		b.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// decode reads a JSON body into v, answering 40000 on failure.
func (b *Backend) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		b.writeFail(w, client.CodeParamsError, "invalid request body")
		return false
	}
	return true
}

// sessionUser resolves the caller. It answers 40100 and reports false when
// there is no live session.
func (b *Backend) sessionUser(w http.ResponseWriter, r *http.Request) (client.ID, bool) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		b.mu.Lock()
		id, ok := b.sessions[c.Value]
		b.mu.Unlock()
		if ok {
			return id, true
		}
	}
	b.writeFail(w, client.CodeNotLoggedIn, "not logged in")
	return "", false
}

func (b *Backend) openSession(w http.ResponseWriter, id client.ID) {
	sid := uuid.NewString()
	b.mu.Lock()
	b.sessions[sid] = id
	b.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: sid, Path: "/", HttpOnly: true})
}

func pageOf[T any](all []T, req client.PageRequest) client.Page[T] {
	current, size := req.Current, req.PageSize
	if current <= 0 {
		current = 1
	}
	if size <= 0 {
		size = 10
	}
	total := len(all)
	start := (current - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return client.Page[T]{
		Records: append([]T{}, all[start:end]...),
		Total:   client.Count(total),
		Size:    client.Count(size),
		Current: client.Count(current),
		Pages:   client.Count((total + size - 1) / size),
	}
}
