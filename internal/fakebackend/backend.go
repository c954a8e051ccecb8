// Package fakebackend is an in-memory picture backend speaking the same wire
// contract as the real service: every answer is an HTTP 200 envelope, the
// session travels in a SESSION cookie and a missing session is code 40100.
package fakebackend

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ougggg/pai-picture/client"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "SESSION"

// Recorded is one request as the backend received it.
type Recorded struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	RequestID   string
	Body        []byte
}

type account struct {
	vo       client.LoginUserVO
	password string
}

// Backend holds users, pictures and social edges in memory.
// It is safe for concurrent use.
type Backend struct {
	log zerolog.Logger

	mu        sync.Mutex
	nextID    int64
	accounts  map[string]client.ID // userAccount -> id
	users     map[client.ID]*account
	sessions  map[string]client.ID
	pictures  map[client.ID]*client.PictureVO
	likes     map[client.ID]map[client.ID]bool // user -> pictures
	favorites map[client.ID]map[client.ID]bool // user -> pictures
	follows   map[client.ID]map[client.ID]bool // follower -> followees
	tasks     map[string]*client.RedrawTaskInfo
	requests  []Recorded
}

// New returns an empty backend logging to log.
func New(log zerolog.Logger) *Backend {
	return &Backend{
		log:       log,
		nextID:    1000,
		accounts:  map[string]client.ID{},
		users:     map[client.ID]*account{},
		sessions:  map[string]client.ID{},
		pictures:  map[client.ID]*client.PictureVO{},
		likes:     map[client.ID]map[client.ID]bool{},
		favorites: map[client.ID]map[client.ID]bool{},
		follows:   map[client.ID]map[client.ID]bool{},
		tasks:     map[string]*client.RedrawTaskInfo{},
	}
}

// Handler returns the router serving the wire table.
func (b *Backend) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(b.record)

	// Users
	r.HandleFunc("/api/user/register", b.register).Methods("POST")
	r.HandleFunc("/api/user/login", b.login).Methods("POST")
	r.HandleFunc("/api/user/logout", b.logout).Methods("POST")
	r.HandleFunc("/api/user/get/login", b.getLoginUser).Methods("GET")
	r.HandleFunc("/api/user/get/vo", b.getUserVO).Methods("GET")

	// Follows
	r.HandleFunc("/api/user/follow/do", b.follow).Methods("POST")
	r.HandleFunc("/api/user/follow/cancel", b.unfollow).Methods("POST")
	r.HandleFunc("/api/user/follow/followers/list/page", b.listFollowers).Methods("POST")
	r.HandleFunc("/api/user/follow/following/list/page", b.listFollowing).Methods("POST")
	r.HandleFunc("/api/user/follow/isFollowing", b.isFollowing).Methods("GET")

	// Pictures
	r.HandleFunc("/api/picture/get/vo", b.getPictureVO).Methods("GET")
	r.HandleFunc("/api/picture/list/page/vo", b.listPictureVOs).Methods("POST")
	r.HandleFunc("/api/picture/save/private", b.saveToPrivate).Methods("POST")
	r.HandleFunc("/api/picture/connect/public", b.publishToPublic).Methods("POST")
	r.HandleFunc("/api/picture/portrait_style_redraw/create_task", b.createRedrawTask).Methods("POST")
	r.HandleFunc("/api/picture/portrait_style_redraw/get_task", b.getRedrawTask).Methods("GET")

	// Likes and favorites
	r.HandleFunc("/api/picture/like/do", b.toggle(b.likes, true)).Methods("POST")
	r.HandleFunc("/api/picture/like/cancel", b.toggle(b.likes, false)).Methods("POST")
	r.HandleFunc("/api/picture/like/list/page", b.listMarked(b.likes)).Methods("POST")
	r.HandleFunc("/api/picture/favorite/do", b.toggle(b.favorites, true)).Methods("POST")
	r.HandleFunc("/api/picture/favorite/cancel", b.toggle(b.favorites, false)).Methods("POST")
	r.HandleFunc("/api/picture/favorite/list/page", b.listMarked(b.favorites)).Methods("POST")

	return r
}

// AddUser creates an account directly and returns its id.
func (b *Backend) AddUser(userAccount, password, name string) client.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(userAccount, password, name)
}

func (b *Backend) addUserLocked(userAccount, password, name string) client.ID {
	id := b.newIDLocked()
	b.accounts[userAccount] = id
	b.users[id] = &account{
		vo: client.LoginUserVO{
			ID:          id,
			UserAccount: userAccount,
			UserName:    name,
			UserRole:    "user",
		},
		password: password,
	}
	return id
}

// AddPicture stores a public picture owned by owner and returns its id.
func (b *Backend) AddPicture(owner client.ID, name, category string) client.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newIDLocked()
	b.pictures[id] = &client.PictureVO{
		ID:       id,
		URL:      "https://cdn.example.com/public/" + string(id) + ".webp",
		Name:     name,
		Category: category,
		UserID:   owner,
	}
	return id
}

// Requests returns every request received so far, oldest first.
func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Recorded(nil), b.requests...)
}

// LastRequest returns the most recent request.
func (b *Backend) LastRequest() (Recorded, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return Recorded{}, false
	}
	return b.requests[len(b.requests)-1], true
}

func (b *Backend) newIDLocked() client.ID {
	b.nextID++
	return client.ID(strconv.FormatInt(b.nextID, 10))
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, Recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-Id"),
			Body:        body,
		})
		b.mu.Unlock()

		b.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("fake backend request")
		next.ServeHTTP(w, r)
	})
}
