package web

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"deckfall/internal/combat"
	"deckfall/internal/content"
	"deckfall/internal/log"
	"deckfall/internal/view"
)

// ErrNoSuchSession rejects a request naming a session id the store does
// not hold, answered as a 404 on REST and an error envelope on the
// websocket.
var ErrNoSuchSession = errors.New("unknown session")

// Command is one client request against a session, arriving either as
// a REST body or a websocket message.
type Command struct {
	Type   string `json:"type,omitempty"`
	Card   int    `json:"card,omitempty"`
	Target *int   `json:"target,omitempty"`
	All    bool   `json:"all,omitempty"`
}

// Response is the server's reply: the state after the command plus the
// log events the command produced. Engine rejections come back as
// type "error" with the state untouched.
type Response struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id,omitempty"`
	Error     string           `json:"error,omitempty"`
	State     *view.StateView  `json:"state,omitempty"`
	Events    []view.EventView `json:"events"`
}

// createRequest describes a new combat. Enemies overrides Encounter
// when both are given, mirroring the engine's own precedence.
type createRequest struct {
	Loadout   string   `json:"loadout,omitempty"`
	Encounter string   `json:"encounter,omitempty"`
	Enemies   []string `json:"enemies,omitempty"`
	Seed      int64    `json:"seed,omitempty"`
}

// webSession binds one combat to an id handed out to the client. All
// access goes through apply/snapshot, which serialize on mu.
type webSession struct {
	id      string
	mu      sync.Mutex
	combat  *combat.Session
	logger  *log.MemoryLogger
	lastSeq int
}

func (s *Server) newSession(req createRequest) (*webSession, error) {
	if req.Loadout == "" {
		req.Loadout = "vanguard"
	}
	lo := s.loadout(req.Loadout)
	if lo == nil {
		return nil, fmt.Errorf("unknown loadout %q", req.Loadout)
	}
	player, err := combat.BuildPlayer(lo.Profile(), s.lib)
	if err != nil {
		return nil, err
	}

	if req.Encounter == "" && len(req.Enemies) == 0 {
		req.Encounter = "first-steps"
	}
	logger := log.NewMemoryLogger()
	sess, err := combat.NewSession(combat.SessionConfig{
		Player:    player,
		Enemies:   req.Enemies,
		Encounter: req.Encounter,
		Library:   s.lib,
		Logger:    logger,
		Seed:      req.Seed,
	})
	if err != nil {
		return nil, err
	}
	return &webSession{
		id:     uuid.NewString(),
		combat: sess,
		logger: logger,
	}, nil
}

// snapshot returns the current state plus any events the client has
// not seen yet.
func (ws *webSession) snapshot() Response {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.respond(nil)
}

// apply runs one command against the combat.
func (ws *webSession) apply(cmd Command) Response {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var err error
	switch cmd.Type {
	case "state":
		// No mutation; just resync.
	case "play_card":
		target := -1
		if cmd.Target != nil {
			target = *cmd.Target
		}
		err = ws.combat.PlayCard(cmd.Card, target)
	case "end_turn":
		err = ws.combat.EndPlayerTurn()
	case "advance":
		err = ws.advance(cmd.All)
	default:
		err = fmt.Errorf("unknown command type %q", cmd.Type)
	}
	return ws.respond(err)
}

// advance processes the enemy queue: one enemy, or the whole queue
// when all is set.
func (ws *webSession) advance(all bool) error {
	for {
		if err := ws.combat.AdvanceEnemyQueue(); err != nil {
			return err
		}
		if !all || ws.combat.PendingActions() == 0 || ws.combat.Over() {
			return nil
		}
	}
}

// respond builds the reply envelope and advances the event cursor.
// Caller holds mu.
func (ws *webSession) respond(err error) Response {
	events := ws.logger.EventsSince(ws.lastSeq)
	if n := len(events); n > 0 {
		ws.lastSeq = events[n-1].Seq
	}
	resp := Response{
		Type:   "state",
		State:  view.BuildStateView(ws.combat),
		Events: view.BuildEventViews(events),
	}
	if err != nil {
		resp.Type = "error"
		resp.Error = err.Error()
	}
	return resp
}

// sessionStore tracks live sessions by id.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*webSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*webSession)}
}

func (st *sessionStore) add(ws *webSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[ws.id] = ws
}

func (st *sessionStore) get(id string) *webSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// loadout resolves an id against the file loadouts first, then the
// built-ins, so a file entry can shadow a built-in of the same name.
func (s *Server) loadout(id string) *content.Loadout {
	for _, lo := range s.fileLoadouts {
		if lo.Name == id {
			return lo
		}
	}
	return content.Builtin(id)
}
