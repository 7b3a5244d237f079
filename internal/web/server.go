// Package web serves the browser-facing API: content listings, combat
// sessions over REST, and a websocket channel for interactive play.
package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"deckfall/internal/content"
)

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CardType    string `json:"cardType"`
	Rarity      string `json:"rarity"`
	Cost        int    `json:"cost"`
	Exhaust     bool   `json:"exhaust,omitempty"`
	Ethereal    bool   `json:"ethereal,omitempty"`
	Unplayable  bool   `json:"unplayable,omitempty"`
	NeedsTarget bool   `json:"needsTarget,omitempty"`
}

// RelicInfo is the JSON representation of a relic for the /api/relics endpoint.
type RelicInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Trigger     string `json:"trigger"`
}

// EnemyInfo is the JSON representation of an enemy for the /api/enemies endpoint.
type EnemyInfo struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	MinHP int      `json:"minHp"`
	MaxHP int      `json:"maxHp"`
	Moves []string `json:"moves"`
}

// EncounterInfo is the JSON representation of an encounter for the
// /api/encounters endpoint.
type EncounterInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Enemies []string `json:"enemies"`
}

// LoadoutInfo is the JSON representation of a loadout for the
// /api/loadouts endpoint.
type LoadoutInfo struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	MaxHP  int      `json:"maxHp"`
	Gold   int      `json:"gold,omitempty"`
	Cards  []string `json:"cards"`
	Relics []string `json:"relics,omitempty"`
}

// Server is the deckfall web server.
type Server struct {
	lib          *content.Library
	fileLoadouts []*content.Loadout
	staticDir    string
	mux          *http.ServeMux
	sessions     *sessionStore
}

// NewServer creates a new web server.
func NewServer(cfg Config) (*Server, error) {
	s := &Server{
		lib:       content.Default(),
		staticDir: cfg.StaticDir,
		mux:       http.NewServeMux(),
		sessions:  newSessionStore(),
	}
	if cfg.LoadoutFile != "" {
		lf, err := content.ParseLoadoutFile(cfg.LoadoutFile)
		if err != nil {
			log.Printf("Warning: could not load loadouts: %v", err)
		} else {
			for i := range lf.Loadouts {
				s.fileLoadouts = append(s.fileLoadouts, &lf.Loadouts[i])
			}
		}
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	if s.staticDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
	} else {
		s.mux.HandleFunc("GET /", s.handleIndex)
	}

	// Content listings
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/relics", s.handleRelics)
	s.mux.HandleFunc("GET /api/enemies", s.handleEnemies)
	s.mux.HandleFunc("GET /api/encounters", s.handleEncounters)
	s.mux.HandleFunc("GET /api/loadouts", s.handleLoadouts)

	// Combat sessions
	s.mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /api/sessions/{id}", s.handleSessionState)
	s.mux.HandleFunc("POST /api/sessions/{id}/play", s.handlePlay)
	s.mux.HandleFunc("POST /api/sessions/{id}/end-turn", s.handleEndTurn)
	s.mux.HandleFunc("POST /api/sessions/{id}/advance", s.handleAdvance)

	// Interactive play
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service":  "deckfall",
		"combat":   "/api/sessions",
		"cards":    "/api/cards",
		"loadouts": "/api/loadouts",
	})
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, d := range s.lib.AllCards() {
		cards = append(cards, CardInfo{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			CardType:    d.Type.String(),
			Rarity:      d.Rarity.String(),
			Cost:        d.Cost,
			Exhaust:     d.Exhaust,
			Ethereal:    d.Ethereal,
			Unplayable:  d.Unplayable,
			NeedsTarget: d.NeedsTarget(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleRelics(w http.ResponseWriter, r *http.Request) {
	var relics []RelicInfo
	for _, d := range s.lib.AllRelics() {
		relics = append(relics, RelicInfo{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Trigger:     d.Trigger.String(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(relics)
}

func (s *Server) handleEnemies(w http.ResponseWriter, r *http.Request) {
	var enemies []EnemyInfo
	for _, d := range s.lib.AllEnemies() {
		ei := EnemyInfo{
			ID:    d.ID,
			Name:  d.Name,
			MinHP: d.MinHP,
			MaxHP: d.MaxHP,
		}
		for _, intent := range d.Intents {
			ei.Moves = append(ei.Moves, intent.String())
		}
		enemies = append(enemies, ei)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(enemies)
}

func (s *Server) handleEncounters(w http.ResponseWriter, r *http.Request) {
	var encounters []EncounterInfo
	for _, d := range s.lib.AllEncounters() {
		encounters = append(encounters, EncounterInfo{
			ID:      d.ID,
			Name:    d.Name,
			Enemies: d.Enemies,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(encounters)
}

func (s *Server) handleLoadouts(w http.ResponseWriter, r *http.Request) {
	var loadouts []LoadoutInfo
	add := func(id string, lo *content.Loadout) {
		li := LoadoutInfo{
			ID:     id,
			Name:   lo.Name,
			MaxHP:  lo.MaxHP,
			Gold:   lo.Gold,
			Relics: lo.Relics,
		}
		// Unique card ids for display
		seen := make(map[string]bool)
		for _, c := range lo.Cards {
			if !seen[c.Card] {
				li.Cards = append(li.Cards, c.Card)
				seen[c.Card] = true
			}
		}
		loadouts = append(loadouts, li)
	}
	for _, id := range content.BuiltinIDs() {
		add(id, content.Builtin(id))
	}
	for _, lo := range s.fileLoadouts {
		add(lo.Name, lo)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loadouts)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "could not parse request body", http.StatusBadRequest)
		return
	}
	ws, err := s.newSession(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.sessions.add(ws)

	resp := ws.snapshot()
	resp.SessionID = ws.id
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	ws := s.sessions.get(r.PathValue("id"))
	if ws == nil {
		http.Error(w, ErrNoSuchSession.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws.snapshot())
}

// handleCommand runs one command against the session in the path.
// Engine rejections still answer 200: the envelope carries the error
// alongside the unchanged state, which is what a game client wants.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request, cmdType string) {
	ws := s.sessions.get(r.PathValue("id"))
	if ws == nil {
		http.Error(w, ErrNoSuchSession.Error(), http.StatusNotFound)
		return
	}
	var cmd Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && err != io.EOF {
		http.Error(w, "could not parse request body", http.StatusBadRequest)
		return
	}
	cmd.Type = cmdType
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws.apply(cmd))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, "play_card")
}

func (s *Server) handleEndTurn(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, "end_turn")
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, "advance")
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	var joinMsg struct {
		Type      string   `json:"type"`
		Session   string   `json:"session,omitempty"`
		Loadout   string   `json:"loadout,omitempty"`
		Encounter string   `json:"encounter,omitempty"`
		Enemies   []string `json:"enemies,omitempty"`
		Seed      int64    `json:"seed,omitempty"`
	}
	// A session id in the query string attaches directly; otherwise the
	// first message must be a join, which may create a fresh session.
	joinMsg.Session = r.URL.Query().Get("session")
	if joinMsg.Session == "" {
		_, joinData, err := wsConn.Read(ctx)
		if err != nil {
			log.Printf("WebSocket read join: %v", err)
			return
		}
		if err := json.Unmarshal(joinData, &joinMsg); err != nil || joinMsg.Type != "join" {
			wsConn.Close(websocket.StatusPolicyViolation, "expected join message")
			return
		}
	}

	var ws *webSession
	if joinMsg.Session != "" {
		// Attach to an existing session, e.g. after a dropped connection.
		ws = s.sessions.get(joinMsg.Session)
		if ws == nil {
			writeWS(ctx, wsConn, Response{Type: "error", Error: ErrNoSuchSession.Error()})
			wsConn.Close(websocket.StatusNormalClosure, "unknown session")
			return
		}
	} else {
		ws, err = s.newSession(createRequest{
			Loadout:   joinMsg.Loadout,
			Encounter: joinMsg.Encounter,
			Enemies:   joinMsg.Enemies,
			Seed:      joinMsg.Seed,
		})
		if err != nil {
			writeWS(ctx, wsConn, Response{Type: "error", Error: err.Error()})
			wsConn.Close(websocket.StatusNormalClosure, "session failed")
			return
		}
		s.sessions.add(ws)
	}

	resp := ws.snapshot()
	resp.SessionID = ws.id
	if err := writeWS(ctx, wsConn, resp); err != nil {
		return
	}

	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			writeWS(ctx, wsConn, Response{Type: "error", Error: "could not parse command"})
			continue
		}
		if err := writeWS(ctx, wsConn, ws.apply(cmd)); err != nil {
			return
		}
	}
}

func writeWS(ctx context.Context, c *websocket.Conn, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
