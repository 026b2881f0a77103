// Wortschatz drill sessions
//
// Each browser session gets its own random 8-char ID under /drill/:sessionid.
// The embedded HTML/JS client is purely presentational: it forwards every
// user action (class/page selection, letter guesses, typed answers, tile
// taps, timer buttons) as a JSON message over the session websocket and
// renders the state snapshot the server broadcasts back. All authoritative
// game logic lives in the games package; the client only owns the transient
// drag/tap interaction of the matching game, which is never persisted.
//
// Features:
// - WebSockets per session ID: /drill/:sessionid and /drill/:sessionid/ws
// - Class/course/page catalog derived from CSV discovery
// - Four games: hangman, word matching, typed DE→EN quiz, irregular verbs
// - Per-round stopwatch with start/pause/reset
// - Optional seed for reproducible shuffles across sessions
// - Process-wide CSV cache with an explicit clear-cache action
// - Sessions auto-reaped after a configurable idle timeout
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"wortschatz/games"
	"wortschatz/vocab"
)

// Selection is the client-chosen scope a round key derives from.
type Selection struct {
	Classe         int    `json:"classe"`
	Course         string `json:"course"`
	Page           int    `json:"page"`
	Game           string `json:"game"`
	FilterSimple   bool   `json:"filterSimple"`
	IgnoreArticles bool   `json:"ignoreArticles"`
	IgnoreAbbrev   bool   `json:"ignoreAbbrev"`
	MinLength      int    `json:"minLength"`
	MemoryPairs    int    `json:"memoryPairs"`
	Seed           string `json:"seed"`
	Debug          bool   `json:"debug"`
}

// ClientMessage is every message a client may send.
type ClientMessage struct {
	Type      string     `json:"type"`
	Selection *Selection `json:"selection,omitempty"` // select
	Letter    string     `json:"letter,omitempty"`    // hangman_letter
	Text      string     `json:"text,omitempty"`      // hangman_word / quiz_submit
	Tile      int        `json:"tile,omitempty"`      // verb_select
	Target    string     `json:"target,omitempty"`    // verb_match
}

// SessionInfoMessage is sent immediately on connect.
type SessionInfoMessage struct {
	Type      string `json:"type"` // "session_info"
	SessionID string `json:"session_id"`
	MaxFails  int    `json:"max_fails"`
}

// CatalogCourse lists the pages available for one course of a class.
type CatalogCourse struct {
	Course string `json:"course"`
	Pages  []int  `json:"pages"`
}

// CatalogClass groups the courses of one class.
type CatalogClass struct {
	Classe  int             `json:"classe"`
	Courses []CatalogCourse `json:"courses"`
}

// CatalogMessage populates the class/course/page selectors.
type CatalogMessage struct {
	Type     string         `json:"type"` // "catalog"
	Classes  []CatalogClass `json:"classes"`
	Warnings []string       `json:"warnings,omitempty"`
	NoData   bool           `json:"noData,omitempty"`
}

// NoticeMessage carries advisory state: missing data, exhausted filters,
// parse warnings. Never fatal.
type NoticeMessage struct {
	Type    string `json:"type"` // "notice"
	Level   string `json:"level"`
	Message string `json:"message"`
}

// HangmanView is the rendered hangman state.
type HangmanView struct {
	Hint     string   `json:"hint"`
	Display  string   `json:"display"`
	StagePic string   `json:"stagePic"`
	Fails    int      `json:"fails"`
	MaxFails int      `json:"maxFails"`
	Guessed  []string `json:"guessed"`
	Status   string   `json:"status"`
	Solution string   `json:"solution,omitempty"` // only once the word is settled
	Elapsed  string   `json:"elapsed"`
	Running  bool     `json:"running"`
}

// MemoryView is the rendered matching-game state: a stable pair-id-tagged
// tile list plus the authoritative solution table.
type MemoryView struct {
	Tiles    []games.MemoryTile `json:"tiles"`
	Solution []games.MemoryPair `json:"solution"`
	Playable bool               `json:"playable"`
}

// QuizView is the rendered typed-quiz state.
type QuizView struct {
	Position   int                `json:"position"`
	Len        int                `json:"len"`
	Score      int                `json:"score"`
	Total      int                `json:"total"`
	Done       bool               `json:"done"`
	De         string             `json:"de,omitempty"`
	Revealed   bool               `json:"revealed"`
	RevealedEn string             `json:"revealedEn,omitempty"`
	History    []games.QuizRecord `json:"history"`
	Elapsed    string             `json:"elapsed"`
	Running    bool               `json:"running"`
}

// VerbView is the rendered irregular-verb state.
type VerbView struct {
	Tiles     []games.VerbTile     `json:"tiles"`
	Fields    []string             `json:"fields"`
	Matched   []string             `json:"matched"`
	Selected  int                  `json:"selected"`
	Completed bool                 `json:"completed"`
	Score     int                  `json:"score"`
	Verb      *games.IrregularVerb `json:"verb,omitempty"` // only once completed
	Elapsed   string               `json:"elapsed"`
	Running   bool                 `json:"running"`
}

// ViewMessage is the full state snapshot broadcast after every action.
type ViewMessage struct {
	Type         string         `json:"type"` // "view"
	Selection    Selection      `json:"selection"`
	Available    int            `json:"available"`
	Filtered     int            `json:"filtered"`
	Notice       string         `json:"notice,omitempty"`
	DebugSources map[string]int `json:"debugSources,omitempty"`
	Hangman      *HangmanView   `json:"hangman,omitempty"`
	Memory       *MemoryView    `json:"memory,omitempty"`
	Quiz         *QuizView      `json:"quiz,omitempty"`
	Verbs        *VerbView      `json:"verbs,omitempty"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

// Session owns all round state reachable from one session ID. Every client
// message is a read-modify-write under mu; the machines themselves guard
// against redundant re-delivery of the same logical action.
type Session struct {
	id      string
	cfg     *Config
	loader  *vocab.Loader
	sampler *vocab.Sampler
	store   *games.Store

	mu         sync.RWMutex
	clients    map[*Client]bool
	sel        Selection
	createdAt  time.Time
	lastActive time.Time
}

func newSession(cfg *Config, id string, loader *vocab.Loader) *Session {
	now := time.Now()
	return &Session{
		id:      id,
		cfg:     cfg,
		loader:  loader,
		sampler: vocab.NewSampler(),
		store:   games.NewStore(),
		clients: make(map[*Client]bool),
		sel: Selection{
			Game:           string(games.GameHangman),
			IgnoreArticles: true,
			IgnoreAbbrev:   true,
			MinLength:      2,
			MemoryPairs:    8,
		},
		createdAt:  now,
		lastActive: now,
	}
}

func (s *Session) register(c *Client) {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.clients[c] = true
	catalog := s.catalogLocked()
	view := s.viewLocked()
	s.mu.Unlock()

	c.send <- SessionInfoMessage{
		Type:      "session_info",
		SessionID: s.id,
		MaxFails:  s.cfg.hangmanMaxFails,
	}
	c.send <- catalog
	c.send <- view
}

func (s *Session) unregister(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.lastActive = time.Now()
}

// handle processes one client action and broadcasts the resulting view.
func (s *Session) handle(c *Client, msg ClientMessage) {
	s.mu.Lock()

	s.lastActive = time.Now()

	switch msg.Type {
	case "select":
		if msg.Selection != nil {
			s.applySelectionLocked(*msg.Selection)
		}

	case "clear_cache":
		s.loader.ClearCache()
		_, _ = s.loader.Discover()
		logf(s.cfg, "DATA : Cache cleared by session %s", s.id)
		s.broadcastLocked(s.catalogLocked())
		s.broadcastLocked(NoticeMessage{
			Type:    "notice",
			Level:   "info",
			Message: "Daten neu geladen.",
		})

	case "hangman_letter":
		if round := s.hangmanLocked(); round != nil {
			round.GuessLetter(msg.Letter)
		}
	case "hangman_word":
		if round := s.hangmanLocked(); round != nil {
			round.GuessWord(msg.Text)
		}
	case "hangman_solve":
		if round := s.hangmanLocked(); round != nil {
			round.ShowSolution()
		}
	case "hangman_next":
		if round := s.hangmanLocked(); round != nil {
			round.Advance()
		}
	case "hangman_new_word":
		if round := s.hangmanLocked(); round != nil {
			round.NewWord()
		}

	case "quiz_submit":
		if round := s.quizLocked(); round != nil {
			round.Submit(msg.Text)
		}
	case "quiz_skip":
		if round := s.quizLocked(); round != nil {
			round.Skip()
		}
	case "quiz_reveal":
		if round := s.quizLocked(); round != nil {
			round.Reveal()
		}
	case "quiz_continue":
		if round := s.quizLocked(); round != nil {
			round.Continue()
		}
	case "quiz_end":
		if round := s.quizLocked(); round != nil {
			round.End()
		}
	case "quiz_retry":
		s.store.DropQuiz(s.roundKeyLocked(games.GameQuiz))

	case "memory_redraw":
		rows, _ := s.rowsLocked()
		if round := s.memoryLocked(); round != nil {
			round.Refresh(rows, true)
		}

	case "verb_select":
		if round := s.verbsLocked(); round != nil {
			round.SelectTile(msg.Tile)
		}
	case "verb_match":
		if round := s.verbsLocked(); round != nil {
			round.AttemptMatch(msg.Target)
		}
	case "verb_new":
		if round := s.verbsLocked(); round != nil {
			round.NewRound()
		}
	case "verb_reset_score":
		if round := s.verbsLocked(); round != nil {
			round.ResetScore()
		}

	case "timer_start", "timer_pause", "timer_reset":
		s.timerActionLocked(msg.Type)

	default:
		// ignore unknown types
	}

	view := s.viewLocked()
	s.broadcastLocked(view)
	s.mu.Unlock()
}

func (s *Session) applySelectionLocked(sel Selection) {
	if sel.MinLength < 1 {
		sel.MinLength = 1
	}
	if sel.MemoryPairs < games.MemoryMinPairs {
		sel.MemoryPairs = games.MemoryMinPairs
	}
	switch games.Game(sel.Game) {
	case games.GameHangman, games.GameMemory, games.GameQuiz, games.GameVerbs:
	default:
		sel.Game = string(games.GameHangman)
	}
	s.sel = sel
}

func (s *Session) broadcastLocked(msg any) {
	for client := range s.clients {
		select {
		case client.send <- msg:
		default:
			delete(s.clients, client)
			close(client.send)
		}
	}
}

func (s *Session) catalogLocked() CatalogMessage {
	out := CatalogMessage{Type: "catalog", Warnings: s.loader.Warnings()}

	classes := s.loader.Classes()
	if len(classes) == 0 {
		out.NoData = true
		return out
	}
	for _, classe := range classes {
		cc := CatalogClass{Classe: classe}
		for _, course := range s.loader.Courses(classe) {
			cc.Courses = append(cc.Courses, CatalogCourse{
				Course: string(course),
				Pages:  s.loader.Pages(classe, course),
			})
		}
		out.Classes = append(out.Classes, cc)
	}
	return out
}

// rowsLocked resolves the filtered working set for the current selection,
// returning an advisory notice instead of an error when it is unusable.
func (s *Session) rowsLocked() ([]vocab.Entry, string) {
	if s.sel.Classe == 0 || s.sel.Page == 0 {
		return nil, "Wähle zuerst Klasse und Seite."
	}

	rows := s.loader.Select(s.sel.Classe, vocab.Course(s.sel.Course), s.sel.Page)
	if len(rows) == 0 {
		return nil, "Keine Vokabeln für diese Auswahl."
	}

	if s.sel.FilterSimple {
		filtered := vocab.FilterSimple(rows, vocab.FilterOptions{
			IgnoreArticles: s.sel.IgnoreArticles,
			IgnoreAbbrev:   s.sel.IgnoreAbbrev,
			MinLength:      s.sel.MinLength,
		})
		if len(filtered) == 0 {
			return nil, "Der Filter entfernt alle Vokabeln. Passe die Einstellungen an."
		}
		return filtered, ""
	}
	return rows, ""
}

func (s *Session) roundKeyLocked(game games.Game) games.RoundKey {
	return games.RoundKey{
		Game:   game,
		Classe: s.sel.Classe,
		Course: vocab.Course(s.sel.Course),
		Page:   s.sel.Page,
		Params: fmt.Sprintf("simple=%t|art=%t|abbr=%t|min=%d|k=%d|seed=%s",
			s.sel.FilterSimple, s.sel.IgnoreArticles, s.sel.IgnoreAbbrev,
			s.sel.MinLength, s.sel.MemoryPairs, s.sel.Seed),
	}
}

func (s *Session) hangmanLocked() *games.HangmanRound {
	rows, _ := s.rowsLocked()
	if len(rows) == 0 {
		return nil
	}
	return s.store.Hangman(s.roundKeyLocked(games.GameHangman), rows, s.cfg.hangmanMaxFails, vocab.NewRand(s.sel.Seed))
}

func (s *Session) quizLocked() *games.InputQuizRound {
	rows, _ := s.rowsLocked()
	if len(rows) == 0 {
		return nil
	}
	return s.store.Quiz(s.roundKeyLocked(games.GameQuiz), rows, vocab.NewRand(s.sel.Seed))
}

func (s *Session) memoryLocked() *games.MemoryRound {
	rows, _ := s.rowsLocked()
	if len(rows) < games.MemoryMinPairs {
		return nil
	}
	return s.store.Memory(s.roundKeyLocked(games.GameMemory), s.sampler, vocab.ModeK, s.sel.MemoryPairs, s.sel.Seed, vocab.NewRand(s.sel.Seed))
}

func (s *Session) verbsLocked() *games.IrregularVerbRound {
	return s.store.Verbs(s.roundKeyLocked(games.GameVerbs), vocab.NewRand(s.sel.Seed))
}

func (s *Session) timerActionLocked(action string) {
	var timer *games.Stopwatch
	switch games.Game(s.sel.Game) {
	case games.GameHangman:
		if round := s.hangmanLocked(); round != nil {
			timer = round.Timer
		}
	case games.GameQuiz:
		if round := s.quizLocked(); round != nil {
			timer = round.Timer
		}
	case games.GameVerbs:
		if round := s.verbsLocked(); round != nil {
			timer = round.Timer
		}
	}
	if timer == nil {
		return
	}
	switch action {
	case "timer_start":
		timer.Start()
	case "timer_pause":
		timer.Pause()
	case "timer_reset":
		timer.Reset()
	}
}

func (s *Session) viewLocked() ViewMessage {
	view := ViewMessage{
		Type:      "view",
		Selection: s.sel,
	}

	rows, notice := s.rowsLocked()
	view.Notice = notice
	view.Filtered = len(rows)
	if s.sel.Classe != 0 && s.sel.Page != 0 {
		view.Available = len(s.loader.Select(s.sel.Classe, vocab.Course(s.sel.Course), s.sel.Page))
		if s.sel.Debug {
			view.DebugSources = s.loader.SourceCounts(s.sel.Classe, vocab.Course(s.sel.Course), s.sel.Page)
		}
	}

	switch games.Game(s.sel.Game) {
	case games.GameHangman:
		if round := s.hangmanLocked(); round != nil {
			view.Hangman = hangmanView(round)
		}
	case games.GameMemory:
		if round := s.memoryLocked(); round != nil {
			round.Refresh(rows, false)
			view.Memory = &MemoryView{
				Tiles:    round.Tiles(),
				Solution: round.Solution(),
				Playable: round.Playable(),
			}
		} else if notice == "" {
			view.Notice = "Nicht genügend Daten für dieses Spiel."
		}
	case games.GameQuiz:
		if round := s.quizLocked(); round != nil {
			view.Quiz = quizView(round)
		}
	case games.GameVerbs:
		view.Verbs = verbView(s.verbsLocked())
	}

	return view
}

func hangmanView(round *games.HangmanRound) *HangmanView {
	status := round.Status()
	v := &HangmanView{
		Hint:     round.Hint(),
		Display:  round.Display(),
		StagePic: games.HangmanStages[round.Stage()],
		Fails:    round.Fails(),
		MaxFails: round.MaxFails(),
		Guessed:  round.Guessed(),
		Status:   string(status),
		Elapsed:  round.Timer.String(),
		Running:  round.Timer.Running(),
	}
	if status != games.HangmanInProgress {
		v.Solution = round.Reveal()
	}
	return v
}

func quizView(round *games.InputQuizRound) *QuizView {
	v := &QuizView{
		Position: round.Position(),
		Len:      round.Len(),
		Score:    round.Score(),
		Total:    round.Total(),
		Done:     round.Done(),
		Revealed: round.Revealed(),
		History:  round.History(),
		Elapsed:  round.Timer.String(),
		Running:  round.Timer.Running(),
	}
	if item, ok := round.Current(); ok {
		v.De = item.De
		if round.Revealed() {
			v.RevealedEn = item.En
		}
	}
	return v
}

func verbView(round *games.IrregularVerbRound) *VerbView {
	v := &VerbView{
		Tiles:     round.Tiles(),
		Fields:    games.VerbFields,
		Matched:   round.MatchedFields(),
		Selected:  round.Selected(),
		Completed: round.Completed(),
		Score:     round.Score(),
		Elapsed:   round.Timer.String(),
		Running:   round.Timer.Running(),
	}
	if round.Completed() {
		verb := round.Verb()
		v.Verb = &verb
	}
	return v
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "wortschatz_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// SessionManager holds a set of sessions keyed by session ID, so each
// /drill/:sessionid is its own isolated drill.
type SessionManager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	loader      *vocab.Loader
	idleTimeout time.Duration
}

func newSessionManager(cfg *Config, loader *vocab.Loader) *SessionManager {
	sm := &SessionManager{
		sessions:    make(map[string]*Session),
		loader:      loader,
		idleTimeout: cfg.sessionTimeout,
	}
	if sm.idleTimeout > 0 {
		go sm.reaperLoop()
	}
	return sm
}

func (sm *SessionManager) getSession(cfg *Config, sessionID string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, ok := sm.sessions[sessionID]; ok {
		return s
	}

	s := newSession(cfg, sessionID, sm.loader)
	sm.sessions[sessionID] = s
	return s
}

// newSessionID generates a crypto-random session ID and ensures it doesn't
// collide with existing sessions.
func (sm *SessionManager) newSessionID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		sm.mu.Lock()
		_, exists := sm.sessions[id]
		sm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes sessions idle longer than idleTimeout.
func (sm *SessionManager) reaperLoop() {
	ticker := time.NewTicker(sm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-sm.idleTimeout)

		sm.mu.Lock()
		for id, s := range sm.sessions {
			s.mu.RLock()
			last := s.lastActive
			s.mu.RUnlock()

			if last.Before(cutoff) {
				delete(sm.sessions, id)
				go s.closeAll()
			}
		}
		sm.mu.Unlock()
	}
}

// closeAll disconnects all clients of this session (used by reaper).
func (s *Session) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(s.clients, c)
	}
}

// WebSocket handler that picks the session based on :sessionid
func serveWSForManager(cfg *Config, sm *SessionManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := ps.ByName("sessionid")
		if sessionID == "" {
			http.Error(w, "missing session id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		session := sm.getSession(cfg, sessionID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		session.register(client)

		go client.writePump()
		client.readPump(session)
	}
}

func (c *Client) readPump(s *Session) {
	defer func() {
		s.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handle(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current session URL.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("sessionid")
	if sessionID == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /drill/:sessionid/qr; strip trailing "/qr" to get the URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed drill/index.html
var indexHTML []byte

//go:embed drill/app.css
var drillCSS []byte

//go:embed drill/app.js
var drillJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(drillCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(drillJS)
	}
}

// redirectNewSession handles GET /drill by generating a new random session
// ID (with server-side collision detection) and redirecting to /drill/:id.
func redirectNewSession(cfg *Config, path string, sm *SessionManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		sessionID := sm.newSessionID()
		logf(cfg, "GAMES: Created session %s/%s", path, sessionID)
		http.Redirect(w, r, cfg.prefix+path+"/"+sessionID, http.StatusTemporaryRedirect)
	}
}

// registerDrillGame sets up routes so that:
//   - $path                  → redirects to new random session (8-char ID)
//   - $path/:sessionid       → HTML client
//   - $path/:sessionid/ws    → WebSocket for that session
//   - $path/:sessionid/qr    → PNG QR code for that session URL
func registerDrillGame(cfg *Config, path string, mux *httprouter.Router, loader *vocab.Loader) {
	sm := newSessionManager(cfg, loader)

	// Root path → redirect to new random session
	mux.GET(cfg.prefix+path, redirectNewSession(cfg, path, sm))

	// Per-session client view (HTML)
	mux.GET(cfg.prefix+path+"/:sessionid", getIndexHandler(cfg))

	// Shared assets (no sessionid in route)
	mux.GET(cfg.prefix+"/assets/drill/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/drill/app.js", getJsHandler(cfg))

	// Per-session websocket
	mux.GET(cfg.prefix+path+"/:sessionid/ws", serveWSForManager(cfg, sm))

	// Per-session QR code
	mux.GET(cfg.prefix+path+"/:sessionid/qr", qrHandler)
}
