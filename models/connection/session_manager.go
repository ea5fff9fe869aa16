package connection

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/evoropaev/seabattle/internal/error"
	mb "github.com/evoropaev/seabattle/models/battleship"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	GetSessionId(session *Session) string

	GetSessionGame(session *Session) *mb.Game
	SetSessionGame(session *Session, game *mb.Game)

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(session *Session, payload []byte) (uint8, error)
}

type SeaBattleSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewSeaBattleSessionManager() *SeaBattleSessionManager {
	initMapSize := 10

	return &SeaBattleSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*SeaBattleSessionManager)(nil)

func (ssm *SeaBattleSessionManager) GetSessionGame(session *Session) *mb.Game {
	return session.game
}

func (ssm *SeaBattleSessionManager) SetSessionGame(session *Session, game *mb.Game) {
	session.game = game
}

func (ssm *SeaBattleSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	ssm.mu.Lock()
	ssm.sessions[sessionId] = session
	ssm.mu.Unlock()

	return session
}

func (ssm *SeaBattleSessionManager) FindSession(sessionId string) (*Session, error) {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	session, prs := ssm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (ssm *SeaBattleSessionManager) TerminateSession(session *Session) {
	ssm.mu.Lock()
	delete(ssm.sessions, session.id)
	ssm.mu.Unlock()
}

// To ensure that there are no dangling connections, sessions that
// have been silent for longer than the cleanup interval are treated
// as stale and deleted. A live game keeps its session alive because
// every read refreshes lastSeen.
func (ssm *SeaBattleSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(ssm.cleanupInterval)

		ssm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for id, session := range ssm.sessions {
			if time.Since(session.lastSeen) > ssm.cleanupInterval {
				toDelete = append(toDelete, id)
			}
		}

		if len(toDelete) > 0 {
			log.Println("Clean up sessions:")
		}
		for _, id := range toDelete {
			delete(ssm.sessions, id)
			log.Printf("removed: %s", id)
		}
		ssm.mu.Unlock()
	}
}

func (ssm *SeaBattleSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		panic("this will never happen")
	}
	return connErr
}

func (ssm *SeaBattleSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			ssm.touchSession(session)
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		default:
			return -1, []byte{}, err
		}
	}
}

func (ssm *SeaBattleSessionManager) touchSession(session *Session) {
	ssm.mu.Lock()
	session.lastSeen = time.Now()
	ssm.mu.Unlock()
}

func (ssm *SeaBattleSessionManager) GetSessionId(session *Session) string {
	return session.id
}

func (ssm *SeaBattleSessionManager) FetchCodeFromMsg(session *Session, payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
