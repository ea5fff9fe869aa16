package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/evoropaev/seabattle/db/sqlc"
	"github.com/evoropaev/seabattle/internal"
	mb "github.com/evoropaev/seabattle/models/battleship"
	mc "github.com/evoropaev/seabattle/models/connection"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation
	// such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more than enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RequestProcessor runs one read loop per browser session and maps
// wire codes to game operations. q may be nil when the server runs
// without a database; analytics are skipped then.
type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
		ipnet:          internal.ServerIpNet(),
	}
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		if game := rp.sessionManager.GetSessionGame(session); game != nil {
			rp.gameManager.TerminateGame(game.Uuid)
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2,
		// ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(session, payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// A fresh match; the computer fleet is placed before the
		// response goes out.
		case mc.CodeNewGame:
			game, respMsg := NewRequest(payload).HandleNewGame(rp.gameManager)

			if game != nil {
				if old := rp.sessionManager.GetSessionGame(session); old != nil {
					rp.gameManager.TerminateGame(old.Uuid)
				}
				rp.sessionManager.SetSessionGame(session, game)

				if rp.q != nil {
					ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
					if err := rp.q.IncrementGamesStartedCount(ctx, serverPqtypeInet); err != nil {
						// for now not killing the game for it
						log.Println(err)
					}
					cancel()
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			respMsg := NewRequest(payload).HandlePlaceShip(rp.gameManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAutoPlace:
			respMsg := NewRequest(payload).HandleAutoPlace(rp.gameManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeReady:
			respMsg := NewRequest(payload).HandleReady(rp.gameManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// The shot branch carries the whole exchange: the human's
		// shot, the computer's reply if any, and the game-over push
		// when the match ended in this frame.
		case mc.CodeShot:
			game, respMsg := NewRequest(payload).HandleShot(rp.gameManager)

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil || game == nil {
				continue sessionLoop
			}

			if game.Status() == mb.GameStatusFinished {
				winner, err := game.Winner()
				if err != nil {
					log.Println(err)
					continue sessionLoop
				}

				if rp.q != nil {
					ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
					if winner == game.Human {
						err = rp.q.IncrementHumanWinsCount(ctx, serverPqtypeInet)
					} else {
						err = rp.q.IncrementComputerWinsCount(ctx, serverPqtypeInet)
					}
					if err != nil {
						log.Println(err)
					}
					cancel()
				}

				overMsg := mc.NewMessage[mc.RespGameOver](mc.CodeGameOver)
				overMsg.AddPayload(mc.RespGameOver{
					Winner:    winner.Name,
					TurnCount: game.TurnCount(),
				})
				if err := rp.sessionManager.WriteToSessionConn(session, overMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeRematch:
			game, respMsg := NewRequest(payload).HandleRematch(rp.gameManager)

			if game != nil {
				rp.sessionManager.SetSessionGame(session, game)

				if rp.q != nil {
					ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
					if err := rp.q.IncrementRematchesCalledCount(ctx, serverPqtypeInet); err != nil {
						log.Println(err)
					}
					if err := rp.q.IncrementGamesStartedCount(ctx, serverPqtypeInet); err != nil {
						log.Println(err)
					}
					cancel()
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
