package test

import (
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/evoropaev/seabattle/api"
	"github.com/evoropaev/seabattle/db/sqlc"
	mb "github.com/evoropaev/seabattle/models/battleship"
	mc "github.com/evoropaev/seabattle/models/connection"

	"github.com/DATA-DOG/go-sqlmock"
)

const testWsUrl = "ws://127.0.0.1:7171/battleship"

var (
	testConn      *websocket.Conn
	testSessionID string

	testGame     *mb.Game
	testGameUuid string

	testRp             api.RequestProcessor
	testGameManager    *mb.SeaBattleGameManager
	testSessionManager *mc.SeaBattleSessionManager

	testMock      sqlmock.Sqlmock
	testDbManager sqlc.DbManager

	dialer = websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
)

func TestMain(m *testing.M) {
	db, mock, err := sqlmock.New()
	if err != nil {
		panic(err)
	}
	defer db.Close()
	testMock = mock
	testDbManager = sqlc.NewDbManager(sqlc.New(db))

	go func() {
		testSessionManager = mc.NewSeaBattleSessionManager()
		go testSessionManager.CleanupPeriodically()

		testGameManager = mb.NewSeaBattleGameManager()

		// the ws flow runs without analytics here; the sqlmock
		// querier is exercised on its own in TestMatchAnalytics
		testRp = api.NewRequestProcessor(testSessionManager, testGameManager, nil)

		mux := http.NewServeMux()
		mux.Handle("/battleship", testRp)

		log.Println("Listening to port 7171...")
		if err := http.ListenAndServe(":7171", mux); err != nil {
			log.Println(err)
			os.Exit(0)
		}
	}()

	// Give the server time to start
	time.Sleep(time.Second * 2)

	log.Println("dialing...")
	c, _, err := dialer.Dial(testWsUrl, nil)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	testConn = c

	// the first frame of every session is its session id
	var respSessionId mc.Message[mc.RespSessionId]
	_ = testConn.ReadJSON(&respSessionId)
	testSessionID = respSessionId.Payload.SessionID

	log.Println("session ID:", testSessionID)
	os.Exit(m.Run())
}
