package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/evoropaev/seabattle/api"
	"github.com/evoropaev/seabattle/db"
	"github.com/evoropaev/seabattle/db/sqlc"
	mb "github.com/evoropaev/seabattle/models/battleship"
	mc "github.com/evoropaev/seabattle/models/connection"
	"github.com/evoropaev/seabattle/tui"
	"github.com/evoropaev/seabattle/web"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	// the game runs fine without a database, it just records no
	// match analytics then
	var querier sqlc.Querier
	if databaseUrl := os.Getenv("DATABASE_URL"); databaseUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(databaseUrl))
	}

	switch mode := os.Getenv("MODE"); mode {
	case "", "tui":
		runTui(querier)
	case "web":
		runWeb(querier)
	default:
		panic("mode must be either tui or web")
	}
}

func runTui(querier sqlc.Querier) {
	var analytics *sqlc.AnalyticsManager
	if querier != nil {
		analytics = sqlc.NewAnalyticsManager(querier)
	}

	shell, err := tui.NewShell(mb.DefaultConfig(), nil, analytics)
	if err != nil {
		panic(err)
	}
	defer shell.Fini()

	shell.Run()
}

func runWeb(querier sqlc.Querier) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	sessionManager := mc.NewSeaBattleSessionManager()
	gameManager := mb.NewSeaBattleGameManager()
	rp := api.NewRequestProcessor(sessionManager, gameManager, querier)

	go sessionManager.CleanupPeriodically()

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(web.FS()))
	mux.Handle("/battleship", rp)

	log.Printf("Listening to port %d\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+fmt.Sprintf("%d", port), mux))
}
