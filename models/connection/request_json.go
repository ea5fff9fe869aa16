package connection

import (
	mb "github.com/evoropaev/seabattle/models/battleship"
)

type ReqNewGame struct {
	// 0 falls back to the default grid size
	GridSize int `json:"grid_size,omitempty"`
}

type ReqPlaceShip struct {
	GameUuid    string   `json:"game_uuid"`
	Class       uint8    `json:"class"`
	Start       mb.Coord `json:"start"`
	Orientation uint8    `json:"orientation"`
}

type ReqAutoPlace struct {
	GameUuid string `json:"game_uuid"`
}

type ReqReady struct {
	GameUuid string `json:"game_uuid"`
}

type ReqShot struct {
	GameUuid string   `json:"game_uuid"`
	Coord    mb.Coord `json:"coord"`
}

type ReqRematch struct {
	GameUuid string `json:"game_uuid"`
}
