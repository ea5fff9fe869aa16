package connection

import (
	mb "github.com/evoropaev/seabattle/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespShipSpec struct {
	Class  uint8  `json:"class"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

type RespNewGame struct {
	GameUuid string         `json:"game_uuid"`
	GridSize int            `json:"grid_size"`
	Fleet    []RespShipSpec `json:"fleet"`
}

func NewRespNewGame(game *mb.Game) RespNewGame {
	cfg := game.Config()

	fleet := make([]RespShipSpec, 0, len(cfg.Fleet))
	for _, spec := range cfg.Fleet {
		fleet = append(fleet, RespShipSpec{
			Class:  spec.Class,
			Name:   mb.ShipClassName(spec.Class),
			Length: spec.Length,
		})
	}

	return RespNewGame{
		GameUuid: game.Uuid,
		GridSize: cfg.GridSize,
		Fleet:    fleet,
	}
}

// RespPlacement answers both single placements and auto placement.
type RespPlacement struct {
	Defence       [][]uint8 `json:"defence"`
	Placed        []uint8   `json:"placed"`
	FleetComplete bool      `json:"fleet_complete"`
}

func NewRespPlacement(game *mb.Game) RespPlacement {
	board := game.Human.Board

	placed := make([]uint8, 0, len(game.Config().Fleet))
	for _, spec := range game.Config().Fleet {
		if board.HasPlaced(spec.Class) {
			placed = append(placed, spec.Class)
		}
	}

	return RespPlacement{
		Defence:       board.DefenceSnapshot(),
		Placed:        placed,
		FleetComplete: board.FleetComplete(),
	}
}

type RespReady struct {
	Status string `json:"status"`
	IsTurn bool   `json:"is_turn"`
}

// RespShot reports the human's shot and, when that shot handed the
// turn over, the computer's reply in the same frame. IsTurn is the
// human's turn after everything in the frame resolved.
type RespShot struct {
	HumanShot    mb.ShotResult  `json:"human_shot"`
	ComputerShot *mb.ShotResult `json:"computer_shot,omitempty"`
	Attack       [][]uint8      `json:"attack"`
	Defence      [][]uint8      `json:"defence"`
	IsTurn       bool           `json:"is_turn"`
	Status       string         `json:"status"`
	Winner       string         `json:"winner,omitempty"`
}

type RespGameOver struct {
	Winner    string `json:"winner"`
	TurnCount int    `json:"turn_count"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
