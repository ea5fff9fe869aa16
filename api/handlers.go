package api

import (
	"encoding/json"

	mb "github.com/evoropaev/seabattle/models/battleship"
	mc "github.com/evoropaev/seabattle/models/connection"
)

// Request wraps one incoming frame. Handlers never return a Go
// error to the session loop; failures ride in the response message
// so the client always hears back and the loop decides what to do
// from the envelope alone.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var r Request
	if len(payload) != 0 {
		r.payload = payload[0]
	}
	return r
}

func (r Request) HandleNewGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespNewGame]) {
	respMsg := mc.NewMessage[mc.RespNewGame](mc.CodeNewGame)

	var reqMsg mc.Message[mc.ReqNewGame]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid new game request")
		return nil, respMsg
	}

	cfg := mb.DefaultConfig()
	if reqMsg.Payload.GridSize > 0 {
		cfg.GridSize = reqMsg.Payload.GridSize
	}

	game, err := gameManager.CreateGame(cfg, nil)
	if err != nil {
		respMsg.AddError(err.Error(), "failed to create game")
		return nil, respMsg
	}

	respMsg.AddPayload(mc.NewRespNewGame(game))
	return game, respMsg
}

func (r Request) HandlePlaceShip(gameManager mb.GameManager) mc.Message[mc.RespPlacement] {
	respMsg := mc.NewMessage[mc.RespPlacement](mc.CodePlaceShip)

	var reqMsg mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid placement request")
		return respMsg
	}

	game, err := gameManager.GetGame(reqMsg.Payload.GameUuid)
	if err != nil {
		respMsg.AddError(err.Error(), "game not found")
		return respMsg
	}

	if err := game.PlaceShip(reqMsg.Payload.Class, reqMsg.Payload.Start, reqMsg.Payload.Orientation); err != nil {
		respMsg.AddError(err.Error(), "placement rejected")
		respMsg.AddPayload(mc.NewRespPlacement(game))
		return respMsg
	}

	respMsg.AddPayload(mc.NewRespPlacement(game))
	return respMsg
}

func (r Request) HandleAutoPlace(gameManager mb.GameManager) mc.Message[mc.RespPlacement] {
	respMsg := mc.NewMessage[mc.RespPlacement](mc.CodeAutoPlace)

	var reqMsg mc.Message[mc.ReqAutoPlace]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid auto place request")
		return respMsg
	}

	game, err := gameManager.GetGame(reqMsg.Payload.GameUuid)
	if err != nil {
		respMsg.AddError(err.Error(), "game not found")
		return respMsg
	}

	if err := game.AutoPlaceFleet(); err != nil {
		respMsg.AddError(err.Error(), "auto placement failed")
		return respMsg
	}

	respMsg.AddPayload(mc.NewRespPlacement(game))
	return respMsg
}

func (r Request) HandleReady(gameManager mb.GameManager) mc.Message[mc.RespReady] {
	respMsg := mc.NewMessage[mc.RespReady](mc.CodeReady)

	var reqMsg mc.Message[mc.ReqReady]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid ready request")
		return respMsg
	}

	game, err := gameManager.GetGame(reqMsg.Payload.GameUuid)
	if err != nil {
		respMsg.AddError(err.Error(), "game not found")
		return respMsg
	}

	if err := game.Ready(); err != nil {
		respMsg.AddError(err.Error(), "not ready to start")
		return respMsg
	}

	respMsg.AddPayload(mc.RespReady{
		Status: mb.GameStatusString(game.Status()),
		IsTurn: game.Turn() == game.Human,
	})
	return respMsg
}

// HandleShot resolves the human's shot and, when the turn passed
// over, lets the computer answer in the same frame. A repeated
// coordinate never reaches the computer.
func (r Request) HandleShot(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespShot]) {
	respMsg := mc.NewMessage[mc.RespShot](mc.CodeShot)

	var reqMsg mc.Message[mc.ReqShot]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid shot request")
		return nil, respMsg
	}

	game, err := gameManager.GetGame(reqMsg.Payload.GameUuid)
	if err != nil {
		respMsg.AddError(err.Error(), "game not found")
		return nil, respMsg
	}

	humanResult, err := game.HumanShot(reqMsg.Payload.Coord)
	if err != nil {
		respMsg.AddError(err.Error(), "shot rejected")
		return game, respMsg
	}

	resp := mc.RespShot{HumanShot: humanResult}

	if game.Status() == mb.GameStatusInProgress && game.Turn() == game.Computer {
		computerResult, err := game.ComputerTurn()
		if err != nil {
			respMsg.AddError(err.Error(), "computer turn failed")
			return game, respMsg
		}
		resp.ComputerShot = &computerResult
	}

	resp.Attack = game.HumanAttack()
	resp.Defence = game.HumanDefence()
	resp.IsTurn = game.Turn() == game.Human
	resp.Status = mb.GameStatusString(game.Status())
	if winner, err := game.Winner(); err == nil {
		resp.Winner = winner.Name
	}

	respMsg.AddPayload(resp)
	return game, respMsg
}

// HandleRematch retires the finished game and hands the session a
// fresh one with the same grid size.
func (r Request) HandleRematch(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespNewGame]) {
	respMsg := mc.NewMessage[mc.RespNewGame](mc.CodeRematch)

	var reqMsg mc.Message[mc.ReqRematch]
	if err := json.Unmarshal(r.payload, &reqMsg); err != nil {
		respMsg.AddError(err.Error(), "invalid rematch request")
		return nil, respMsg
	}

	oldGame, err := gameManager.GetGame(reqMsg.Payload.GameUuid)
	if err != nil {
		respMsg.AddError(err.Error(), "game not found")
		return nil, respMsg
	}

	game, err := gameManager.CreateGame(oldGame.Config(), nil)
	if err != nil {
		respMsg.AddError(err.Error(), "failed to create rematch game")
		return nil, respMsg
	}
	gameManager.TerminateGame(oldGame.Uuid)

	respMsg.AddPayload(mc.NewRespNewGame(game))
	return game, respMsg
}
