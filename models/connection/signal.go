package connection

const (
	CodeSessionID uint8 = iota
	CodeNewGame
	CodePlaceShip
	CodeAutoPlace
	CodeReady
	CodeShot

	// Server push sent right after the shot response that ended
	// the game
	CodeGameOver

	CodeRematch
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
