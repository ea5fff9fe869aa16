package error

import "fmt"

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrInvalidGridSize(gridSize int) error {
	return fmt.Errorf("grid size must be at least 1, got: %d", gridSize)
}

func ErrEmptyFleet() error {
	return fmt.Errorf("fleet spec must contain at least one ship")
}

func ErrInvalidShipLength(className string, length int) error {
	return fmt.Errorf("ship length must be at least 1\tclass: %s\tlength: %d", className, length)
}

func ErrDuplicateFleetClass(className string) error {
	return fmt.Errorf("fleet spec lists the same class twice\tclass: %s", className)
}

func ErrUnknownFleetClass(class uint8) error {
	return fmt.Errorf("ship class is not part of this board's fleet\tclass: %d", class)
}

func ErrCoordOutOfBounds(row, col int) error {
	return fmt.Errorf("coordinate is out of game grid bound\trow: %d\tcol: %d", row, col)
}

func ErrGameNotInSetup(status string) error {
	return fmt.Errorf("ships can only be placed during setup\tgame status: %s", status)
}

func ErrGameNotInProgress(status string) error {
	return fmt.Errorf("shots can only be fired while the game is in progress\tgame status: %s", status)
}

func ErrFleetIncomplete(playerName string) error {
	return fmt.Errorf("player has not placed the full fleet yet\tplayer: %s", playerName)
}

func ErrNotPlayersTurn(playerName string) error {
	return fmt.Errorf("it is not this player's turn\tplayer: %s", playerName)
}

func ErrNoUnfiredCoords() error {
	return fmt.Errorf("no unfired coordinates remain; the game should have finished before exhaustion")
}

func ErrGameNotFinished() error {
	return fmt.Errorf("the game has no winner before it reaches the finished state")
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session exists but is nil, id: %s", sessionId)
}
