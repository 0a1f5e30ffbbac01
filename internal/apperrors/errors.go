// Package apperrors defines the client's typed errors, shared by the
// network and dispatch layers.
package apperrors

// ClientError is an error condition the client can act on, not just log.
type ClientError struct {
	Code    int
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// Error codes.
const (
	CodeNotConnected = iota + 1
	CodeAlreadyInGame
	CodeGameNotFound
	CodeSeatTaken
	CodeBadServerURL
)

// Predefined errors.
var (
	ErrNotConnected  = &ClientError{Code: CodeNotConnected, Message: "not connected to a server"}
	ErrAlreadyInGame = &ClientError{Code: CodeAlreadyInGame, Message: "already a member of this game"}
	ErrGameNotFound  = &ClientError{Code: CodeGameNotFound, Message: "no such game on this connection"}
	ErrSeatTaken     = &ClientError{Code: CodeSeatTaken, Message: "that seat is already taken"}
	ErrBadServerURL  = &ClientError{Code: CodeBadServerURL, Message: "server address is not a valid websocket URL"}
)
