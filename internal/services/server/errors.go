package server

// ServerError is a custom error type for server tracking errors
type ServerError string

// Error implements the error interface
func (e ServerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrServerNotFound      ServerError = "server not found"
	ErrServerAlreadyExists ServerError = "a server with that alias already exists"
	ErrServerUnreachable   ServerError = "game server unavailable"
	ErrStoreFailure        ServerError = "internal storage error"
	ErrInvalidNation       ServerError = "unknown nation id"
	ErrNotLobby            ServerError = "server is not in the lobby state"
	ErrNilConfig           ServerError = "config cannot be nil"
	ErrNilServerRepo       ServerError = "server repository cannot be nil"
	ErrNilRegistrationRepo ServerError = "registration repository cannot be nil"
	ErrNilConnection       ServerError = "connection client cannot be nil"
	ErrNilClock            ServerError = "clock cannot be nil"
)
