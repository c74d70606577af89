package messages

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version        string
	SessionID      string
	PilotName      string
	ReconnectToken string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	PilotID        string
	ReconnectToken string
	ServerName     string
	TickRate       int
	Sector         string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
