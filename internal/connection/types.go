package connection

// SubmissionStatus represents whether a nation has submitted its turn
type SubmissionStatus string

const (
	// SubmissionNone indicates the turn has not been submitted
	SubmissionNone SubmissionStatus = "none"

	// SubmissionPartial indicates the turn was marked unfinished
	SubmissionPartial SubmissionStatus = "partial"

	// SubmissionDone indicates the turn has been submitted
	SubmissionDone SubmissionStatus = "submitted"
)

// NationStatus represents who controls a nation in the live game
type NationStatus string

const (
	// NationStatusEmpty indicates an unclaimed nation slot
	NationStatusEmpty NationStatus = "empty"

	// NationStatusHuman indicates a human-controlled nation
	NationStatusHuman NationStatus = "human"

	// NationStatusAI indicates a computer-controlled nation
	NationStatusAI NationStatus = "ai"

	// NationStatusIndependent indicates an independent nation
	NationStatusIndependent NationStatus = "independent"

	// NationStatusClosed indicates a closed nation slot
	NationStatusClosed NationStatus = "closed"

	// NationStatusDefeated indicates a defeated nation
	NationStatusDefeated NationStatus = "defeated"
)

// Nation is one faction slot as reported by the live game
type Nation struct {
	// ID is the numeric nation id
	ID uint32 `json:"id"`

	// Submitted is the nation's turn submission status
	Submitted SubmissionStatus `json:"submitted"`

	// Status is the nation's in-game status
	Status NationStatus `json:"status"`
}

// GameData is a point-in-time snapshot fetched from a remote game server.
// Turn < 0 means the game is between turns waiting for uploads; Turn >= 0
// means the turn timer counts down to the current turn's deadline.
type GameData struct {
	// GameName is the display name the remote game reports
	GameName string `json:"name"`

	// Nations lists the nations currently present, in server order
	Nations []Nation `json:"nations"`

	// Turn is the signed turn number
	Turn int32 `json:"turn"`

	// TurnTimer is the turn timer duration in milliseconds
	TurnTimer int32 `json:"turn_timer"`
}

// OverlayNation is one nation entry from the overlay service
type OverlayNation struct {
	// NationID is the numeric nation id
	NationID uint32 `json:"nation_id"`

	// Name is the overlay-provided display name
	Name string `json:"name"`
}

// OverlayStatus is the optional enhanced-name data from the overlay
// service. It only affects display-name resolution, never game state.
type OverlayStatus struct {
	// Nations maps nation id to its overlay entry
	Nations map[uint32]OverlayNation
}
