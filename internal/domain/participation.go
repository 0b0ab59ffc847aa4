package domain

// Participation Model
type Participation struct {
	ID           int64 `json:"id"`           // Collection-scoped identifier
	UserID       int64 `json:"userId"`       // Joining account
	TournamentID int64 `json:"tournamentId"` // Joined tournament
}

// ParticipantView is a participation annotated with the owner's username
type ParticipantView struct {
	Participation
	Username string `json:"username"` // Owner's username, or UnknownUsername
}

// UnknownUsername is shown for participations whose account no longer exists
const UnknownUsername = "Unknown"
