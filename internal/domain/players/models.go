package players

import "github.com/elevenpool/league-console/internal/domain"

// Player is a league participant as returned by the league API.
type Player struct {
	ID            domain.ID `json:"id"`
	Name          string    `json:"name"`
	Nickname      string    `json:"nickname,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Points        int       `json:"points"`
	GoalsScored   int       `json:"goalsScored"`
	GoalsConceded int       `json:"goalsConceded"`
}

// CreateRequest is the payload for registering a new player.
type CreateRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Phone string `json:"phone" validate:"required,max=120"`
}

// DisplayName prefers the nickname the league knows a player by.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}
