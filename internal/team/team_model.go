package team

import (
	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"gorm.io/gorm"
)

// Roster roles. An empty role is a regular squad member.
const (
	RoleCaptain      = "C"
	RoleViceCaptain  = "VC"
	RoleWicketkeeper = "WK"
)

// Team is a tournament side with an ordered roster.
type Team struct {
	gorm.Model
	Name        string       `json:"name" gorm:"not null;index"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Players     []TeamPlayer `json:"players" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TeamPlayer signs one player to one team. The unique index on PlayerID keeps
// a player on at most one roster.
type TeamPlayer struct {
	ID       uint           `json:"-" gorm:"primaryKey"`
	TeamID   uint           `json:"team_id" gorm:"not null;index"`
	PlayerID uint           `json:"player_id" gorm:"not null;uniqueIndex"`
	Player   *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	Role     string         `json:"role" gorm:"size:2"`
	Position int            `json:"position"`
}

// RosterEntry is the client's view of one roster slot.
type RosterEntry struct {
	PlayerID uint   `json:"player_id"`
	Role     string `json:"role"`
}
