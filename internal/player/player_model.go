package player

import (
	"strings"

	"github.com/DhavalSuthar-24/crickettourney/internal/models"
	"gorm.io/gorm"
)

// Player roles are stored lowercase.
const (
	RoleBatsman      = "batsman"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all-rounder"
	RoleWicketkeeper = "wicketkeeper"
)

// Player is a registered cricketer. Attributes holds free-form details such
// as batting hand or bowling style.
type Player struct {
	gorm.Model
	Name       string            `json:"name" gorm:"not null;index"`
	Role       string            `json:"role" gorm:"index"`
	Attributes models.Attributes `json:"attributes" gorm:"type:text"`
}

// NormalizeRole lowercases a role the way it is stored and filtered.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
