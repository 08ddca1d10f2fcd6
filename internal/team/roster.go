package team

import (
	"strings"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/bytedance/sonic"
)

// ParseRoster decodes the JSON roster sent in the multipart "players" field.
func ParseRoster(raw string) ([]RosterEntry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var entries []RosterEntry
	if err := sonic.UnmarshalString(raw, &entries); err != nil {
		return nil, apperr.Validation("players must be a JSON array of {player_id, role}: %v", err)
	}
	return entries, nil
}

// ValidateRoster enforces the roster rules that do not need the database:
// known roles, no duplicate players, one captain and one vice-captain at most.
func ValidateRoster(entries []RosterEntry) error {
	seen := make(map[uint]bool, len(entries))
	var captains, vices int
	for i, e := range entries {
		if e.PlayerID == 0 {
			return apperr.Validation("players[%d]: player_id is required", i)
		}
		if seen[e.PlayerID] {
			return apperr.Validation("player %d appears twice in the roster", e.PlayerID)
		}
		seen[e.PlayerID] = true

		switch strings.ToUpper(strings.TrimSpace(e.Role)) {
		case RoleCaptain:
			captains++
		case RoleViceCaptain:
			vices++
		case RoleWicketkeeper, "":
		default:
			return apperr.Validation("players[%d]: role %q must be C, VC, WK or empty", i, e.Role)
		}
	}
	if captains > 1 {
		return apperr.Validation("a roster can have only one captain")
	}
	if vices > 1 {
		return apperr.Validation("a roster can have only one vice-captain")
	}
	return nil
}

// rosterRows turns validated entries into rows, keeping the client's order.
func rosterRows(teamID uint, entries []RosterEntry) []TeamPlayer {
	rows := make([]TeamPlayer, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, TeamPlayer{
			TeamID:   teamID,
			PlayerID: e.PlayerID,
			Role:     strings.ToUpper(strings.TrimSpace(e.Role)),
			Position: i,
		})
	}
	return rows
}

func playerIDs(entries []RosterEntry) []uint {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlayerID)
	}
	return ids
}
