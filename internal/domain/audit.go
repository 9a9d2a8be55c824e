package domain

import "time"

// AuditLog represents an audit log entry for tracking important actions
type AuditLog struct {
	ID        int64                  `db:"id" json:"id"`
	GameCode  string                 `db:"game_code" json:"game_code"`
	PlayerID  string                 `db:"player_id" json:"player_id"`
	Action    string                 `db:"action" json:"action"`
	Category  string                 `db:"category" json:"category"`
	Details   map[string]interface{} `db:"details" json:"details"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// Audit action categories
const (
	AuditCategoryLifecycle = "lifecycle"
	AuditCategoryHost      = "host"
)

// Audit actions
const (
	// Lifecycle actions
	AuditActionGameCreate = "game_create"
	AuditActionGameStart  = "game_start"
	AuditActionGameEnd    = "game_end"
	AuditActionGameDelete = "game_delete"
	AuditActionPlayerJoin = "player_join"

	// Host corrections
	AuditActionPlayerRemove    = "player_remove"
	AuditActionResourceAdjust  = "resource_adjust"
	AuditActionBonusPVAdjust   = "bonus_pv_adjust"
	AuditActionForceTurnChange = "force_turn_change"
)
