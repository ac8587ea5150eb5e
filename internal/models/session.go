package models

import (
	"time"

	"designtrack/internal/timer"
)

// SessionStatus is the persisted lifecycle state of a ProjectSession.
// There is no PAUSED status: a paused session is an IN_PROGRESS record
// whose pause ledger ends with an open entry.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
)

// ProjectType classifies the design work a session tracks.
type ProjectType string

const (
	TypeRelease     ProjectType = "release"
	TypeVariation   ProjectType = "variation"
	TypeDevelopment ProjectType = "development"
)

// ProjectTypes lists the valid project types in display order.
var ProjectTypes = []ProjectType{TypeRelease, TypeVariation, TypeDevelopment}

// ImplementType is the truck-body implement family a work order belongs to.
type ImplementType string

const (
	ImplementBase       ImplementType = "base"
	ImplementVan        ImplementType = "van"
	ImplementSider      ImplementType = "sider"
	ImplementCargoBox   ImplementType = "cargo-box"
	ImplementTipper     ImplementType = "tipper"
	ImplementComponents ImplementType = "components"
	ImplementOther      ImplementType = "other"
)

// ImplementTypes lists the valid implement types in display order.
var ImplementTypes = []ImplementType{
	ImplementBase,
	ImplementVan,
	ImplementSider,
	ImplementCargoBox,
	ImplementTipper,
	ImplementComponents,
	ImplementOther,
}

// FlooringTypes are the flooring options offered for implements that carry
// a floor (base, van and sider).
var FlooringTypes = []string{
	"M/F 20mm",
	"M/F 30mm",
	"Omega 28mm",
	"Sonata",
	"XDZ 3mm",
	"XDZ 4.75mm",
	"Naval 15mm",
	"Naval 18mm",
	"Naval 24mm",
	"Naval 27mm",
}

// HasFlooring reports whether the implement type carries a flooring choice.
func (t ImplementType) HasFlooring() bool {
	return t == ImplementBase || t == ImplementVan || t == ImplementSider
}

// OpenPauseSentinel marks a still-open pause on the wire. It must
// round-trip exactly through persistence, which is why the pauses column is
// JSON rather than a numeric column that could reject negatives.
const OpenPauseSentinel = -1

// PauseRecord is the wire form of one pause interval, stored inside the
// session's JSON pauses column.
type PauseRecord struct {
	Reason          string    `json:"reason"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"durationSeconds"`
}

// Open reports whether this record is the still-running tail of the ledger.
func (p PauseRecord) Open() bool {
	return p.DurationSeconds == OpenPauseSentinel
}

// VariationRecord is a derived part or assembly code produced during a
// session. Variations share the session's lifecycle but are not
// time-accounted.
type VariationRecord struct {
	ID             string `json:"id"`
	OldCode        string `json:"oldCode"`
	NewCode        string `json:"newCode"`
	Description    string `json:"description"`
	Type           string `json:"type"` // "part" or "assembly"
	FilesGenerated bool   `json:"filesGenerated"`
}

// ProjectSession is one timed unit of design work against a work order,
// from start to finish. TotalActiveSeconds is authoritative only once the
// session is COMPLETED; while running the ground truth is derived from
// StartTime, the clock and the closed pauses.
type ProjectSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NS            string        `gorm:"not null;index" json:"ns"`
	ClientName    string        `json:"client_name"`
	ProjectCode   string        `json:"project_code"`
	Type          ProjectType   `gorm:"not null" json:"type"`
	ImplementType ImplementType `json:"implement_type"`
	FlooringType  string        `json:"flooring_type"`

	StartTime          time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime            *time.Time        `json:"end_time"`
	TotalActiveSeconds int               `json:"total_active_seconds"`
	Pauses             []PauseRecord     `gorm:"serializer:json" json:"pauses"`
	Variations         []VariationRecord `gorm:"serializer:json" json:"variations"`
	Status             SessionStatus     `gorm:"not null;default:IN_PROGRESS;index" json:"status"`

	Notes  string `json:"notes"`
	UserID string `json:"user_id"`
}

// Paused reports whether the session's ledger tail is an open pause.
func (s *ProjectSession) Paused() bool {
	return len(s.Pauses) > 0 && s.Pauses[len(s.Pauses)-1].Open()
}

// Ledger converts the persisted pause records into a domain ledger.
func (s *ProjectSession) Ledger() timer.Ledger {
	return PausesToLedger(s.Pauses)
}
