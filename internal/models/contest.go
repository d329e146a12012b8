package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoringScheme identifies the contest-wide scoring policy. Exactly one
// scheme is active per contest; it selects which score payload field on an
// Entry is meaningful and how entries compare against each other.
type ScoringScheme string

const (
	SchemeNumeric  ScoringScheme = "NUMERIC"
	SchemePoints   ScoringScheme = "POINTS"
	SchemePosition ScoringScheme = "POSITION"
	SchemeGrade    ScoringScheme = "GRADE"
)

// ScoreBounds is the inclusive value range for NUMERIC and POINTS contests.
type ScoreBounds struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// DefaultGradeSet is used by GRADE contests that define no grade set of
// their own. Ordered best-first.
var DefaultGradeSet = []string{"A", "B", "C", "D", "E"}

// Contest represents a livestock-show contest
type Contest struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	ScoringScheme      ScoringScheme      `bson:"scoringScheme" json:"scoringScheme"`
	ScoreBounds        *ScoreBounds       `bson:"scoreBounds,omitempty" json:"scoreBounds,omitempty"`             // NUMERIC / POINTS only
	PositionsAvailable int                `bson:"positionsAvailable,omitempty" json:"positionsAvailable,omitempty"` // POSITION only
	GradeSet           []string           `bson:"gradeSet,omitempty" json:"gradeSet,omitempty"`                   // GRADE only, best-first
	RemateEnabled      bool               `bson:"remateEnabled" json:"remateEnabled"` // auction flag, settlement handled elsewhere
	Finalized          bool               `bson:"finalized" json:"finalized"`
	FinalizedAt        time.Time          `bson:"finalizedAt,omitempty" json:"finalizedAt,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveGradeSet returns the contest's grade set, falling back to the
// built-in default when the contest defines none.
func (c *Contest) EffectiveGradeSet() []string {
	if len(c.GradeSet) > 0 {
		return c.GradeSet
	}
	return DefaultGradeSet
}
