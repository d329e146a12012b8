package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry represents an animal or product registered into one category.
// Exactly one of the score payload fields (NumericScore, Position, Grade)
// is meaningful, selected by the owning contest's scoring scheme. A nil
// payload means the entry has not been judged yet.
type Entry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID   primitive.ObjectID `bson:"contestId" json:"contestId"`
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	FichaNumber int                `bson:"fichaNumber" json:"fichaNumber"` // unique per contest
	OwnerName   string             `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	Species     string             `bson:"species" json:"species"`
	Breed       string             `bson:"breed,omitempty" json:"breed,omitempty"`
	Sex         Sex                `bson:"sex,omitempty" json:"sex,omitempty"`
	BirthDate   *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	ProductType string             `bson:"productType,omitempty" json:"productType,omitempty"`

	// Score payload; which field is active follows the contest scheme.
	NumericScore *float64 `bson:"numericScore,omitempty" json:"numericScore,omitempty"`
	Position     *int     `bson:"position,omitempty" json:"position,omitempty"`
	Grade        *string  `bson:"grade,omitempty" json:"grade,omitempty"`

	// ScoringSchemeEcho records the scheme in force when the score was
	// saved. Informational only: validation and ranking always follow the
	// contest's current scheme, never this echo.
	ScoringSchemeEcho ScoringScheme `bson:"scoringSchemeEcho,omitempty" json:"scoringSchemeEcho,omitempty"`

	IsDestacado bool     `bson:"isDestacado" json:"isDestacado"` // manual "featured" flag, independent of ranking
	RematePrice *float64 `bson:"rematePrice,omitempty" json:"rematePrice,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
