package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sex is the declared sex of an animal entry
type Sex string

const (
	SexMacho  Sex = "MACHO"
	SexHembra Sex = "HEMBRA"
)

// SexConstraint restricts which sexes a category accepts
type SexConstraint string

const (
	SexConstraintMacho  SexConstraint = "MACHO"
	SexConstraintHembra SexConstraint = "HEMBRA"
	SexConstraintLibre  SexConstraint = "LIBRE" // unrestricted
)

// AgeRange is an inclusive age window in days, measured at evaluation time.
type AgeRange struct {
	MinDays int `bson:"minDays" json:"minDays"`
	MaxDays int `bson:"maxDays" json:"maxDays"`
}

// Category is a contest-defined grouping entries compete within.
// A free-form ("other") category opts out of structured validation
// entirely: organizer-authored, no constraint checking applies.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID     primitive.ObjectID `bson:"contestId" json:"contestId"`
	Name          string             `bson:"name" json:"name"`
	Species       string             `bson:"species,omitempty" json:"species,omitempty"`
	SexConstraint SexConstraint      `bson:"sexConstraint" json:"sexConstraint"`
	AgeRange      *AgeRange          `bson:"ageRange,omitempty" json:"ageRange,omitempty"`
	ProductType   string             `bson:"productType,omitempty" json:"productType,omitempty"` // non-livestock "product" contests
	FreeForm      bool               `bson:"freeForm" json:"freeForm"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
