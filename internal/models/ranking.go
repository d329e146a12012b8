package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RankedEntry is a pure computation output: one entry's place within its
// category's ranking. It is derived on demand and never persisted as
// primary truth; champion flags stored alongside entries are ignored and
// recomputed from scratch on every read.
type RankedEntry struct {
	Entry              *Entry             `json:"entry"`
	CategoryID         primitive.ObjectID `json:"categoryId"`
	RankPosition       int                `json:"rankPosition"` // 1-based; ties share a position band
	IsCategoryChampion bool               `json:"isCategoryChampion"`
	IsGroupChampion    bool               `json:"isGroupChampion"` // best of its aggregation group (e.g. species+sex)
	IsGrandChampion    bool               `json:"isGrandChampion"`
	GroupKey           string             `json:"groupKey,omitempty"`
	PrizeLabel         string             `json:"prizeLabel,omitempty"` // display label, e.g. "Gran Campeón"
}

// ContestWinners groups a contest's surviving results for the public view.
type ContestWinners struct {
	Contest *Contest       `json:"contest"`
	Winners []*RankedEntry `json:"winners"`
}
