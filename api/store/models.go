/* models.go
 * This file contains the structs and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModeStats is one user's ledger row for one competitive mode. Rows are created
// lazily on first save and never deleted
type ModeStats struct {
	Id       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"userid"`
	Username string             `bson:"username"`
	Mode     string             `bson:"mode"`
	Points   int                `bson:"points"`
	Wins     int                `bson:"wins"`
	Losses   int                `bson:"losses"`
}

// Normalized returns a copy with legacy negative points clamped to zero. Older
// deployments applied loss penalties without a floor, so stored rows can still
// carry negative totals
func (m ModeStats) Normalized() ModeStats {
	if m.Points < 0 {
		m.Points = 0
	}
	return m
}

// Profile is a user's cosmetic profile document, independent of the stats ledger
type Profile struct {
	Id            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userid"`
	Username      string             `bson:"username"`
	BannerURL     string             `bson:"banner_url,omitempty"`
	Bio           string             `bson:"bio,omitempty"`
	MainSurvivor  string             `bson:"main_survivor,omitempty"`
	MainKiller    string             `bson:"main_killer,omitempty"`
	PlaytimeHours int                `bson:"playtime_hours"`
	KillerWins    int                `bson:"killer_wins"`
	SurvivorWins  int                `bson:"survivor_wins"`
	CreatedAt     time.Time          `bson:"created_at"`
	LastUpdated   time.Time          `bson:"last_updated"`
}
