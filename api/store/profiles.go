/* profiles.go
 * Contains the methods for interacting with the profiles collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forsaken-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile does a DB lookup for a user's profile, creating a fresh document on first access
// Preconditions: Receives the user whose profile is wanted
// Postconditions: Returns the stored profile, or a newly inserted zeroed profile stamped with
// the creation time, or an error if it occurs
func (s *Store) GetProfile(user shared.User) (Profile, error) {
	var result Profile
	err := s.Collections.Profiles.FindOne(context.TODO(), bson.M{"userid": user.UserID}).Decode(&result)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return Profile{}, fmt.Errorf("error fetching profile from db: %w", err)
	}

	now := time.Now().UTC()
	fresh := Profile{
		UserID:      user.UserID,
		Username:    user.Username,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if _, err := s.Collections.Profiles.InsertOne(context.TODO(), fresh); err != nil {
		return Profile{}, fmt.Errorf("failed to insert new profile: %w", err)
	}
	return fresh, nil
}

// SaveProfile stores a user's profile
// Preconditions: Receives the Profile to be stored
// Postconditions: Inserts or updates the profile in the db, or returns an error if the
// operation was unsuccessful
func (s *Store) SaveProfile(profile Profile) error {
	filter := bson.M{"userid": profile.UserID}

	// Attempt to find an existing document
	var existing Profile
	err := s.Collections.Profiles.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing profile failed: %w", err)
	}

	if notFound {
		if _, err := s.Collections.Profiles.InsertOne(context.TODO(), profile); err != nil {
			return fmt.Errorf("failed to insert new profile: %w", err)
		}
		return nil
	}

	update := bson.M{"$set": bson.M{
		"username":       profile.Username,
		"banner_url":     profile.BannerURL,
		"bio":            profile.Bio,
		"main_survivor":  profile.MainSurvivor,
		"main_killer":    profile.MainKiller,
		"playtime_hours": profile.PlaytimeHours,
		"killer_wins":    profile.KillerWins,
		"survivor_wins":  profile.SurvivorWins,
		"last_updated":   profile.LastUpdated,
	}}
	if _, err := s.Collections.Profiles.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("failed to update existing profile: %w", err)
	}
	return nil
}
