/* stats.go
 * Contains the methods for interacting with the mode_stats collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"forsaken-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetModeStats does a DB lookup for one user's ledger row in one mode
// Preconditions: Receives the user and the mode
// Postconditions: Returns the stored row with negative points normalized to zero, or a zeroed
// row if the user has no history in the mode, or an error if the lookup fails
func (s *Store) GetModeStats(user shared.User, mode shared.Mode) (ModeStats, error) {
	var result ModeStats
	err := s.Collections.Stats.FindOne(context.TODO(), bson.M{"userid": user.UserID, "mode": string(mode)}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ModeStats{UserID: user.UserID, Username: user.Username, Mode: string(mode)}, nil
		}
		return ModeStats{}, fmt.Errorf("error fetching stats from db: %w", err)
	}

	return result.Normalized(), nil
}

// SaveModeStats stores a user's ledger row, creating the document on first write
// Preconditions: Receives the ModeStats row to be stored
// Postconditions: Inserts or updates the row in the db, or returns an error if the operation
// was unsuccessful
func (s *Store) SaveModeStats(stats ModeStats) error {
	filter := bson.M{"userid": stats.UserID, "mode": stats.Mode}

	// Attempt to find an existing document
	var existing ModeStats
	err := s.Collections.Stats.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing stats failed: %w", err)
	}

	// The user has no ledger row for this mode yet so we create a new document
	if notFound {
		if _, err := s.Collections.Stats.InsertOne(context.TODO(), stats); err != nil {
			return fmt.Errorf("failed to insert new stats row: %w", err)
		}
		return nil
	}

	// Else update the user's existing row. The fields are listed out rather than
	// set from the struct so a row decoded from the db can be written back without
	// touching _id
	update := bson.M{"$set": bson.M{
		"username": stats.Username,
		"points":   stats.Points,
		"wins":     stats.Wins,
		"losses":   stats.Losses,
	}}
	if _, err := s.Collections.Stats.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("failed to update existing stats row: %w", err)
	}
	return nil
}

// GetModeStatsByMode does a DB lookup for every ledger row in one mode. Used in
// leaderboard calculations
// Preconditions: Receives the mode to fetch
// Postconditions: Returns a slice of rows with negative points normalized, or an error if it occurs
func (s *Store) GetModeStatsByMode(mode shared.Mode) ([]ModeStats, error) {
	filter := bson.D{{Key: "mode", Value: string(mode)}}

	// Retrieves documents that match the filter
	cursor, err := s.Collections.Stats.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching stats from db: %w", err)
	}

	// Unpack the cursor into a slice
	var results []ModeStats
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of stats rows: %w", err)
	}

	for i := range results {
		results[i] = results[i].Normalized()
	}
	return results, nil
}
