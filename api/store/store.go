/* store.go
 * Contains the store struct and NewStore function. The methods for this package are split into
 * two files: stats and profiles. Each of these files contains the methods for interacting with
 * that collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Stats    *mongo.Collection
		Profiles *mongo.Collection
	}
}

// Function for initialising Store. Opens the db connection and binds the collection handles
// Preconditions: Receives strings containing the database name and mongo URI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" || mongoURI == "" {
		return nil, fmt.Errorf("database name or mongo uri cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: struct {
			Stats    *mongo.Collection
			Profiles *mongo.Collection
		}{
			Stats:    db.Collection("mode_stats"),
			Profiles: db.Collection("profiles"),
		},
	}, nil
}
