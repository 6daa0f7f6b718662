/* test_mocks.go
 * Contains the mocks used for testing api functions
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"time"

	"forsaken-bot/api/shared"
	"forsaken-bot/api/store"
)

// MockStore implements store.Interface for testing
type MockStore struct {
	StatsData   map[string]store.ModeStats
	ProfileData map[string]store.Profile

	// Error injection fields for testing error scenarios
	GetModeStatsError       error
	SaveModeStatsError      error
	GetModeStatsByModeError error
	GetProfileError         error
	SaveProfileError        error
}

// Ensure MockStore implements store.Interface
var _ store.Interface = (*MockStore)(nil)

// NewMockStore creates a new MockStore with empty data
func NewMockStore() *MockStore {
	return &MockStore{
		StatsData:   map[string]store.ModeStats{},
		ProfileData: map[string]store.Profile{},
	}
}

func statsKey(userID string, mode shared.Mode) string {
	return userID + "|" + string(mode)
}

// GetModeStats returns the stored row or a zeroed one, mirroring the real store
func (m *MockStore) GetModeStats(user shared.User, mode shared.Mode) (store.ModeStats, error) {
	if m.GetModeStatsError != nil {
		return store.ModeStats{}, m.GetModeStatsError
	}
	if row, ok := m.StatsData[statsKey(user.UserID, mode)]; ok {
		return row.Normalized(), nil
	}
	return store.ModeStats{UserID: user.UserID, Username: user.Username, Mode: string(mode)}, nil
}

// SaveModeStats stores the row keyed by user and mode
func (m *MockStore) SaveModeStats(stats store.ModeStats) error {
	if m.SaveModeStatsError != nil {
		return m.SaveModeStatsError
	}
	m.StatsData[statsKey(stats.UserID, shared.Mode(stats.Mode))] = stats
	return nil
}

// GetModeStatsByMode returns every stored row for the mode
func (m *MockStore) GetModeStatsByMode(mode shared.Mode) ([]store.ModeStats, error) {
	if m.GetModeStatsByModeError != nil {
		return nil, m.GetModeStatsByModeError
	}
	var rows []store.ModeStats
	for _, row := range m.StatsData {
		if row.Mode == string(mode) {
			rows = append(rows, row.Normalized())
		}
	}
	return rows, nil
}

// GetProfile returns the stored profile, creating a fresh one like the real store
func (m *MockStore) GetProfile(user shared.User) (store.Profile, error) {
	if m.GetProfileError != nil {
		return store.Profile{}, m.GetProfileError
	}
	if p, ok := m.ProfileData[user.UserID]; ok {
		return p, nil
	}
	now := time.Now().UTC()
	p := store.Profile{UserID: user.UserID, Username: user.Username, CreatedAt: now, LastUpdated: now}
	m.ProfileData[user.UserID] = p
	return p, nil
}

// SaveProfile stores the profile keyed by user
func (m *MockStore) SaveProfile(profile store.Profile) error {
	if m.SaveProfileError != nil {
		return m.SaveProfileError
	}
	m.ProfileData[profile.UserID] = profile
	return nil
}

// SetStats seeds a ledger row for tests
func (m *MockStore) SetStats(user shared.User, mode shared.Mode, points int, wins int, losses int) {
	m.StatsData[statsKey(user.UserID, mode)] = store.ModeStats{
		UserID:   user.UserID,
		Username: user.Username,
		Mode:     string(mode),
		Points:   points,
		Wins:     wins,
		Losses:   losses,
	}
}

// StatsRow returns the stored ledger row for assertions
func (m *MockStore) StatsRow(user shared.User, mode shared.Mode) (store.ModeStats, bool) {
	row, ok := m.StatsData[statsKey(user.UserID, mode)]
	return row, ok
}

// mockDatabase is a mock implementation of the database interface
type mockDatabase struct {
	name string
}

func (d mockDatabase) Name() string {
	return d.name
}

// mockClient is a mock implementation of the client interface
type mockClient struct{}

func (c mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// GetDatabase returns a mock database
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return mockDatabase{name: "mock_db"}
}

// GetClient returns a mock client
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return mockClient{}
}
