/* models_test.go
 * Contains unit tests for models.go functions
 * Authors: Zachary Bower
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// region Normalized tests

// TestNormalized_ClampsNegativePoints tests that legacy negative totals read back as zero
func TestNormalized_ClampsNegativePoints(t *testing.T) {
	row := ModeStats{UserID: "user1", Mode: "1v1", Points: -23, Wins: 2, Losses: 9}

	normalized := row.Normalized()

	assert.Equal(t, 0, normalized.Points)
	assert.Equal(t, 2, normalized.Wins)
	assert.Equal(t, 9, normalized.Losses)
	// the receiver is untouched
	assert.Equal(t, -23, row.Points)
}

// TestNormalized_LeavesNonNegativePoints tests that valid totals pass through unchanged
func TestNormalized_LeavesNonNegativePoints(t *testing.T) {
	assert.Equal(t, 0, ModeStats{Points: 0}.Normalized().Points)
	assert.Equal(t, 45, ModeStats{Points: 45}.Normalized().Points)
}

// endregion
