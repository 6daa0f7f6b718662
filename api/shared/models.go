/* models.go
 * This file contains the types shared between sub packages: user identity and
 * the fixed set of competitive modes with their per-mode scoring constants
 * Authors: Zachary Bower
 */

package shared

import "fmt"

type User struct {
	UserID   string
	Username string
}

// Mode identifies one of the five competitive formats
type Mode string

const (
	Mode1v1 Mode = "1v1"
	Mode2v2 Mode = "2v2"
	Mode3v3 Mode = "3v3"
	Mode4v4 Mode = "4v4"
	Mode5v5 Mode = "5v5"
)

// AllModes returns the modes in display order
func AllModes() []Mode {
	return []Mode{Mode1v1, Mode2v2, Mode3v3, Mode4v4, Mode5v5}
}

// ParseMode converts user input into a Mode
// Preconditions: Receives a string
// Postconditions: Returns the matching Mode or an error if the string is not a known mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Mode1v1, Mode2v2, Mode3v3, Mode4v4, Mode5v5:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// TeamSize returns the per-side player count for team modes (0 for 1v1)
func (m Mode) TeamSize() int {
	switch m {
	case Mode2v2:
		return 2
	case Mode3v3:
		return 3
	case Mode4v4:
		return 4
	case Mode5v5:
		return 5
	}
	return 0
}

// WinPoints returns the points awarded to each winner when a match in this mode finalizes
func (m Mode) WinPoints() int {
	switch m {
	case Mode1v1:
		return 15
	case Mode2v2:
		return 8
	case Mode3v3:
		return 7
	case Mode4v4:
		return 6
	case Mode5v5:
		return 10
	}
	return 0
}

// LossPoints returns the (negative) points applied to each loser, before the zero floor
func (m Mode) LossPoints() int {
	switch m {
	case Mode1v1:
		return -15
	case Mode2v2:
		return -7
	case Mode3v3:
		return -7
	case Mode4v4:
		return -6
	case Mode5v5:
		return -10
	}
	return 0
}
