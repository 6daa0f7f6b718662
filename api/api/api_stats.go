/* api_stats.go
 * Coordinating API methods for the stats ledger and profile store: stat lookups,
 * the per-mode leaderboard, profile rendering and the validated setters. Admins
 * can run every setter against another player; everyone else only edits themselves
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"forsaken-bot/api/roster"
	"forsaken-bot/api/shared"
	"forsaken-bot/api/store"

	"github.com/elliotchance/pie/v2"
)

const (
	// leaderboardSize caps how many rows the leaderboard renders and serves
	leaderboardSize = 10

	// maxBioLength caps profile bios
	maxBioLength = 200
)

// Stats renders the user's ledger rows, for one mode or all of them
func (a *API) Stats(user shared.User, modeArg string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	modes := shared.AllModes()
	if modeArg != "" {
		mode, err := shared.ParseMode(modeArg)
		if err != nil {
			return "", fmt.Errorf("%w: %v", shared.ErrInvalidSelection, err)
		}
		modes = []shared.Mode{mode}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stats for %s:", user.Username))
	for _, mode := range modes {
		row, err := a.Store.GetModeStats(user, mode)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("\n%s: %d points, %dW %dL", mode, row.Points, row.Wins, row.Losses))
	}
	return sb.String(), nil
}

// LeaderboardRows returns the mode's top rows ordered by points, then wins, then
// fewest losses, then user id. Exported for the web leaderboard endpoint
func (a *API) LeaderboardRows(mode shared.Mode) ([]store.ModeStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.leaderboardRows(mode)
}

func (a *API) leaderboardRows(mode shared.Mode) ([]store.ModeStats, error) {
	rows, err := a.Store.GetModeStatsByMode(mode)
	if err != nil {
		return nil, err
	}
	rows = pie.SortUsing(rows, func(x, y store.ModeStats) bool {
		if x.Points != y.Points {
			return x.Points > y.Points
		}
		if x.Wins != y.Wins {
			return x.Wins > y.Wins
		}
		if x.Losses != y.Losses {
			return x.Losses < y.Losses
		}
		return x.UserID < y.UserID
	})
	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows, nil
}

// Leaderboard renders the mode's top ten players
func (a *API) Leaderboard(modeArg string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mode, err := shared.ParseMode(modeArg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidSelection, err)
	}
	rows, err := a.leaderboardRows(mode)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No one has recorded a %s match yet", mode), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Top %s players:", mode))
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("\n%d. %s: %d points (%dW %dL)", i+1, row.Username, row.Points, row.Wins, row.Losses))
	}
	return sb.String(), nil
}

// Profile renders the user's profile, creating a blank one on first access
func (a *API) Profile(user shared.User) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.Store.GetProfile(user)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile for %s", user.Username))
	if p.Bio != "" {
		sb.WriteString(fmt.Sprintf("\n%s", p.Bio))
	}
	if p.MainKiller != "" {
		sb.WriteString(fmt.Sprintf("\nMain killer: %s", roster.FormatCharacter(p.MainKiller)))
	}
	if p.MainSurvivor != "" {
		sb.WriteString(fmt.Sprintf("\nMain survivor: %s", p.MainSurvivor))
	}
	sb.WriteString(fmt.Sprintf("\nPlaytime: %d hours", p.PlaytimeHours))
	sb.WriteString(fmt.Sprintf("\nKiller wins: %d, survivor wins: %d", p.KillerWins, p.SurvivorWins))
	sb.WriteString(fmt.Sprintf("\nMember since %s", p.CreatedAt.Format("2 Jan 2006")))
	if p.BannerURL != "" {
		sb.WriteString(fmt.Sprintf("\n%s", p.BannerURL))
	}
	return sb.String(), nil
}

// editProfile loads the target's profile, applies the mutation, stamps
// LastUpdated and writes through. Actors can only edit other players' profiles
// when allow-listed. Callers must hold the mutex
func (a *API) editProfile(actor shared.User, target shared.User, apply func(*store.Profile)) error {
	if actor.UserID != target.UserID && !a.isAdmin(actor.UserID) {
		return fmt.Errorf("%w: only admins can edit another player's profile", shared.ErrNotAuthorized)
	}
	p, err := a.Store.GetProfile(target)
	if err != nil {
		return err
	}
	p.Username = target.Username
	apply(&p)
	p.LastUpdated = time.Now().UTC()
	return a.Store.SaveProfile(p)
}

// SetBanner sets the target's profile banner, restricted to Discord CDN images
func (a *API) SetBanner(actor shared.User, target shared.User, rawURL string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: banners must be https links", shared.ErrInvalidSelection)
	}
	if parsed.Host != "cdn.discordapp.com" && parsed.Host != "media.discordapp.net" {
		return "", fmt.Errorf("%w: banners must be hosted on the Discord CDN", shared.ErrInvalidSelection)
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.BannerURL = rawURL }); err != nil {
		return "", err
	}
	return fmt.Sprintf("Banner updated for %s", target.Username), nil
}

// SetBio sets the target's profile bio
func (a *API) SetBio(actor shared.User, target shared.User, bio string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := utf8.RuneCountInString(bio); n > maxBioLength {
		return "", fmt.Errorf("%w: bios are capped at %d characters, yours is %d", shared.ErrInvalidSelection, maxBioLength, n)
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.Bio = bio }); err != nil {
		return "", err
	}
	return fmt.Sprintf("Bio updated for %s", target.Username), nil
}

// SetMainKiller sets the target's main killer, resolved against the roster
func (a *API) SetMainKiller(actor shared.User, target shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name, err := roster.ResolveKiller(input)
	if err != nil {
		return "", err
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.MainKiller = name }); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's main killer is now %s", target.Username, name), nil
}

// SetMainSurvivor sets the target's main survivor, resolved against the roster
func (a *API) SetMainSurvivor(actor shared.User, target shared.User, input string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name, err := roster.ResolveSurvivor(input)
	if err != nil {
		return "", err
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.MainSurvivor = name }); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's main survivor is now %s", target.Username, name), nil
}

// SetPlaytime sets the target's playtime hours
func (a *API) SetPlaytime(actor shared.User, target shared.User, hours int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if hours < 0 {
		return "", fmt.Errorf("%w: playtime cannot be negative", shared.ErrInvalidSelection)
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.PlaytimeHours = hours }); err != nil {
		return "", err
	}
	return fmt.Sprintf("Playtime for %s set to %d hours", target.Username, hours), nil
}

// SetKillerWins sets the target's killer win counter
func (a *API) SetKillerWins(actor shared.User, target shared.User, wins int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if wins < 0 {
		return "", fmt.Errorf("%w: killer wins cannot be negative", shared.ErrInvalidSelection)
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.KillerWins = wins }); err != nil {
		return "", err
	}
	return fmt.Sprintf("Killer wins for %s set to %d", target.Username, wins), nil
}

// SetSurvivorWins sets the target's survivor win counter
func (a *API) SetSurvivorWins(actor shared.User, target shared.User, wins int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if wins < 0 {
		return "", fmt.Errorf("%w: survivor wins cannot be negative", shared.ErrInvalidSelection)
	}
	if err := a.editProfile(actor, target, func(p *store.Profile) { p.SurvivorWins = wins }); err != nil {
		return "", err
	}
	return fmt.Sprintf("Survivor wins for %s set to %d", target.Username, wins), nil
}

// adminSetStat overrides one ledger field for the target, clamped at zero.
// Callers must hold the mutex
func (a *API) adminSetStat(actor shared.User, target shared.User, modeArg string, value int, field string) (string, error) {
	if !a.isAdmin(actor.UserID) {
		return "", fmt.Errorf("%w: only admins can override stats", shared.ErrNotAuthorized)
	}
	mode, err := shared.ParseMode(modeArg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidSelection, err)
	}
	if value < 0 {
		value = 0
	}

	row, err := a.Store.GetModeStats(target, mode)
	if err != nil {
		return "", err
	}
	row.Username = target.Username
	switch field {
	case "points":
		row.Points = value
	case "wins":
		row.Wins = value
	case "losses":
		row.Losses = value
	}
	if err := a.Store.SaveModeStats(row); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set %s's %s %s to %d", target.Username, mode, field, value), nil
}

// AdminSetPoints overrides a player's points for a mode
func (a *API) AdminSetPoints(actor shared.User, target shared.User, modeArg string, value int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminSetStat(actor, target, modeArg, value, "points")
}

// AdminSetWins overrides a player's win counter for a mode
func (a *API) AdminSetWins(actor shared.User, target shared.User, modeArg string, value int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminSetStat(actor, target, modeArg, value, "wins")
}

// AdminSetLosses overrides a player's loss counter for a mode
func (a *API) AdminSetLosses(actor shared.User, target shared.User, modeArg string, value int) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adminSetStat(actor, target, modeArg, value, "losses")
}

// KillersList renders the killer roster
func (a *API) KillersList() string {
	return "Killers: " + strings.Join(roster.Killers(), ", ")
}

// SurvivorsList renders the survivor roster
func (a *API) SurvivorsList() string {
	return "Survivors: " + strings.Join(roster.Survivors(), ", ")
}

// MapsList renders the map pool
func (a *API) MapsList() string {
	return "Maps: " + strings.Join(roster.Maps(), ", ")
}

// RecommendKillers renders the recommended killers for a map
func (a *API) RecommendKillers(input string) (string, error) {
	name, recs, err := roster.RecommendedKillers(input)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return fmt.Sprintf("No standout killers on %s, play who you like", name), nil
	}
	return fmt.Sprintf("Recommended killers on %s: %s", name, strings.Join(recs, ", ")), nil
}

// RecommendBans renders the survivor ban advice against a killer
func (a *API) RecommendBans(input string) (string, error) {
	name, advice, err := roster.RecommendedBans(input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ban suggestions against %s:", name))
	if len(advice.Solo) > 0 {
		sb.WriteString(fmt.Sprintf("\nSolo: %s", strings.Join(advice.Solo, ", ")))
	}
	if len(advice.Combos) > 0 {
		pairs := make([]string, 0, len(advice.Combos))
		for _, c := range advice.Combos {
			pairs = append(pairs, c[0]+" + "+c[1])
		}
		sb.WriteString(fmt.Sprintf("\nCombos: %s", strings.Join(pairs, "; ")))
	}
	return sb.String(), nil
}
