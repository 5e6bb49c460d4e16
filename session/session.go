// Package session owns the per-game mutable state shared by the UI and the simulation
// Score is the only currency; every mutation goes through the floor-enforcing API
package session

import (
	"math"
	"sync"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Config holds economy and upgrade tuning
type Config struct {
	StartingScore int

	ShotBaseRadius float64
	RadiusStep     float64
	RadiusMax      float64
	RadiusCost     int

	CooldownCost         int
	CooldownMaxLevel     int
	CooldownPerLevel     float64
	CooldownMaxReduction float64
}

// DefaultConfig returns the compiled-in economy
func DefaultConfig() Config {
	return Config{
		StartingScore:        parameter.ScoreStart,
		ShotBaseRadius:       parameter.ShotBaseRadius,
		RadiusStep:           parameter.UpgradeRadiusStep,
		RadiusMax:            parameter.UpgradeRadiusMax,
		RadiusCost:           parameter.UpgradeRadiusCost,
		CooldownCost:         parameter.UpgradeCooldownCost,
		CooldownMaxLevel:     parameter.UpgradeCooldownMaxLevel,
		CooldownPerLevel:     parameter.UpgradeCooldownPerLevel,
		CooldownMaxReduction: parameter.UpgradeCooldownMaxReduction,
	}
}

// Session is the GameSession context injected into every component that
// reads or mutates score and upgrades
// Safe for concurrent use: the UI reads from other goroutines
type Session struct {
	mu  sync.RWMutex
	cfg Config

	score         int
	shotRadius    float64
	cooldownLevel int
	indicator     float64
}

// New creates a session at its starting state
func New(cfg Config) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores starting score and clears upgrades
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = max(s.cfg.StartingScore, 0)
	s.shotRadius = s.cfg.ShotBaseRadius
	s.cooldownLevel = 0
	s.indicator = 1
}

// Score returns the current score
func (s *Session) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// AddScore applies delta unless the result would be negative
// Returns false with no state change on rejection
func (s *Session) AddScore(delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(delta)
}

// Spend deducts a non-negative cost; false if funds are insufficient
func (s *Session) Spend(cost int) bool {
	if cost < 0 {
		return false
	}
	return s.AddScore(-cost)
}

func (s *Session) addLocked(delta int) bool {
	next := s.score + delta
	if next < 0 {
		return false
	}
	s.score = next
	return true
}

// ShotRadius returns the current area weapon radius
func (s *Session) ShotRadius() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shotRadius
}

// CooldownLevel returns purchased cooldown levels
func (s *Session) CooldownLevel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cooldownLevel
}

// CurrentCooldown applies the upgrade discount to base
// The reduction fraction is clamped to the configured maximum
func (s *Session) CurrentCooldown(base float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reduction := math.Min(float64(s.cooldownLevel)*s.cfg.CooldownPerLevel, s.cfg.CooldownMaxReduction)
	return base * (1 - reduction)
}

// UpdateCooldownIndicator records weapon readiness in [0, 1] for the UI
func (s *Session) UpdateCooldownIndicator(progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indicator = math.Max(0, math.Min(1, progress))
}

// CooldownIndicator returns the last recorded readiness
func (s *Session) CooldownIndicator() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indicator
}

// CanAffordRadiusUpgrade reports whether BuyRadiusUpgrade would succeed
func (s *Session) CanAffordRadiusUpgrade() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shotRadius < s.cfg.RadiusMax && s.score >= s.cfg.RadiusCost
}

// BuyRadiusUpgrade grows the shot radius by one step, capped at the maximum
func (s *Session) BuyRadiusUpgrade() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shotRadius >= s.cfg.RadiusMax {
		return false
	}
	if !s.addLocked(-s.cfg.RadiusCost) {
		return false
	}
	s.shotRadius = math.Min(s.shotRadius+s.cfg.RadiusStep, s.cfg.RadiusMax)
	return true
}

// CanAffordCooldownUpgrade reports whether BuyCooldownUpgrade would succeed
func (s *Session) CanAffordCooldownUpgrade() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cooldownLevel < s.cfg.CooldownMaxLevel && s.score >= s.cfg.CooldownCost
}

// BuyCooldownUpgrade adds one cooldown level
func (s *Session) BuyCooldownUpgrade() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cooldownLevel >= s.cfg.CooldownMaxLevel {
		return false
	}
	if !s.addLocked(-s.cfg.CooldownCost) {
		return false
	}
	s.cooldownLevel++
	return true
}
