// Package config centralizes all tunable game parameters.
package config

import "time"

// Frame timing. Every tick is one fixed timestep.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Spawning
const (
	EnemySpawnInterval   = 1000 * time.Millisecond
	PowerUpSpawnInterval = 10000 * time.Millisecond
	PowerUpMinSpeed      = 2.0
	PowerUpSpeedRange    = 1.0 // vx in [PowerUpMinSpeed, PowerUpMinSpeed+PowerUpSpeedRange)
)

// Scoring and damage
const (
	ScoreShrink     = 100
	ScoreDestroy    = 150
	ShrinkAmount    = 10.0
	MinEnemyRadius  = 5.0 // enemies that would shrink to this or less are destroyed
	ParticlesPerRad = 2   // particles per unit of enemy radius in a hit burst
)

// Power-ups
const (
	MachineGunDuration = 5 * time.Second
	MachineGunCadence  = 2 // frames between machine-gun shots
	MachineGunCueEvery = 6 // frames between machine-gun shot sounds
)

// Controls
const (
	NudgeSpeed = 1.0
)

// Terminal rendering. Each half-block pixel covers PixelScale logical units,
// so the field grows with the terminal.
const (
	PixelScale = 8
)

// Desktop window defaults (logical units = screen pixels).
const (
	DesktopWidth  = 1024
	DesktopHeight = 768
)
