package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	motion "github.com/tphakala/go-motion-persist"
)

// flagScalars carries the command line option values.
type flagScalars struct {
	angle       float32
	speed       float32
	rotation    float32
	decay       float32
	threshold   float32
	sensitivity float32
}

// buildOptions assembles the per-frame options. A YAML preset file
// takes precedence over the individual flags; both paths go through
// RawOptions resolution so missing fields fall back to the library
// defaults.
func buildOptions(presetPath, moveTag string, scalars flagScalars) (motion.Options, error) {
	if presetPath != "" {
		return loadPreset(presetPath)
	}

	raw := motion.RawOptions{
		DecayRate:     &scalars.decay,
		Threshold:     &scalars.threshold,
		Sensitivity:   &scalars.sensitivity,
		MoveType:      moveTag,
		Angle:         &scalars.angle,
		Speed:         &scalars.speed,
		RotationSpeed: &scalars.rotation,
	}
	return raw.Resolve(), nil
}

// loadPreset reads a RawOptions YAML file, for example:
//
//	decay_rate: 0.92
//	threshold: 20
//	move_type: wave
//	amplitude: 8
//	frequency: 0.03
func loadPreset(path string) (motion.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return motion.Options{}, fmt.Errorf("reading options preset: %w", err)
	}

	var raw motion.RawOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return motion.Options{}, fmt.Errorf("parsing options preset %s: %w", path, err)
	}

	return raw.Resolve(), nil
}
