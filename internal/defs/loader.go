// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadLevel reads a level file. Fields missing from the file keep the values of DefaultLevel.
func LoadLevel(path string) (LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}

	level, err := ParseLevel(file)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("level %s: %w", path, err)
	}

	log.Printf("Loaded level %q: %d turrets, %d waves", level.Name, len(level.Turrets), level.Spawner.TotalWaves)
	return level, nil
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (LevelDefinition, error) {
	level := DefaultLevel()
	// Башни берутся только из файла, стандартные не подмешиваются.
	level.Turrets = nil
	if err := json.Unmarshal(data, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return LevelDefinition{}, fmt.Errorf("invalid level: %w", err)
	}
	return level, nil
}
