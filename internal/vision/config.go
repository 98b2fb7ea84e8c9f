package vision

import (
	"os"
	"strconv"
)

// TaskType identifies what a vision call is for.
type TaskType string

const (
	TaskFoodPhoto TaskType = "food_photo"
	TaskFoodText  TaskType = "food_text"
)

type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the vision subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a disabled config pointed at a local Ollama.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llava",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskFoodPhoto: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 60000},
			TaskFoodText:  {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 15000},
		},
	}
}

// LoadConfig overlays CADENCE_VISION_* environment variables on the
// defaults. Malformed values are ignored.
func LoadConfig() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays CADENCE_VISION_* environment variables on cfg.
func ApplyEnv(cfg Config) Config {
	return ApplyLookup(cfg, os.Getenv)
}

// ApplyLookup is ApplyEnv reading values through lookup, which returns ""
// for unset keys.
func ApplyLookup(cfg Config, lookup func(string) string) Config {
	if v := lookup("CADENCE_VISION_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := lookup("CADENCE_VISION_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := lookup("CADENCE_VISION_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := lookup("CADENCE_VISION_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := lookup("CADENCE_VISION_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := lookup("CADENCE_VISION_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := lookup("CADENCE_VISION_PHOTO_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc := cfg.Tasks[TaskFoodPhoto]
			tc.TimeoutMs = n
			cfg.Tasks[TaskFoodPhoto] = tc
		}
	}
	return cfg
}

// TaskTimeout returns the task-specific timeout, or the global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
