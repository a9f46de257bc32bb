package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type command struct {
	name    string
	steps   int
	version uint
}

func parseCommand(args []string) (command, error) {
	cmd := command{name: strings.ToLower(strings.TrimSpace(args[0]))}
	rest := args[1:]

	switch cmd.name {
	case "up", "version":
		return cmd, nil
	case "down":
		cmd.steps = 1
		if len(rest) == 0 {
			return cmd, nil
		}
		steps, err := strconv.Atoi(strings.TrimSpace(rest[0]))
		if err != nil {
			return command{}, fmt.Errorf("invalid down steps %q: %w", rest[0], err)
		}
		if steps <= 0 {
			return command{}, fmt.Errorf("down steps must be > 0")
		}
		cmd.steps = steps
		return cmd, nil
	case "force", "goto", "migrate":
		if cmd.name == "migrate" {
			cmd.name = "goto"
		}
		if len(rest) == 0 {
			return command{}, fmt.Errorf("%s requires a version argument", cmd.name)
		}
		version, err := strconv.ParseUint(strings.TrimSpace(rest[0]), 10, 64)
		if err != nil {
			return command{}, fmt.Errorf("invalid version %q: %w", rest[0], err)
		}
		if version > math.MaxInt32 {
			return command{}, fmt.Errorf("version %d is too large", version)
		}
		cmd.version = uint(version)
		return cmd, nil
	default:
		return command{}, usageError{}
	}
}

func resolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
