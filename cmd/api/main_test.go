package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runMainEnv = "BOOKINGS_RUN_MAIN"

func TestMainReportsConfigError(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainReportsConfigError$")
	cmd.Env = append(os.Environ(), runMainEnv+"=1", "RATE_LIMIT_PER_MIN=abc", "APP_ENV=dev")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "load config")
	assert.Contains(t, string(out), "invalid RATE_LIMIT_PER_MIN value")
}
