package config

import (
	"os"
	"strconv"
	"time"
)

// secondsToDuration converts the integer seconds used by the CloudStack
// tooling (api_timeout, CLOUDSTACK_TIMEOUT) to a duration.
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// parseSeconds parses an integer number of seconds from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseSeconds(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return defaultVal
	}

	return secondsToDuration(i)
}
