package testutil

import (
	"os"
	"strconv"
	"time"
)

// TimeScaleEnv is the name of the environment variable that scales the
// timeouts of tests, for running them on slow machines.
const TimeScaleEnv = "PINA_TEST_TIME_SCALE"

// Scaled returns d scaled by $PINA_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * timeScale())
}

func timeScale() float64 {
	s := os.Getenv(TimeScaleEnv)
	if s == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(s, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
