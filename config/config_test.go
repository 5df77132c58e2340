package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.WordListPath, "./data/words.txt")
	is.Equal(c.PuzzlePath, "./data/puzzle.txt")
	is.Equal(c.RefreshRate, 0)
	is.Equal(c.MaxAttempts, 10)
	is.Equal(c.MaxSteps, 100000)
	is.Equal(c.Debug, false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{
		"--word-list", "/tmp/w.txt", "--refresh-rate", "50", "--seed", "42",
	})
	is.NoErr(err)
	is.Equal(c.WordListPath, "/tmp/w.txt")
	is.Equal(c.RefreshRate, 50)
	is.Equal(c.RandomSeed, uint64(42))
}

func TestLoadEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("CROSSFILL_MAX_ATTEMPTS", "3")
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.MaxAttempts, 3)
}
