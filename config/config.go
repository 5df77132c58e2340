package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the filler. Every field can be set
// with a command-line flag or a CROSSFILL_ environment variable.
type Config struct {
	WordListPath string
	PuzzlePath   string
	RefreshRate  int
	MaxAttempts  int
	RandomSeed   uint64
	MaxSteps     int
	Debug        bool
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)
	fs.String("word-list", "./data/words.txt", "newline-delimited word list, one word per line")
	fs.String("puzzle", "./data/puzzle.txt", "puzzle grid file; # marks a black cell")
	fs.Int("refresh-rate", 0, "print the grid every N solver steps; 0 disables")
	fs.Int("max-attempts", 10, "fill attempts made by the auto command")
	fs.Uint64("seed", 0, "random seed; 0 seeds from system entropy")
	fs.Int("max-steps", 100000, "abort an attempt after N solver steps; 0 means no bound")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("crossfill")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	c.WordListPath = v.GetString("word-list")
	c.PuzzlePath = v.GetString("puzzle")
	c.RefreshRate = v.GetInt("refresh-rate")
	c.MaxAttempts = v.GetInt("max-attempts")
	c.RandomSeed = v.GetUint64("seed")
	c.MaxSteps = v.GetInt("max-steps")
	c.Debug = v.GetBool("debug")
	return nil
}
