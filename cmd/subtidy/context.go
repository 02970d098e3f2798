package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"subtidy/internal/config"
	"subtidy/internal/language"
	"subtidy/internal/logging"
	"subtidy/internal/profile"
	"subtidy/internal/srt"
	"subtidy/internal/textwidth"
)

type commandContext struct {
	configFlag *string
	langFlag   *string
	kidsFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, langFlag *string, kidsFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		langFlag:   langFlag,
		kidsFlag:   kidsFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{Output: os.Stderr}
		if cfg, err := c.ensureConfig(); err == nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		logger, err := logging.New(opts)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// resolveProfile picks the language (flag, config default, or detection from
// the cue text) and returns its limit profile with overrides applied.
func (c *commandContext) resolveProfile(seq srt.Sequence) (profile.Profile, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return profile.Profile{}, err
	}
	code := ""
	if c.langFlag != nil {
		code = strings.TrimSpace(*c.langFlag)
	}
	if code == "" {
		code = cfg.Defaults.Language
	}
	if code == "" {
		code = language.Detect(detectionSample(seq))
		c.ensureLogger().Debug("language auto-detected", "language", code)
	}
	return cfg.ProfileFor(code)
}

func (c *commandContext) kids() bool {
	if c.kidsFlag != nil && *c.kidsFlag {
		return true
	}
	cfg, err := c.ensureConfig()
	return err == nil && cfg.Defaults.Kids
}

// detectionSample joins the visible text of the first cues; a bounded sample
// keeps detection fast on large files.
func detectionSample(seq srt.Sequence) string {
	const sampleCues = 200
	var b strings.Builder
	for i, cue := range seq {
		if i == sampleCues {
			break
		}
		for _, line := range cue.Lines {
			b.WriteString(textwidth.StripMarkup(line))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
