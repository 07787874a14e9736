// Package config loads typed configuration structs from environment
// variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11, then checks
// `validate` tags with github.com/go-playground/validator/v10. A `.env` file
// in the working directory is read once, before the first Load, with
// github.com/joho/godotenv; real environment variables win over the file.
//
//	type PartyConfig struct {
//		MinParticipants int           `env:"PARTY_MIN_PARTICIPANTS" envDefault:"2" validate:"min=2"`
//		FeedbackTTL     time.Duration `env:"PARTY_FEEDBACK_TTL" envDefault:"3s"`
//	}
//
//	var cfg PartyConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once per process and cached; later calls for
// the same type return the cached copy. LoadEnv reads additional env files
// and ResetCache drops cached values, mostly for tests.
package config
