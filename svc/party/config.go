package party

import "time"

// Config holds the env-driven party settings.
type Config struct {
	MinParticipants int           `env:"PARTY_MIN_PARTICIPANTS" envDefault:"2" validate:"min=1"`
	FeedbackTTL     time.Duration `env:"PARTY_FEEDBACK_TTL" envDefault:"3s"`
	Capacity        int           `env:"PARTY_CAPACITY" envDefault:"1024" validate:"min=1"`
	MessagesFile    string        `env:"PARTY_MESSAGES_FILE"`
}
