/* config.go
 * Contains the bot configuration, read from the environment (and an optional .env file) and validated on load
 */

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

var ErrMissingToken = errors.New("discord token is required but none was provided")

// Config holds every setting the bot reads from the environment
type Config struct {
	Token     string `envconfig:"DISCORD_TOKEN"`
	BetaToken string `envconfig:"DISCORD_BETA_TOKEN"`

	EmailDomain     string   `envconfig:"EMAIL_DOMAIN" default:"@denison.edu" validate:"required"`
	MemberRole      string   `envconfig:"MEMBER_ROLE" default:"Students/Alumni" validate:"required"`
	ProcessChannels []string `envconfig:"PROCESS_CHANNELS" default:"intern-process,new-grad-process" validate:"min=1,dive,required"`

	PromptTimeout time.Duration `envconfig:"PROMPT_TIMEOUT" default:"60s" validate:"gt=0"`
	NoticeTTL     time.Duration `envconfig:"NOTICE_TTL" default:"10s" validate:"gt=0"`
	ReplyTTL      time.Duration `envconfig:"REPLY_TTL" default:"5s" validate:"gt=0"`

	// HTTPAddr enables the health endpoint when set, e.g. ":8080"
	HTTPAddr string `envconfig:"HTTP_ADDR"`
}

// Load reads the configuration from the environment. Values in a .env file in the working directory are loaded
// first, without overriding variables that are already set
// Preconditions: None
// Postconditions: Returns a validated Config, or an error if a value cannot be parsed or fails validation
func Load() (Config, error) {
	// A missing .env file is normal in production
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// BotToken picks the token for the production or the beta bot
// Preconditions: Receives true to use the beta bot
// Postconditions: Returns the selected token, or ErrMissingToken if it is empty
func (c Config) BotToken(beta bool) (string, error) {
	token := c.Token
	if beta {
		token = c.BetaToken
	}
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
