package internal

import "time"

type Config struct {
	DiscordToken      string        `env:"DISCORD_TOKEN,required=true"`
	CommandPrefix     string        `env:"COMMAND_PREFIX,default=!"`
	RaidHelperBaseURL string        `env:"RAID_HELPER_BASE_URL,default=https://raid-helper.dev"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	ComparePause      time.Duration `env:"COMPARE_PAUSE,default=1s"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
}
