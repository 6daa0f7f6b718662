/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run main.go
 * Authors: Zachary Bower
 */

package main

import (
	"context"

	"forsaken-bot/api/api"
	"forsaken-bot/bot"
	"forsaken-bot/metrics"
	"forsaken-bot/web"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// config is loaded from the environment, with .env as a convenience for local runs
type config struct {
	DiscordToken string   `env:"DISCORD_TOKEN,required"`
	MongoURI     string   `env:"MONGO_URI,required"`
	DBName       string   `env:"DB_NAME" envDefault:"forsaken"`
	AdminUserIDs []string `env:"ADMIN_USER_IDS" envSeparator:","`
	WebEnabled   string   `env:"WEB_ENABLED" envDefault:"true"`
	WebAddr      string   `env:"WEB_ADDR" envDefault:":8080"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	// .env is optional, deployments set the environment directly
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	webEnabled, err := convertStrToBool(cfg.WebEnabled)
	if err != nil {
		log.Fatalf("invalid WEB_ENABLED %q: should be true or false", cfg.WebEnabled)
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewMetrics(registry)

	apiPtr, err := api.NewAPI(cfg.DBName, cfg.MongoURI, normalizeAdminIDs(cfg.AdminUserIDs), recorder)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.WithError(err).Error("failed to disconnect from store")
		}
	}()

	forsakenBot, err := bot.NewBot(cfg.DiscordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	forsakenBot.Metrics = recorder

	if webEnabled {
		go func() {
			if err := web.Start(web.Config{Addr: cfg.WebAddr, API: apiPtr, Registry: registry}); err != nil {
				log.WithError(err).Error("web server stopped")
			}
		}()
	}

	if err := forsakenBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
