/* main.go
 * The "main" method for running the bot and webhook server. For details about
 * the bot see `readme.md`
 * Usage: go run main.go -year=<year> -gender=<gender> -db=<database>
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"mascot-madness/api/api"
	"mascot-madness/bot"
	"mascot-madness/web"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	err := godotenv.Load()

	//Flags
	yearPtr := flag.Int("year", 2025, "Tournament year, e.g. 2025")
	genderPtr := flag.String("gender", "men", "Tournament bracket: men or women")
	dbPtr := flag.String("db", "mascot_madness", "Mongo database name")
	addrPtr := flag.String("addr", ":8080", "Listen address for the webhook server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	discordToken := os.Getenv("DISCORD_PROD_TOKEN")
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"), *yearPtr, *genderPtr, os.Getenv("FEED_BASE_URL"), os.Getenv("FEED_API_KEY"), logger)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Webhook server runs alongside the bot so the feed can push result events
	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
			log.Fatalf("web server stopped: %v", err)
		}
	}()

	madnessBot, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := madnessBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
