// Command piece runs an interactive two-player demo game against the rules
// engine: cast spells, activate abilities, resolve the stack, and answer
// pending choices from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Jesterhearts/piece-go/internal/catalog"
	"github.com/Jesterhearts/piece-go/internal/config"
	"github.com/Jesterhearts/piece-go/internal/game"
	"github.com/Jesterhearts/piece-go/internal/game/targeting"
)

var configPath = flag.String("config", "config/config.yaml", "path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db := game.NewDatabase(logger)
	db.TriggerOrder = game.TriggerOrder(cfg.Engine.TriggerOrder)

	registry := catalog.Builtin()

	alice := db.AddPlayer("Alice", cfg.Engine.StartingLife)
	bob := db.AddPlayer("Bob", cfg.Engine.StartingLife)

	deal(db, registry, alice,
		"Alpine Grizzly", "Lightning Strike", "Titanic Growth", "Elvish Visionary",
		"Glorious Anthem", "Raise the Alarm", "Preordain", "Blaze",
	)
	deal(db, registry, bob,
		"Leaf Gilder", "Murder", "Cancel", "Unsummon",
		"Prodigal Pyromancer", "Divination", "Day of Judgment",
		"Careful Study", "Tyrant's Choice",
	)

	logger.Info("game ready",
		zap.Int("starting_life", cfg.Engine.StartingLife),
		zap.String("trigger_order", cfg.Engine.TriggerOrder),
	)

	repl(db, os.Stdin)
}

func deal(db *game.Database, registry *catalog.Registry, player game.PlayerID, names ...string) {
	for _, name := range names {
		db.UploadCard(registry.MustGet(name), player, targeting.LocationHand)
	}
	// A few library cards so draws and scry have something to see.
	for i := 0; i < 10; i++ {
		db.UploadCard(registry.MustGet("Forest"), player, targeting.LocationLibrary)
	}
}

func repl(db *game.Database, in *os.File) {
	scanner := bufio.NewScanner(in)
	var pending *game.PendingResults

	fmt.Println("commands: hand <player> | battlefield | stack | cast <card> | activate <ability> | resolve | choose <n> | skip | cancel | quit")
	for {
		if pending != nil {
			pending = drive(db, pending, scanner)
			continue
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit":
			return
		case "hand":
			for _, pid := range db.Players() {
				player := db.MustPlayer(pid)
				fmt.Printf("%s:\n", player.Name)
				for _, id := range player.Hand {
					fmt.Printf("  [%d] %s\n", id, db.MustCard(id).Face.Name)
				}
			}
		case "battlefield":
			for _, id := range db.Battlefield() {
				card := db.MustCard(id)
				line := fmt.Sprintf("  [%d] %s", id, card.Face.Name)
				if power, ok := db.Power(id); ok {
					toughness, _ := db.Toughness(id)
					line += fmt.Sprintf(" %d/%d", power, toughness)
				}
				if card.Tapped {
					line += " (tapped)"
				}
				fmt.Println(line)
			}
		case "stack":
			for _, entry := range db.Stack.List() {
				fmt.Printf("  %s %s\n", entry.Kind, db.MustCard(entry.Card).Face.Name)
			}
		case "cast":
			id, ok := parseID(fields)
			if !ok {
				break
			}
			card, exists := db.Card(game.CardID(id))
			if !exists {
				fmt.Println("no such card")
				break
			}
			pending = game.CastCardFrom(db, card.ID, card.Zone)
		case "activate":
			id, ok := parseID(fields)
			if !ok {
				break
			}
			results, err := game.ActivateAbility(db, game.AbilityID(id))
			if err != nil {
				fmt.Println(err)
				break
			}
			pending = results
		case "resolve":
			results, err := game.ResolveTopOfStack(db)
			if err != nil {
				fmt.Println(err)
				break
			}
			pending = results
		default:
			fmt.Println("unknown command")
		}
	}
}

// drive advances a pending resolution until it completes or needs a choice
// the user has not supplied yet.
func drive(db *game.Database, pending *game.PendingResults, scanner *bufio.Scanner) *game.PendingResults {
	// When every remaining step has emptied out there is nothing to ask;
	// drain without prompting.
	if pending.OnlyImmediateResults(db) {
		if pending.Resolve(db, nil) == game.Complete {
			fmt.Println("resolved")
			return nil
		}
		return pending
	}
	switch pending.Resolve(db, nil) {
	case game.Complete:
		fmt.Println("resolved")
		return nil
	case game.TryAgain:
		return pending
	}

	options := pending.Options(db)
	fmt.Println(pending.Description(db))
	for _, choice := range options.Choices {
		fmt.Printf("  [%d] %s\n", choice.Index, choice.Label)
	}
	fmt.Print("choose> ")
	if !scanner.Scan() {
		return nil
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return pending
	}
	switch fields[0] {
	case "skip":
		pending.Resolve(db, nil)
		return pending
	case "cancel":
		if err := pending.Cancel(db); err != nil {
			fmt.Println(err)
			return pending
		}
		return nil
	default:
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			fmt.Println("enter an option number, skip, or cancel")
			return pending
		}
		pending.Resolve(db, &n)
		return pending
	}
}

func parseID(fields []string) (int, bool) {
	if len(fields) < 2 {
		fmt.Println("missing id")
		return 0, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("bad id")
		return 0, false
	}
	return id, true
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
