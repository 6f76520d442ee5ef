// Package main provides the simbattle binary that runs batches of
// bot-vs-bot battles through the reward and progression pipeline.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/kestrel-games/birdclash/internal/config"
	"github.com/kestrel-games/birdclash/internal/game/battle"
	"github.com/kestrel-games/birdclash/internal/game/bot"
	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/combat"
	"github.com/kestrel-games/birdclash/internal/game/economy"
	"github.com/kestrel-games/birdclash/internal/game/effect"
	"github.com/kestrel-games/birdclash/internal/game/progression"
	"github.com/kestrel-games/birdclash/internal/game/reward"
	"github.com/kestrel-games/birdclash/internal/observability"
	"github.com/kestrel-games/birdclash/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	battles := flag.Int("battles", 0, "number of battles to simulate; 0 uses the configured value")
	birdsDir := flag.String("birds-dir", "", "directory of bird YAML files; empty uses the configured value")
	seed := flag.Int64("seed", 0, "matchup RNG seed; 0 uses the configured value")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *battles > 0 {
		cfg.Simulator.Battles = *battles
	}
	if *birdsDir != "" {
		cfg.Content.BirdsDir = *birdsDir
	}
	if *seed != 0 {
		cfg.Simulator.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	roster := catalog.Default()
	if cfg.Content.BirdsDir != "" {
		roster, err = catalog.LoadDirectory(cfg.Content.BirdsDir)
		if err != nil {
			logger.Fatal("loading bird roster", zap.Error(err))
		}
	}
	logger.Info("roster loaded", zap.Int("archetypes", roster.Len()))

	rngSeed := cfg.Simulator.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	curve := progression.Curve{
		BaseXP:   cfg.Progression.BaseXP,
		Growth:   cfg.Progression.Growth,
		MaxLevel: cfg.Progression.MaxLevel,
	}
	player, err := progression.NewStateWithCap(curve, progression.DefaultRewardTable(), cfg.Progression.MaxPrestige)
	if err != nil {
		logger.Fatal("creating progression state", zap.Error(err))
	}
	ledger, err := economy.NewLedger(0, 0)
	if err != nil {
		logger.Fatal("creating ledger", zap.Error(err))
	}

	tuning := combat.Tuning{
		DefenseK:       cfg.Combat.DefenseK,
		BlockReduction: cfg.Combat.BlockReduction,
	}
	hooks := scripting.NewHookRunner(scripting.DefaultInstructionLimit)
	policy := bot.New()

	all := roster.All()
	tick := time.Duration(cfg.Simulator.TickMs) * time.Millisecond
	maxBattle := time.Duration(cfg.Simulator.MaxBattleSeconds) * time.Second

	wins := 0
	for i := 0; i < cfg.Simulator.Battles; i++ {
		playerBird := all[rng.Intn(len(all))]
		opponentBird := all[rng.Intn(len(all))]

		outcome, err := runBattle(logger, tuning, hooks, policy, playerBird, opponentBird,
			tick, maxBattle, cfg.Simulator.ArcadeStage)
		if err != nil {
			logger.Fatal("running battle", zap.Error(err))
		}
		if outcome.Winner == battle.SidePlayer {
			wins++
		}

		earned := reward.Compute(*outcome, reward.Input{
			PrestigeLevel: player.PrestigeLevel(),
			XPPassive:     playerBird.PassiveMultiplier(effect.StreamXPGain),
			CoinPassive:   playerBird.PassiveMultiplier(effect.StreamCoinGain),
		})
		levelUps, err := player.AddXP(earned.XP)
		if err != nil {
			logger.Fatal("granting xp", zap.Error(err))
		}
		if err := ledger.Deposit(earned.Coins, earned.Feathers); err != nil {
			logger.Fatal("depositing reward", zap.Error(err))
		}
		for _, up := range levelUps {
			if err := ledger.Deposit(up.Coins, up.Feathers); err != nil {
				logger.Fatal("depositing level-up reward", zap.Error(err))
			}
			logger.Info("level up",
				zap.Int("level", up.Level),
				zap.Int("coins", up.Coins),
				zap.Int("feathers", up.Feathers),
				zap.String("unlock", up.Unlock),
			)
		}
		if player.AtMaxLevel() && player.PrestigeLevel() < cfg.Progression.MaxPrestige {
			pr, err := player.Prestige()
			if err != nil {
				logger.Fatal("prestiging", zap.Error(err))
			}
			logger.Info("prestige",
				zap.Int("prestige_level", pr.PrestigeLevel),
				zap.Float64("xp_multiplier", pr.XPMultiplier),
				zap.Float64("coin_multiplier", pr.CoinMultiplier),
			)
		}

		logger.Info("battle complete",
			zap.String("session_id", outcome.SessionID),
			zap.String("player", playerBird.ID),
			zap.String("opponent", opponentBird.ID),
			zap.String("winner", outcome.Winner.String()),
			zap.Duration("duration", outcome.Duration),
			zap.Bool("perfect", outcome.WasPerfect),
			zap.Bool("forfeited", outcome.Forfeited),
			zap.Int("coins", earned.Coins),
			zap.Int("xp", earned.XP),
		)
	}

	balance := ledger.Balance()
	logger.Info("simulation complete",
		zap.Int("battles", cfg.Simulator.Battles),
		zap.Int("wins", wins),
		zap.Int("level", player.Level()),
		zap.Int("prestige", player.PrestigeLevel()),
		zap.Int("total_xp", player.TotalXPEarned()),
		zap.Int("coins", balance.Coins),
		zap.Int("feathers", balance.Feathers),
		zap.Int64("seed", rngSeed),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// runBattle drives one battle to completion with both sides played by the
// bot policy. Battles that outlast maxBattle are forfeited by the player.
func runBattle(
	logger *zap.Logger,
	tuning combat.Tuning,
	hooks effect.HookRunner,
	policy *bot.Policy,
	playerBird, opponentBird *catalog.Archetype,
	tick, maxBattle time.Duration,
	arcadeStage int,
) (*battle.Outcome, error) {
	s := battle.NewSession(logger, tuning, hooks)
	if err := s.Start(playerBird, opponentBird, battle.StartOptions{ArcadeStage: arcadeStage}); err != nil {
		return nil, err
	}
	for s.State() == battle.StateInProgress {
		if s.Elapsed() >= maxBattle {
			return s.Forfeit(battle.SidePlayer)
		}
		_, err := s.Tick(tick,
			policy.ChooseAction(s.Combatant(battle.SidePlayer), s.Combatant(battle.SideOpponent)),
			policy.ChooseAction(s.Combatant(battle.SideOpponent), s.Combatant(battle.SidePlayer)),
		)
		if err != nil {
			return nil, err
		}
	}
	outcome, _ := s.Outcome()
	return outcome, nil
}
