package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"repnowait/config"
	"repnowait/di"
	"repnowait/shared/logger"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	argLength    = 2
	timeout      = 2 * time.Minute
	closeTimeout = 10 * time.Second

	commandReconcile = "reconcile"
	commandVerify    = "verify"
)

var (
	errUnknownCommand = errors.New("invalid command, use 'reconcile' or 'verify'")
	errMissingZones   = errors.New("configured zones without a gym_map row")
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	command, err := parseCommand(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("Ledger command rejected")
	}

	job := di.InitializeLedger()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	err = run(ctx, job, command)

	cancel()

	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("Ledger command failed")
	}
}

// parseCommand defaults to reconcile when no command is given.
func parseCommand(args []string) (string, error) {
	if len(args) < argLength {
		return commandReconcile, nil
	}

	switch args[1] {
	case commandReconcile, commandVerify:
		return args[1], nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownCommand, args[1])
	}
}

func run(ctx context.Context, job *di.LedgerJob, command string) (err error) {
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()

		if closeErr := job.Resources.Close(closeCtx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to release resources: %w", closeErr))
		}
	}()

	switch command {
	case commandReconcile:
		changes, reconcileErr := job.Ledger.Reconcile(ctx)
		if reconcileErr != nil {
			return fmt.Errorf("reconcile failed: %w", reconcileErr)
		}

		log.Info().Int("corrections", len(changes)).Msg("Reconcile finished")
	case commandVerify:
		missing, verifyErr := job.Ledger.VerifyZones(ctx)
		if verifyErr != nil {
			return fmt.Errorf("zone verification failed: %w", verifyErr)
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", errMissingZones, strings.Join(missing, ", "))
		}

		log.Info().Msg("Every configured zone has a gym_map row")
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}

	return nil
}
