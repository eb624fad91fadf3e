package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/terminal"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill and submit the form interactively",
	Long: `Prompts for every field, validating as you go, then submits.

Fields that fail validation on submit are asked again. Interrupting the
session (Ctrl+C) saves the current answers as a draft.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runFill,
}

func runFill(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	session := terminal.NewSession(a.def,
		terminal.WithPromptDriver(terminal.NewSurveyDriver(cmd.OutOrStdout())),
	)
	ctrl, err := a.newController(session.Surface(), session)
	if err != nil {
		return err
	}
	ctrl.Init(ctx)

	outcome, err := session.Run(ctx, ctrl)
	switch {
	case errors.Is(err, terminal.ErrAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(cmd.OutOrStdout(), "Sesión interrumpida; respuestas guardadas como borrador.")
		return nil
	case err != nil:
		return err
	}

	logger.Info("session finished", zap.Stringer("outcome", outcome))
	if outcome == controller.OutcomeFailed {
		return errors.New("submission failed; answers kept as a draft")
	}
	return nil
}
