package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/fourword/internal/httpapi"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr            string
	ShutdownTimeout time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the word list and answer guesses over HTTP",
		Long: `Recreate the word tables, load the word list, then serve lookups over HTTP.

Endpoints:
  GET /healthz
  GET /v1/words/{word}   -> {"word":"plan","valid":true}

Example:
  fourword serve --addr :8080`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "grace period for in-flight requests")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	env, err := newEnvironment(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, res, err := env.prepareStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	addr := env.cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(st, env.logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env.logger.Info("server starting", "addr", addr, "words", res.Loaded)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return env.formatter.Fail(ExitFailure, ErrCodeGeneric, "server failed", err)
	}

	env.logger.Info("server stopped")
	return nil
}
