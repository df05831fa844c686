package app

import (
	"io"

	"github.com/michelleon/overwatch-stats/external/ovrstat"
	"github.com/michelleon/overwatch-stats/internal/config"
	"github.com/michelleon/overwatch-stats/internal/domain/hero"
	"github.com/michelleon/overwatch-stats/internal/domain/player"
	"github.com/michelleon/overwatch-stats/internal/interfaces/cli"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
	"github.com/spf13/cobra"
)

// NewCLI wires the ovrstat client and static reference data into the command
// tree.
func NewCLI(cfg config.Config, logger *logging.Logger, out io.Writer) *cobra.Command {
	client := ovrstat.NewClient(ovrstat.ClientConfig{
		BaseURL: cfg.OvrstatBaseURL,
		Timeout: cfg.OvrstatTimeout,
		Logger:  logger,
	})

	return cli.NewRootCommand(cli.Options{
		Provider: client,
		Config:   cfg,
		Logger:   logger,
		Out:      out,
		Roster:   player.DefaultRoster(),
		Heroes:   hero.Default(),
	})
}
