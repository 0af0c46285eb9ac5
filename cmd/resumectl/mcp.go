package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-engine/internal/mcptools"
	"resume-engine/internal/shared/telemetry"
)

//nolint:gochecknoglobals // Cobra boilerplate
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve analyze_resume and match_resume as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) (err error) {
	var srv *mcptools.Server
	srv, err = mcptools.NewServer(analysisService(), matchService())
	if err != nil {
		return err
	}

	telemetry.Info("mcp.start", map[string]any{"version": mcptools.Version})
	err = srv.Run(cmd.Context())
	if err != nil {
		err = errors.Wrap(err, "mcp server stopped")
		return err
	}
	return err
}
