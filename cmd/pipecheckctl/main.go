package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pipecheck/pipecheck/pkg/graph"
	"github.com/pipecheck/pipecheck/pkg/types"
	"github.com/pipecheck/pipecheck/pkg/version"
)

const defaultServerEndpoint = "http://127.0.0.1:8000"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pipecheckctl",
		Short: "Client for the pipecheck validation service",
	}

	rootCmd.PersistentFlags().String("server", defaultServerEndpoint, "pipecheckd base URL")

	rootCmd.AddCommand(
		checkCmd(),
		parseCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// checkCmd analyzes a pipeline file locally, without a server.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pipeline.json>",
		Short: "Analyze a pipeline file locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPipeline(args[0])
			if err != nil {
				return err
			}
			stats, err := graph.Analyze(cmd.Context(), p.Nodes, p.Edges)
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

// parseCmd submits a pipeline file to a running pipecheckd and prints the
// response envelope.
func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <pipeline.json>",
		Short: "Submit a pipeline file to a pipecheckd server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPipeline(args[0])
			if err != nil {
				return err
			}
			server, _ := cmd.Flags().GetString("server")
			return submit(cmd.Context(), server, p)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func readPipeline(path string) (*types.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline file: %w", err)
	}
	var p types.Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pipeline file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func submit(ctx context.Context, server string, p *types.Pipeline) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server+"/pipelines/parse", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return printJSON(env)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
