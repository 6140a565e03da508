// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirseerhq/bitbucket-relay/internal/auth"
	"github.com/sirseerhq/bitbucket-relay/internal/bitbucket"
	"github.com/sirseerhq/bitbucket-relay/internal/config"
	"github.com/sirseerhq/bitbucket-relay/internal/output"
	"github.com/spf13/cobra"
)

// exportFlags collects the export command's flag values.
type exportFlags struct {
	state         string
	createdAfter  string
	createdBefore string
	destBranch    string
	outputFile    string
	email         string
	apiToken      string
	configFile    string
}

func newExportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <workspace>/<repo>",
		Short: "Export pull requests from a Bitbucket Cloud repository to CSV",
		Long: `Export pull requests from a Bitbucket Cloud repository to CSV.

The repository must be specified in the format: <workspace>/<repo>
For example: myteam/my-repo

Authentication uses Bitbucket Cloud API tokens (email + token):
  - Use --email and --api-token flags to provide credentials directly
  - Or set BITBUCKET_EMAIL and BITBUCKET_API_TOKEN environment variables

CSV is written to stdout unless --output is given. The summary line goes
to stderr, so stdout stays safe to pipe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.state, "state", "", "Filter by state: OPEN, MERGED, DECLINED or SUPERSEDED (default: all states)")
	cmd.Flags().StringVar(&flags.createdAfter, "created-after", "", "Include only PRs created on or after this date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&flags.createdBefore, "created-before", "", "Include only PRs created on or before this date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&flags.destBranch, "dest-branch", "", "Include only PRs targeting this destination branch")
	cmd.Flags().StringVarP(&flags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.email, "email", "", "Atlassian account email (overrides BITBUCKET_EMAIL env var)")
	cmd.Flags().StringVar(&flags.apiToken, "api-token", "", "Bitbucket API token (overrides BITBUCKET_API_TOKEN env var)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Config file path")

	return cmd
}

// runExport executes the export command: resolve credentials, fetch all
// matching pull requests, write CSV, print the summary to stderr.
func runExport(ctx context.Context, repoArg string, flags exportFlags) error {
	workspace, repoSlug, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	filter, err := buildFilter(flags)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return err
	}

	// Credentials are resolved before any network call so a missing token
	// fails fast with remediation instructions.
	creds, err := auth.Resolve(flags.email, flags.apiToken)
	if err != nil {
		return err
	}

	client := bitbucket.NewRESTClient(creds, cfg.Bitbucket.APIEndpoint)

	prs, err := bitbucket.FetchAll(ctx, client, workspace, repoSlug, filter, cfg.Defaults.PageLen)
	if err != nil {
		return err
	}

	var writer output.RowWriter
	if flags.outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, fErr := output.NewFileWriter(flags.outputFile)
		if fErr != nil {
			return fErr
		}
		writer = fileWriter
	}

	for _, pr := range prs {
		if wErr := writer.Write(output.NewRow(pr)); wErr != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write CSV: %w", wErr)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize CSV: %w", err)
	}

	summary := fmt.Sprintf("Exported %d pull request(s)", len(prs))
	if desc := filter.Describe(); desc != "" {
		summary += fmt.Sprintf(" (%s)", desc)
	}
	fmt.Fprintln(os.Stderr, summary+".")

	return nil
}

// parseRepository parses a workspace/repo string into its components.
func parseRepository(repoArg string) (workspace, repoSlug string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <workspace>/<repo>, got: %s", repoArg)
	}

	workspace = strings.TrimSpace(parts[0])
	repoSlug = strings.TrimSpace(parts[1])

	if workspace == "" || repoSlug == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <workspace>/<repo>, got: %s", repoArg)
	}

	return workspace, repoSlug, nil
}

// buildFilter validates the filter flags and assembles the fetch filter.
func buildFilter(flags exportFlags) (bitbucket.Filter, error) {
	var filter bitbucket.Filter

	if flags.state != "" {
		state, err := bitbucket.ParseState(flags.state)
		if err != nil {
			return bitbucket.Filter{}, err
		}
		filter.State = state
	}

	if flags.createdAfter != "" {
		date, err := parseDate(flags.createdAfter)
		if err != nil {
			return bitbucket.Filter{}, fmt.Errorf("invalid date for --created-after: %w", err)
		}
		filter.CreatedAfter = date
	}

	if flags.createdBefore != "" {
		date, err := parseDate(flags.createdBefore)
		if err != nil {
			return bitbucket.Filter{}, fmt.Errorf("invalid date for --created-before: %w", err)
		}
		filter.CreatedBefore = date
	}

	filter.DestinationBranch = flags.destBranch

	return filter, nil
}

// parseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid date. Expected format: YYYY-MM-DD", s)
	}
	return date, nil
}
