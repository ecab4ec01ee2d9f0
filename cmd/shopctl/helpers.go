// Shared helpers for shopctl commands: client construction, payload parsing,
// and table/JSON output.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopfront-io/shopfront/internal/snapshot"
	"github.com/shopfront-io/shopfront/pkg/cache"
	"github.com/shopfront-io/shopfront/pkg/client"
	"github.com/shopfront-io/shopfront/pkg/types"
)

// validEntitiesStr is a comma-separated list of entity names for error output.
var validEntitiesStr = strings.Join(types.StandardEntities, ", ")

// cmdContext returns the context for one command invocation. The per-request
// timeout lives in the client config.
func cmdContext() context.Context {
	return context.Background()
}

// requireEntity validates the entity argument common to the generic commands.
func requireEntity(name string) error {
	if !types.ValidEntity(name) {
		return fmt.Errorf("unknown entity %q (valid: %s)", name, validEntitiesStr)
	}
	return nil
}

// newAPIClient loads the config and builds the API client. Errors out with a
// hint when the base URL was never configured.
func newAPIClient() (*client.Client, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, types.Config{}, err
	}
	c, err := client.New(cfg, logger)
	if err != nil {
		if errors.Is(err, types.ErrBaseURLEmpty) {
			return nil, cfg, fmt.Errorf("no API base URL configured; run: shopctl config set base_url <url>")
		}
		return nil, cfg, err
	}
	return c, cfg, nil
}

// newRecordCache builds a Record cache for the entity, with the API client.
func newRecordCache(entity string) (*cache.Cache[types.Record], types.Config, error) {
	if err := requireEntity(entity); err != nil {
		return nil, types.Config{}, err
	}
	c, cfg, err := newAPIClient()
	if err != nil {
		return nil, cfg, err
	}
	cc, err := cache.NewRecordCache(c, entity, logger)
	if err != nil {
		return nil, cfg, err
	}
	return cc, cfg, nil
}

// openSnapshots opens the snapshot store in the resolved data directory.
// The caller must Close it.
func openSnapshots(cfg types.Config) (*snapshot.Store, error) {
	snaps, err := snapshot.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open snapshots: %w", err)
	}
	return snaps, nil
}

// parsePayload reads a JSON object from the --data value: a literal JSON
// string, @file, or "-" for stdin.
func parsePayload(data string) (types.Record, error) {
	var raw []byte
	switch {
	case data == "":
		return nil, fmt.Errorf("--data is required (JSON object, @file, or - for stdin)")
	case data == "-":
		in, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = in
	case strings.HasPrefix(data, "@"):
		in, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		raw = in
	default:
		raw = []byte(data)
	}

	var payload types.Record
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return payload, nil
}

// confirm asks the user to confirm a destructive action. --yes skips the
// prompt. Mutations are only ever dispatched on an explicit confirmation.
func confirm(prompt string) bool {
	if flags.yes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printRecords writes records as a table or JSON depending on --json.
func printRecords(cmd *cobra.Command, records []types.Record) error {
	if flags.jsonMode {
		return printJSON(cmd, records)
	}
	if len(records) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	cols := recordColumns(records)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(cols, "\t")))
	for _, rec := range records {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = fieldString(rec[col])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	cmd.Printf("Total: %d record(s)\n", len(records))
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

// recordColumns picks table columns: id first, then the remaining keys of the
// first record sorted, capped to keep rows readable.
func recordColumns(records []types.Record) []string {
	const maxCols = 6
	cols := []string{"id"}
	var rest []string
	for k := range records[0] {
		if k != "id" {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		if len(cols) == maxCols {
			break
		}
		cols = append(cols, k)
	}
	return cols
}

// fieldString formats one field value for table output.
func fieldString(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		if len(v) > 32 {
			return v[:29] + "..."
		}
		return v
	case float64:
		// JSON numbers decode as float64; print integers without a fraction.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		s := fmt.Sprintf("%v", v)
		if len(s) > 32 {
			s = s[:29] + "..."
		}
		return s
	}
}
