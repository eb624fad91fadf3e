package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/form"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/presenter"
	"github.com/goliatone/go-formctl/pkg/surface"
	"github.com/goliatone/go-formctl/pkg/validation"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <record.json>",
	Short: "Validate a saved record against the form rules",
	Long: `Loads a JSON record (for example a draft exported with "show"), replays it
onto a headless surface and runs the full validation pass. Exits non-zero when
any required field is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(cfg)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var rec model.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}

		results, valid := checkRecord(def, rec, logger)
		if err := printResults(cmd.OutOrStdout(), results, checkJSON); err != nil {
			return err
		}
		if !valid {
			return errors.New("record is invalid")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print results as JSON")
}

// checkRecord replays rec onto a fresh surface and validates it.
func checkRecord(def form.Definition, rec model.Record, logger *zap.Logger) ([]validation.Result, bool) {
	mem := def.NewSurface()
	replay(mem, def, rec, logger)

	p := presenter.New(mem, def.Fields)
	v := validation.New(mem, p, def.Fields, validation.WithLogger(logger))
	valid := v.ValidateForm()
	return v.Results(), valid
}

func replay(mem *surface.Memory, def form.Definition, rec model.Record, logger *zap.Logger) {
	for _, d := range def.Fields {
		switch {
		case d.Kind.IsMulti():
			for _, value := range rec.List(d.Name) {
				if err := mem.Check(d.Name, value); err != nil {
					logger.Warn("unknown option in record", zap.Error(err))
				}
			}
		case d.Kind.IsChoice():
			value := rec.String(d.Name)
			if value == "" {
				continue
			}
			if err := mem.Select(d.Name, value); err != nil {
				logger.Warn("unknown option in record", zap.Error(err))
			}
		default:
			mem.SetValue(d.Name, rec.String(d.Name))
		}
	}
}

func printResults(w io.Writer, results []validation.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALID\tMESSAGE")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%t\t%s\n", res.Field, res.Valid, res.Message)
	}
	return tw.Flush()
}
