package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/assessment"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/validation"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

var assessFlags struct {
	version string
	output  string
}

var assessCmd = &cobra.Command{
	Use:   "assess FILE",
	Short: "Run one assessment from a YAML or JSON file",
	Long: `Run the GRC, ARC and SAIL chain for the operation described in FILE and
print the result. FILE holds the same fields as the /api/v1/assessment payload,
in YAML or JSON. Use "-" to read from standard input.

Example operation.yaml:

  version: "2.5"
  grc:
    max_dimension_m: 1.5
    max_speed_ms: 30
    population_density: 200
  arc:
    altitude_agl_ft: 300
    airspace_class: G
    environment: urban`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, closeIn, err := openInput(cmd, args[0])
		if err != nil {
			return err
		}
		defer closeIn()
		return runAssess(cmd.Context(), in, cmd.OutOrStdout(), assessFlags.version, assessFlags.output)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVar(&assessFlags.version, "sora-version", "", "SORA version applied when the file names none")
	assessCmd.Flags().StringVarP(&assessFlags.output, "output", "o", "json", "output format (json, yaml)")
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// runAssess decodes one operation, assesses it and writes the result
func runAssess(ctx context.Context, in io.Reader, out io.Writer, defaultVersion, format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	var fields validation.AssessmentFields
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("assessment file is empty")
		}
		return fmt.Errorf("decode assessment: %w", err)
	}
	if fields.Version == "" {
		fields.Version = defaultVersion
	}

	grcReq, arcReq, err := validation.BuildAssessment(fields)
	if err != nil {
		return describe(err)
	}

	svc := assessment.NewService(logger.NewNop())
	res, err := svc.Assess(ctx, grcReq, arcReq)
	if err != nil {
		return describe(err)
	}

	return writeResult(out, res, format)
}

// describe spells out every field of a validation failure
func describe(err error) error {
	fields := sora.FieldErrors(err)
	if len(fields) < 2 {
		return err
	}
	msg := fmt.Sprintf("%d invalid fields:", len(fields))
	for _, fe := range fields {
		msg += "\n  " + fe.Error()
	}
	return errors.New(msg)
}

func writeResult(out io.Writer, res assessment.Assessment, format string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	// Round trip through a generic value so YAML keys match the JSON names
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
