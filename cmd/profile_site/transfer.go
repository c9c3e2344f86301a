package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/profile-site/internal/observability"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/schemas"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	transferID string
	exportFile string
	importFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a profile tree to a YAML or JSON file",
	Long:  "Writes the full editor tree of a profile, hidden nodes included. The file can be edited and applied again with import.",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Apply a YAML or JSON submission to a profile",
	Long: "Reconciles the file against the stored profile exactly like an editor save: " +
		"nodes with a known id are updated, nodes without one are created and stored nodes missing from the file are deleted.",
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVar(&transferID, "id", "", "Profile id (required)")
	exportCmd.Flags().StringVarP(&exportFile, "out", "o", "", "Output file, .yaml/.yml or .json (required)")
	importCmd.Flags().StringVar(&transferID, "id", "", "Profile id (required)")
	importCmd.Flags().StringVarP(&importFile, "in", "i", "", "Input file, .yaml/.yml or .json (required)")

	for cmd, flags := range map[*cobra.Command][]string{exportCmd: {"id", "out"}, importCmd: {"id", "in"}} {
		for _, name := range flags {
			if err := cmd.MarkFlagRequired(name); err != nil {
				panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
			}
		}
	}

	rootCmd.AddCommand(exportCmd, importCmd)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func runExport(cmd *cobra.Command, _ []string) error {
	id, err := parseID(transferID)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.svc.EditorView(cmd.Context(), id)
	if err != nil {
		return err
	}

	var data []byte
	if isYAML(exportFile) {
		data, err = yaml.Marshal(&view.Profile)
	} else {
		data, err = json.MarshalIndent(&view.Profile, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(exportFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d nodes to %s\n", profile.Count(view.Profile), exportFile)
	return nil
}

// submissionJSON reads a submission file and returns it as JSON. YAML is
// converted so that the same schema check and decoding defaults apply.
func submissionJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if !isYAML(path) {
		return data, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

func runImport(cmd *cobra.Command, _ []string) error {
	id, err := parseID(transferID)
	if err != nil {
		return err
	}
	data, err := submissionJSON(importFile)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.cfg.SkipSchemaValidation {
		if err := schemas.ValidateSubmission(data); err != nil {
			return err
		}
	}
	var incoming profile.Profile
	if err := json.Unmarshal(data, &incoming); err != nil {
		return fmt.Errorf("failed to decode submission: %w", err)
	}

	resp, err := a.svc.SaveProfile(cmd.Context(), id, incoming)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintChanges(resp.Changes)
	return nil
}
