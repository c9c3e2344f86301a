package main

import (
	"fmt"

	"github.com/jonathan/profile-site/internal/observability"
	"github.com/spf13/cobra"
)

var (
	createTitle  string
	profileIDArg string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an inactive profile with the default sections",
	RunE:  runCreate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles, most recently modified first",
	RunE:  runList,
}

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Publish a profile on the public page",
	RunE:  runActivate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a profile and everything under it",
	RunE:  runDelete,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a profile tree and the tech stack names missing from its skills",
	RunE:  runShow,
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Profile title (defaults to \"New Profile\")")

	for _, cmd := range []*cobra.Command{activateCmd, deleteCmd, showCmd} {
		cmd.Flags().StringVar(&profileIDArg, "id", "", "Profile id (required)")
		if err := cmd.MarkFlagRequired("id"); err != nil {
			panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
		}
	}

	rootCmd.AddCommand(createCmd, listCmd, activateCmd, deleteCmd, showCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.svc.CreateProfile(cmd.Context(), createTitle)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s)\n", p.ID, p.Title)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.svc.ListProfiles(cmd.Context())
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintProfileList(list)
	return nil
}

func runActivate(cmd *cobra.Command, _ []string) error {
	id, err := parseID(profileIDArg)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.svc.ActivateProfile(cmd.Context(), id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Activated profile %s\n", id)
	return nil
}

func runDelete(cmd *cobra.Command, _ []string) error {
	id, err := parseID(profileIDArg)
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.svc.DeleteProfile(cmd.Context(), id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", id)
	return nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	id, err := parseID(profileIDArg)
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
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintProfile(&view.Profile)
	printer.PrintDetectedSkills(view.DetectedSkills)
	return nil
}
