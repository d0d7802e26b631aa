package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listRolesCmd = &cobra.Command{
	Use:   "list-roles",
	Short: "List all roles in the catalog",
	RunE:  runListRoles,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions for one role",
	RunE:  runList,
}

var listRole string

func init() {
	listCmd.Flags().StringVarP(&listRole, "role", "r", "", "Role to list (required)")
	if err := listCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(listRolesCmd)
	rootCmd.AddCommand(listCmd)
}

func runListRoles(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	roles := make([]string, 0, len(catalog))
	for role := range catalog {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d questions)\n", role, len(catalog[role]))
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	qs, ok := catalog[listRole]
	if !ok {
		return fmt.Errorf("role not found: %q", listRole)
	}
	for i, q := range qs {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%s", i, q.Type)
		if q.Difficulty != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "/%s", q.Difficulty)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "] %s\n", q.Text)
	}
	return nil
}
