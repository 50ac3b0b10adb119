package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	var policyFile string

	// root command
	rootCmd := &cobra.Command{
		Use:           "attendance-report",
		Short:         "Summarize attendance exports against a shift policy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Init(policyFile, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", "", "YAML shift policy file (overrides POLICY_FILE)")

	// per-employee summary and daily detail tables
	var employee string
	employeesCmd := &cobra.Command{
		Use:   "employees [file]",
		Short: "Per-employee summary and daily detail tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.EmployeeReports(cmd.Context(), cmd.OutOrStdout(), args[0], employee)
		},
	}
	employeesCmd.Flags().StringVar(&employee, "employee", "", "only report this employee")

	// one table across all employees
	consolidatedCmd := &cobra.Command{
		Use:   "consolidated [file]",
		Short: "One summary row per employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ConsolidatedReport(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	recordsCmd := &cobra.Command{
		Use:   "records [file]",
		Short: "Daily classification for every present day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Records(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the active shift policy",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.Policy(cmd.OutOrStdout())
		},
	}

	// add commands
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(consolidatedCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(policyCmd)

	return rootCmd
}
