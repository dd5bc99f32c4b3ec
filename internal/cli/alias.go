package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"demoshell/internal/alias"
	cfg "demoshell/internal/config"
)

func init() {
	rootCmd.AddCommand(aliasCmd)
	aliasCmd.AddCommand(aliasLsCmd, aliasAddCmd, aliasRmCmd)
	// "alias add ll ls -la": everything after the name is the command
	aliasAddCmd.Flags().SetInterspersed(false)
}

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage command aliases",
	Long:  "Aliases replace a whole submitted line with another command line. Changes apply the next time the console starts.",
}

var aliasLsCmd = &cobra.Command{
	Use:   "ls [query]",
	Short: "List aliases, optionally fuzzy-filtered by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := cfg.Ensure(configPath)
		if err != nil {
			return err
		}
		t, err := alias.Load(path)
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return printAliases(cmd.OutOrStdout(), t, query)
	},
}

// printAliases writes name/target rows; a non-empty query keeps fuzzy
// matches of the name, best first.
func printAliases(w io.Writer, t alias.Table, query string) error {
	names := t.Names()
	if query != "" {
		matches := fuzzy.Find(query, names)
		names = make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Str)
		}
	}
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range names {
		target, _ := t.Lookup(n)
		fmt.Fprintf(tw, "%s\t%s\n", n, target)
	}
	return tw.Flush()
}

var aliasAddCmd = &cobra.Command{
	Use:   "add [name] [command...]",
	Short: "Add or replace an alias",
	Long:  "Adds an alias. With missing arguments an interactive form asks for them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := cfg.Ensure(configPath)
		if err != nil {
			return err
		}
		var name, target string
		if len(args) > 0 {
			name = args[0]
		}
		if len(args) > 1 {
			target = strings.Join(args[1:], " ")
		}
		if name == "" || target == "" {
			if err := aliasForm(&name, &target).Run(); err != nil {
				return err
			}
		}
		replaced, err := alias.Set(path, name, target)
		if err != nil {
			return err
		}
		verb := "added"
		if replaced {
			verb = "replaced"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s alias %s → %s\n", verb, cfg.NormalizeKey(name), strings.TrimSpace(target))
		return nil
	},
}

func aliasForm(name, target *string) *huh.Form {
	green := lipgloss.Color("#4d9375")
	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)

	notEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("required")
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Alias").
				Description("the exact line you will type").
				Value(name).
				Validate(notEmpty),
			huh.NewInput().
				Title("Command").
				Description("what runs instead").
				Value(target).
				Validate(notEmpty),
		),
	).WithTheme(theme).WithWidth(60)
}

var aliasRmCmd = &cobra.Command{
	Use:     "rm name...",
	Aliases: []string{"remove"},
	Short:   "Remove aliases",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := cfg.Ensure(configPath)
		if err != nil {
			return err
		}
		removed, missing, err := alias.Remove(path, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, n := range removed {
			fmt.Fprintf(out, "✓ removed %s\n", n)
		}
		for _, n := range missing {
			fmt.Fprintf(out, "• no alias named %s\n", n)
		}
		if len(removed) == 0 {
			return fmt.Errorf("nothing removed")
		}
		return nil
	},
}
