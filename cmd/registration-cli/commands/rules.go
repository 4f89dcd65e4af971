package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"registration/internal/core/domain/form"
)

func rulesCmd(rules func() *form.RuleSet) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rule chain of every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rs := rules()

			for _, f := range form.Fields() {
				chain := rs.Chain(f)

				var parts []string
				if chain.Required() {
					parts = append(parts, fmt.Sprintf("required %q", chain.Evaluate("", form.Values{})[0]))
				}
				if n := chain.Len(); n > 0 {
					parts = append(parts, fmt.Sprintf("%d more %s", n, plural(n, "rule", "rules")))
				}
				if deps := rs.Dependents(f); len(deps) > 0 {
					names := make([]string, len(deps))
					for i, d := range deps {
						names[i] = d.String()
					}
					parts = append(parts, "revalidates "+strings.Join(names, ", "))
				}

				fmt.Fprintf(out, "%-15s %s\n", f, strings.Join(parts, "; "))
			}
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
