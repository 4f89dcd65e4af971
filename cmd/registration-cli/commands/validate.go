package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"registration/internal/core/domain/form"
)

var ErrFormInvalid = errors.New("form has errors")

var fieldFlags = map[form.Field]string{
	form.Name:            "name",
	form.Email:           "email",
	form.Phone:           "phone",
	form.Password:        "password",
	form.ConfirmPassword: "confirm-password",
}

func validateCmd(rules func() *form.RuleSet) *cobra.Command {
	var (
		values = make(map[form.Field]*string, len(fieldFlags))
		trace  bool
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Fill the form from flags and print every failing field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output %q, want text or json", output)
			}

			out := cmd.OutOrStdout()
			model := form.New(rules())

			if trace {
				subscribeTrace(out, model)
			}

			for _, f := range form.Fields() {
				if cmd.Flags().Changed(fieldFlags[f]) {
					model.Set(f, *values[f])
				}
			}
			if all {
				model.ValidateAll()
			}

			if output == "json" {
				if err := json.NewEncoder(out).Encode(model.Snapshot()); err != nil {
					return err
				}
			} else {
				printErrors(out, model)
			}

			if model.HasErrors() {
				return ErrFormInvalid
			}
			return nil
		},
	}

	for _, f := range form.Fields() {
		values[f] = cmd.Flags().String(fieldFlags[f], "", fmt.Sprintf("value of the %s field", f))
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print every notification as it is emitted")
	cmd.Flags().BoolVar(&all, "all", true, "validate every field, not only the ones given")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func subscribeTrace(out io.Writer, model *form.Model) {
	model.OnValueChanged(func(f form.Field) {
		fmt.Fprintf(out, "%-18s %-15s %q\n", form.ValueChanged, f, model.Value(f))
	})
	model.OnErrorsChanged(func(f form.Field) {
		fmt.Fprintf(out, "%-18s %-15s %d\n", form.ErrorsChanged, f, len(model.Errors(f)))
	})
	model.OnErrorTextChanged(func(f form.Field) {
		fmt.Fprintf(out, "%-18s %-15s %q\n", form.ErrorTextChanged, f, model.ErrorText(f))
	})
}

func printErrors(out io.Writer, model *form.Model) {
	if !model.HasErrors() {
		fmt.Fprintln(out, "form is valid")
		return
	}
	for _, f := range form.Fields() {
		for _, msg := range model.Errors(f) {
			fmt.Fprintf(out, "%s: %s\n", f, msg)
		}
	}
}
