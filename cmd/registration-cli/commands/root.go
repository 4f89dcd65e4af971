package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"registration/internal/adapters/validator"
	"registration/internal/config"
	"registration/internal/core/domain/form"
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and prints its error. ErrFormInvalid is not printed since
// the failing fields were already written to the output.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !errors.Is(err, ErrFormInvalid) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	var rules *form.RuleSet

	root := &cobra.Command{
		Use:           "registration-cli",
		Short:         "Validate user-registration forms from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadForm()
			if err != nil {
				return err
			}
			rules = form.RegistrationRules(
				form.WithEmailChecker(validator.EmailChecker(validator.NewPlaygroundAdapter())),
				form.WithPasswordMinLength(cfg.Form.PasswordMinLength),
				form.WithPhonePattern(cfg.Form.PhonePattern.Regexp),
				form.WithPhoneMessage(cfg.Form.PhoneMessage),
			)
			return nil
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	rulesFn := func() *form.RuleSet { return rules }
	root.AddCommand(validateCmd(rulesFn), rulesCmd(rulesFn))
	return root
}
