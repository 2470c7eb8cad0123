package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloud-ru/compound-calc-go/internal/api"
	"github.com/cloud-ru/compound-calc-go/internal/cli"
	"github.com/cloud-ru/compound-calc-go/internal/config"
	"github.com/cloud-ru/compound-calc-go/internal/validators"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// errInvalidInput ошибки ввода уже выведены пользователю
var errInvalidInput = errors.New("invalid input")

type options struct {
	json   bool
	mapper *api.Mapper
}

// NewRootCmd собирает дерево команд калькулятора
func NewRootCmd() *cobra.Command {
	opts := &options{mapper: api.NewMapper(config.Default())}

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Compound interest, debt payoff and mortgage calculator",
		Long:          "Run the calculator engine locally: compound growth, savings, debt payoff and mortgage estimates.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the raw result as JSON")

	root.AddCommand(
		compoundCmd(opts),
		contributionCmd(opts),
		savingsCmd(opts),
		debtCmd(opts),
		mortgageCmd(opts),
	)
	return root
}

// Execute запускает CLI и печатает ошибку расчета
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errInvalidInput) {
		fmt.Fprint(root.ErrOrStderr(), cli.RenderError(err))
	}
	return err
}

func (o *options) print(cmd *cobra.Command, result any, render func() string) error {
	if o.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprint(cmd.OutOrStdout(), render())
	return nil
}

func invalid(cmd *cobra.Command, errs validators.Errors) error {
	fmt.Fprint(cmd.ErrOrStderr(), cli.RenderErrors(errs))
	return errInvalidInput
}

// decimalValue флаг с десятичным значением
type decimalValue struct {
	value *decimal.Decimal
}

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{value: p}
}

func (v *decimalValue) String() string {
	if v.value == nil {
		return "0"
	}
	return v.value.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a decimal number: %q", s)
	}
	*v.value = d
	return nil
}

func (v *decimalValue) Type() string {
	return "decimal"
}
