package commands

import (
	"github.com/cloud-ru/compound-calc-go/internal/api"
	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func debtCmd(opts *options) *cobra.Command {
	var dto api.DebtPayoffRequest
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Months and interest to pay off a debt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, errs := opts.mapper.ToDebtPayoffRequest(dto)
			if !errs.Empty() {
				return invalid(cmd, errs)
			}
			result, err := calculations.DebtPayoff(req)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, func() string { return cli.RenderDebtPayoff(result) })
		},
	}
	cmd.Flags().Var(newDecimalValue(&dto.TotalDebt, decimal.Zero), "debt", "Total debt in dollars")
	cmd.Flags().Var(newDecimalValue(&dto.MonthlyPayment, decimal.Zero), "payment", "Fixed monthly payment in dollars")
	cmd.Flags().Var(newDecimalValue(&dto.MonthlyRatePercent, decimal.Zero), "rate", "Monthly interest rate, percent")
	_ = cmd.MarkFlagRequired("debt")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}
