package commands

import (
	"github.com/cloud-ru/compound-calc-go/internal/api"
	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/cli"
	"github.com/cloud-ru/compound-calc-go/internal/validators"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func mortgageCmd(opts *options) *cobra.Command {
	var (
		dto             api.MortgageEstimateRequest
		downPaymentType string
		tax, pmi        decimal.Decimal
	)
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Monthly mortgage payment with optional property tax and PMI",
		Long:  "Percent down payment and tax apply to the home price, percent PMI applies to the loan amount.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dto.DownPaymentType = &downPaymentType
			if cmd.Flags().Changed("tax") {
				dto.PropertyTaxValue = decimal.NewNullDecimal(tax)
			} else {
				dto.PropertyTaxType = ""
			}
			if cmd.Flags().Changed("pmi") {
				dto.PmiValue = decimal.NewNullDecimal(pmi)
			} else {
				dto.PmiType = ""
			}

			req, errs := opts.mapper.ToMortgageRequest(dto)
			if !errs.Empty() {
				return invalid(cmd, errs)
			}
			result, err := calculations.MortgageEstimate(req)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, func() string { return cli.RenderMortgage(result) })
		},
	}
	cmd.Flags().Var(newDecimalValue(&dto.HomePrice, decimal.Zero), "price", "Home price in dollars")
	cmd.Flags().Var(newDecimalValue(&dto.DownPaymentValue, decimal.Zero), "down", "Down payment, dollars or percent of the price")
	cmd.Flags().StringVar(&downPaymentType, "down-type", validators.ValueTypeAmount, "Down payment type: Amount or Percent")
	cmd.Flags().Var(newDecimalValue(&dto.AnnualRatePercent, decimal.Zero), "rate", "Annual interest rate, percent")
	cmd.Flags().IntVarP(&dto.TermYears, "years", "y", 30, "Loan term in years")
	cmd.Flags().Var(newDecimalValue(&tax, decimal.Zero), "tax", "Annual property tax, dollars or percent of the price")
	cmd.Flags().StringVar(&dto.PropertyTaxType, "tax-type", validators.ValueTypeAmount, "Property tax type: Amount or Percent")
	cmd.Flags().Var(newDecimalValue(&pmi, decimal.Zero), "pmi", "Annual PMI, dollars or percent of the loan")
	cmd.Flags().StringVar(&dto.PmiType, "pmi-type", validators.ValueTypeAmount, "PMI type: Amount or Percent")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
