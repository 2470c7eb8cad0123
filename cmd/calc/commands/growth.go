package commands

import (
	"github.com/cloud-ru/compound-calc-go/internal/api"
	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type growthFlags struct {
	principal decimal.Decimal
	rate      decimal.Decimal
	years     int
	cadence   string
}

func (f *growthFlags) bind(cmd *cobra.Command, defaultCadence string) {
	cmd.Flags().Var(newDecimalValue(&f.principal, decimal.Zero), "principal", "Starting principal in dollars")
	cmd.Flags().Var(newDecimalValue(&f.rate, decimal.Zero), "rate", "Annual interest rate, percent")
	cmd.Flags().IntVarP(&f.years, "years", "y", 10, "Duration in whole years")
	cmd.Flags().StringVarP(&f.cadence, "cadence", "c", defaultCadence, "Compounding cadence: Annual, SemiAnnual, Quarterly, Monthly")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
}

func (f *growthFlags) request() api.GrowthRequest {
	cadence := f.cadence
	return api.GrowthRequest{
		Principal:          f.principal,
		AnnualRatePercent:  f.rate,
		CompoundingCadence: &cadence,
		DurationYears:      f.years,
	}
}

func compoundCmd(opts *options) *cobra.Command {
	var flags growthFlags
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Compound interest on a lump sum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, errs := opts.mapper.ToGrowthRequest(flags.request(), calculations.DefaultGrowthCadence)
			if !errs.Empty() {
				return invalid(cmd, errs)
			}
			result, err := calculations.CompoundInterest(req)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, func() string { return cli.RenderGrowth("COMPOUND INTEREST", result) })
		},
	}
	flags.bind(cmd, calculations.DefaultGrowthCadence)
	return cmd
}

func contributionCmd(opts *options) *cobra.Command {
	var (
		flags   growthFlags
		monthly decimal.Decimal
	)
	cmd := &cobra.Command{
		Use:   "contribution",
		Short: "Growth with a fixed monthly contribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dto := api.ContributionGrowthRequest{GrowthRequest: flags.request(), MonthlyContribution: monthly}
			req, errs := opts.mapper.ToContributionRequest(dto, calculations.DefaultGrowthCadence)
			if !errs.Empty() {
				return invalid(cmd, errs)
			}
			result, err := calculations.ContributionGrowth(req)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, func() string { return cli.RenderGrowth("CONTRIBUTION GROWTH", result) })
		},
	}
	flags.bind(cmd, calculations.DefaultGrowthCadence)
	cmd.Flags().Var(newDecimalValue(&monthly, decimal.Zero), "monthly", "Monthly contribution in dollars")
	return cmd
}

func savingsCmd(opts *options) *cobra.Command {
	var flags growthFlags
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Savings growth, compounded monthly by default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, errs := opts.mapper.ToSavingsRequest(flags.request(), calculations.DefaultSavingsCadence)
			if !errs.Empty() {
				return invalid(cmd, errs)
			}
			result, err := calculations.SavingsGrowth(req)
			if err != nil {
				return err
			}
			return opts.print(cmd, result, func() string { return cli.RenderGrowth("SAVINGS GROWTH", result) })
		},
	}
	flags.bind(cmd, calculations.DefaultSavingsCadence)
	return cmd
}
