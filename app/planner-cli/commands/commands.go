package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/companydays"
	"github.com/OpenTransitTools/ptoplanner/business/data/holidays"
	"github.com/OpenTransitTools/ptoplanner/business/data/preferences"
	"github.com/OpenTransitTools/ptoplanner/business/holidayquery"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/spf13/cobra"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

func newDaysCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "days [count]",
		Short: "Show or set the number of PTO days to plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			session := env.session()
			if len(args) == 0 {
				days := session.State().Days
				if days == "" {
					days = "not set"
				}
				_, err := fmt.Fprintf(out, "Days for %d: %s\n", env.selectedYear(), days)
				return err
			}
			state := session.Dispatch(optimizer.SetDays{Days: args[0]})
			if state.Errors.Days != "" {
				return errors.New(state.Errors.Days)
			}
			_, err := fmt.Fprintf(out, "Saved %s days for %d\n", state.Days, state.SelectedYear)
			return err
		},
	}
}

func newStrategyCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "strategy [name]",
		Short: "Show or set how PTO days are spread across the year",
		Long:  fmt.Sprintf("Show or set the optimization strategy, one of %s.", strategyNames()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			session := env.session()
			if len(args) == 0 {
				_, err := fmt.Fprintf(out, "Strategy for %d: %s\n", env.selectedYear(), session.State().Strategy)
				return err
			}
			strategy, ok := preferences.ParseStrategy(args[0])
			if !ok {
				return fmt.Errorf("unknown strategy %q, expected one of %s", args[0], strategyNames())
			}
			state := session.Dispatch(optimizer.SetStrategy{Strategy: strategy})
			_, err := fmt.Fprintf(out, "Saved strategy %s for %d\n", state.Strategy, state.SelectedYear)
			return err
		},
	}
}

func newSaturdayCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "saturday [true|false]",
		Short: "Show or set whether Saturday is a working day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			session := env.session()
			if len(args) == 0 {
				_, err := fmt.Fprintf(out, "Saturday working day in %d: %t\n", env.selectedYear(), session.State().SaturdayWorkingDay)
				return err
			}
			working, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("unable to parse %q as true or false: %w", args[0], err)
			}
			state := session.Dispatch(optimizer.SetSaturdayWorkingDay{Working: working})
			_, err = fmt.Fprintf(out, "Saved Saturday working day %t for %d\n", state.SaturdayWorkingDay, state.SelectedYear)
			return err
		},
	}
}

func newPrefsCmd(env *environment) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Print stored preferences as json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			years := []int{env.selectedYear()}
			if all {
				years = env.store.StoredYears()
			}
			stored := make(map[string]preferences.Preferences, len(years))
			for _, year := range years {
				stored[preferences.StorageKey(year)] = env.store.GetStoredPreferences(year)
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(stored)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every stored year")
	return cmd
}

func newHolidaysCmd(env *environment) *cobra.Command {
	var state string
	var companyDaysFile string
	cmd := &cobra.Command{
		Use:   "holidays <country>",
		Short: "Preview the holidays and working days of a region",
		Long: `Detect the holidays of a country, or one of its states, for the planned year and
summarize the working days left. Company days off can be read from a yaml file of the form

company_days:
  - date: 2025-12-26
    name: Winter Break`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := env.session()
			if companyDaysFile != "" {
				days, err := readCompanyDays(companyDaysFile)
				if err != nil {
					return err
				}
				session.Dispatch(optimizer.SetCompanyDays{Days: days})
			}
			cache := holidayquery.MakeCache(env.log, holidays.MakeProvider(), env.clock)
			detector := holidayquery.MakeDetector(env.log, cache)
			result := detector.Detect(session, holidays.Region{Country: args[0], State: strings.ToUpper(state)})
			return writePlan(cmd, result)
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "state code to include regional holidays for")
	cmd.Flags().StringVar(&companyDaysFile, "company-days", "", "yaml file of company days off")
	return cmd
}

func newStatesCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "states <country>",
		Short: "List the states whose regional holidays can be previewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME")
			for _, s := range holidays.MakeProvider().States(args[0]) {
				fmt.Fprintf(tw, "%s\t%s\n", s.Code, s.Name)
			}
			return tw.Flush()
		},
	}
}

//writePlan prints the holidays and company days off of state followed by its summary
func writePlan(cmd *cobra.Command, state optimizer.State) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tKIND\tNAME")
	for _, h := range state.Holidays() {
		name := h.Name
		if len(h.AlternateNames) > 0 {
			name = fmt.Sprintf("%s (also %s)", h.Name, strings.Join(h.AlternateNames, ", "))
		}
		fmt.Fprintf(tw, "%s\tholiday\t%s\n", h.Date, name)
	}
	for _, d := range state.CompanyDaysOff {
		fmt.Fprintf(tw, "%s\tcompany\t%s\n", d.Date, d.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	summary := optimizer.Summarize(state)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d holidays, %d company days off, %d working days in %d\n",
		summary.HolidayCount, summary.CompanyDayCount, summary.WorkingDays, summary.Year)
	return err
}

func readCompanyDays(path string) ([]optimizer.CompanyDayOff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening company days file: %w", err)
	}
	defer f.Close()
	return companydays.Parse(f)
}

func strategyNames() string {
	names := make([]string, 0, len(preferences.Strategies))
	for _, s := range preferences.Strategies {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
