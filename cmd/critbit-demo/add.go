package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"critbit"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert generated usernames into a fresh tree and report the outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n <= 0 {
			return fmt.Errorf("--count must be positive")
		}

		log := newZerologAdapter(newConsoleLogger())
		tree := critbit.NewString(critbit.WithLogger(log), critbit.WithStats(true))
		defer tree.Destroy()

		keys := newFakeKeys(n)
		inserted, duplicates := 0, 0
		for _, k := range keys {
			ok, err := tree.Add(k)
			switch {
			case err != nil && errors.Is(err, critbit.ErrAlreadyExists):
				duplicates++
			case err != nil:
				return err
			case ok:
				inserted++
			}
		}

		printHeading("add")
		printRow("requested", fmt.Sprintf("%d", n))
		printRow("inserted", fmt.Sprintf("%d", inserted))
		printRow("duplicates", fmt.Sprintf("%d", duplicates))
		printRow("tree count", fmt.Sprintf("%d", tree.Count()))

		if st := tree.Stats(); st != nil {
			printRow("splits", fmt.Sprintf("%d", st.Splits.Load()))
			printRow("push-downs", fmt.Sprintf("%d", st.PushDowns.Load()))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().Int("count", 20, "number of generated usernames to insert")
}
