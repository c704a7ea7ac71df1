package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"critbit"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time insert, lookup, and remove over a generated key set",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n <= 0 {
			return fmt.Errorf("--count must be positive")
		}

		tree := critbit.NewString(critbit.WithStats(true))
		defer tree.Destroy()

		keys := newFakeKeys(n)

		insertStart := time.Now()
		for _, k := range keys {
			if _, err := tree.Add(k); err != nil && !errors.Is(err, critbit.ErrAlreadyExists) {
				return err
			}
		}
		insertElapsed := time.Since(insertStart)

		lookupStart := time.Now()
		hits := 0
		for _, k := range keys {
			if _, _, err := tree.FindString(k.name); err == nil {
				hits++
			}
		}
		lookupElapsed := time.Since(lookupStart)

		removeStart := time.Now()
		removed := 0
		for _, k := range keys {
			if ok, _ := tree.Remove(k); ok {
				removed++
			}
		}
		removeElapsed := time.Since(removeStart)

		printHeading("bench")
		printRow("keys", fmt.Sprintf("%d", n))
		printRow("insert", fmt.Sprintf("%s (%s/op)", insertElapsed, insertElapsed/time.Duration(n)))
		printRow("lookup", fmt.Sprintf("%s (%s/op), %d hits", lookupElapsed, lookupElapsed/time.Duration(n), hits))
		printRow("remove", fmt.Sprintf("%s (%s/op), %d removed", removeElapsed, removeElapsed/time.Duration(n), removed))

		if st := tree.Stats(); st != nil {
			printRow("splits", fmt.Sprintf("%d", st.Splits.Load()))
			printRow("merge-ups", fmt.Sprintf("%d", st.MergeUps.Load()))
			printRow("merge-downs", fmt.Sprintf("%d", st.MergeDowns.Load()))
			printRow("failed merges", fmt.Sprintf("%d", st.FailedMerges.Load()))
		}
		fmt.Println(okStyle.Render("done"))
		return nil
	},
}

func init() {
	benchCmd.Flags().Int("count", 10000, "number of generated keys to cycle through insert/lookup/remove")
}
