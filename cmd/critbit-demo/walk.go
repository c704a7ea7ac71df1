package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"critbit"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Insert generated usernames and print them back in ascending key order",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n <= 0 {
			return fmt.Errorf("--count must be positive")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		tree := critbit.NewString()
		defer tree.Destroy()

		for _, k := range newFakeKeys(n) {
			if _, err := tree.Add(k); err != nil {
				continue
			}
		}

		printHeading("walk")
		printRow("tree count", fmt.Sprintf("%d", tree.Count()))

		shown := 0
		obj, cur, ok := tree.First()
		for ok && shown < limit {
			k := obj.(*fakeKey)
			fmt.Printf("  %s %s\n", okStyle.Render(fmt.Sprintf("%4d", shown)), valueStyle.Render(k.name))
			obj, cur, ok = tree.Next(cur)
			shown++
		}
		if ok {
			fmt.Println(labelStyle.Render(fmt.Sprintf("... %d more", tree.Count()-shown)))
		}
		return nil
	},
}

func init() {
	walkCmd.Flags().Int("count", 20, "number of generated usernames to insert")
	walkCmd.Flags().Int("limit", 20, "maximum number of entries to print")
}
