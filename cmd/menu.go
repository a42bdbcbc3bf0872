package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pseudocodeus/csvprof/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive module menu",
	Long: `Browse the registered modules (CSV profiling, git automation)
and run their actions interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		modules := menu.BuildRegistry(
			menu.NewProfilerModule(),
			menu.NewGitModule(),
		)
		if len(modules) == 0 {
			log.Fatal("No modules available")
		}

		if err := runMenu(modules); err != nil {
			log.Fatalf("Menu failed: %v", err)
		}
	},
}

func runMenu(modules []menu.MenuModule) error {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name()
	}

	for {
		idx, err := menu.Select("Select a module", names)
		if err != nil {
			return err
		}
		if idx == menu.Back {
			return nil
		}
		if err := runModuleMenu(modules[idx]); err != nil {
			return err
		}
	}
}

func runModuleMenu(m menu.MenuModule) error {
	items := menu.SortedItems(m)
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	for {
		idx, err := menu.Select(m.Name()+" - Select action", labels)
		if err != nil {
			return err
		}
		if idx == menu.Back {
			return nil
		}

		// Action failures go back to the menu, they never end the session.
		if err := m.Execute(items[idx].ID); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
