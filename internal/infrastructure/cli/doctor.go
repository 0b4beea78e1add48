package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/config"
	"github.com/felixgeelhaar/speclint/pkg/infrastructure/schema"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration, schema and rule packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Running speclint doctor...")

		hasIssues := false
		check := func(name string, fn func() error) {
			fmt.Printf("Checking %s... ", name)
			if err := fn(); err != nil {
				fmt.Printf("FAIL\n  Error: %v\n", err)
				hasIssues = true
			} else {
				fmt.Printf("PASS\n")
			}
		}

		var cfg *config.Config
		check("Configuration", func() error {
			var err error
			cfg, err = loadConfig(cmd)
			return err
		})
		if cfg == nil {
			fmt.Println("\nissues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}

		check("Repository Root", func() error {
			return requireDir(cfg.Root)
		})

		check("Schema", func() error {
			v, err := schema.Load(cfg.SchemaPath())
			if err != nil {
				return err
			}
			fmt.Printf("(%s) ", v.Name())
			return nil
		})

		check("Rule Packs", func() error {
			return requireDir(cfg.PacksPath())
		})

		if hasIssues {
			fmt.Println("\nissues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}
		fmt.Println("\nEverything looks good!")
		return nil
	},
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
