package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	data, err := state.ExportSettings()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Printf("✓ Settings exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Settings JSON file to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}
	return state.ImportSettings(data)
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will delete all mood entries and activity logs.")
		fmt.Println("Settings are kept. A backup of the current database will be created first.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := state.ClearAllData(); err != nil {
		return err
	}
	fmt.Println("✓ All mood data cleared. Settings were kept.")
	return nil
}
