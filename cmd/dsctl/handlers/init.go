package handlers

import (
	"fmt"
	"os"

	"github.com/oselz/docserver-deploy/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// writeStarter writes the starter config to a file.
	writeStarter = config.WriteStarter
)

// Init writes a starter configuration file.
func Init(outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	if err := writeStarter(outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", outputPath)
	fmt.Println("\nEdit the host, domain, and ACME email, then run:")
	fmt.Println("  dsctl bootstrap")
	fmt.Println("  dsctl deploy")

	return nil
}
