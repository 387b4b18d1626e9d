package config

import (
	"fmt"
	"strings"
)

type CatalogConfig struct {
	Size int    `koanf:"size"`
	Seed uint64 `koanf:"seed"`
}

// String returns a string representation of the catalog configuration.
func (c *CatalogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  size: %d\n", c.Size))
	b.WriteString(fmt.Sprintf("  seed: %d\n", c.Seed))
	return b.String()
}

func (c *CatalogConfig) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid catalog size: %d", c.Size)
	}
	return nil
}
