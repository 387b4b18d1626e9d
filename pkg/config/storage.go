package config

import (
	"fmt"
	"strings"
	"time"
)

// Storage backends selectable via storage.backend.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

type StorageConfig struct {
	Backend string `koanf:"backend"`
	File    struct {
		Path string `koanf:"path"`
	} `koanf:"file"`
	Redis struct {
		Addr     string        `koanf:"addr"`
		Password string        `koanf:"password"`
		DB       int           `koanf:"db"`
		Timeout  time.Duration `koanf:"timeout"`
	} `koanf:"redis"`
}

// String returns a string representation of the storage configuration.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  backend: %s\n", c.Backend))
	b.WriteString(fmt.Sprintf("  file.path: %s\n", c.File.Path))
	b.WriteString(fmt.Sprintf("  redis.addr: %s\n", c.Redis.Addr))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case StorageMemory:
	case StorageFile:
		if c.File.Path == "" {
			return fmt.Errorf("file storage backend requires storage.file.path")
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis storage backend requires storage.redis.addr")
		}
		if c.Redis.Timeout <= 0 {
			return fmt.Errorf("invalid redis connect timeout: %v", c.Redis.Timeout)
		}
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Backend)
	}
	return nil
}
