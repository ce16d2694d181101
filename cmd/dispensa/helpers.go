package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"dispensa/internal/common"
	"dispensa/internal/config"
	"dispensa/internal/inventory"
	"dispensa/internal/storage"
)

// openGateway builds the gateway selected by storage.driver/storage.path.
func openGateway() (storage.Gateway, error) {
	driver := viper.GetString("storage.driver")
	if driver == "" {
		driver = "bolt"
	}

	path := viper.GetString("storage.path")
	if path == "" {
		path = config.DefaultDataFile(driver)
	}
	path = config.ExpandPath(path)

	switch driver {
	case "bolt":
		return storage.NewBoltGateway(path)
	case "sqlite":
		return storage.NewSQLiteGateway(path)
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", common.ErrInvalidConfig, driver)
	}
}

// openStore builds the configured gateway and loads the inventory store.
// The returned cleanup closes the gateway and must always be called.
func openStore(ctx context.Context) (*inventory.Store, func(), error) {
	gateway, err := openGateway()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	cleanup := func() { _ = gateway.Close() }

	store, err := inventory.NewStore(gateway)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := store.Load(ctx); err != nil {
		cleanup()
		if errors.Is(err, storage.ErrCorrupted) {
			common.LogError(err, "failed to load inventory", common.Fields{
				"driver": viper.GetString("storage.driver"),
			})
			return nil, nil, common.NewUserError("stored inventory is corrupted; run 'dispensa reset' to start over", err)
		}
		return nil, nil, err
	}
	return store, cleanup, nil
}

// confirm prompts for a yes/no answer on stdin, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
