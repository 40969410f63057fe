package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RNSsanjay/agentium/internal/credential"
	"github.com/RNSsanjay/agentium/internal/store"
)

func agentiumDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".agentium")
}

func getStore() store.Storage {
	dir := agentiumDir()
	storeLayer, err := store.NewSQLiteStore(
		filepath.Join(dir, "metadata.db"),
		filepath.Join(dir, "reports"),
	)
	if err != nil {
		fmt.Printf("Failed to init store: %v\n", err)
		os.Exit(1)
	}
	return storeLayer
}

// configLookup resolves keys from the store, decrypting secrets written
// by "config set". Lookup failures read as unset.
func configLookup(s store.Storage, creds *credential.Manager) func(string) string {
	return func(key string) string {
		val, err := s.GetConfig(key)
		if err != nil || val == "" {
			return ""
		}
		if creds != nil {
			if plain, err := creds.Decrypt(val); err == nil {
				return plain
			}
			return ""
		}
		return val
	}
}
