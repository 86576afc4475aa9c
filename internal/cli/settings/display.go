package settings

import "github.com/julianstephens/anchor/internal/storage/postgres"

func displayStore(store string) string {
	if postgres.IsConnString(store) {
		return postgres.MaskPassword(store)
	}
	return store
}
