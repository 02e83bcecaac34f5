package services

import (
	"context"
	"encoding/json"

	"coffee-app/internal/store"
)

// getJSON читает ключ и декодирует значение; false — ключа нет.
func getJSON(ctx context.Context, st store.Store, key string, v interface{}) (bool, error) {
	data, ok, err := st.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func setJSON(ctx context.Context, st store.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return st.Set(ctx, key, data)
}
