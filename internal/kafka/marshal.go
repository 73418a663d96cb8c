package kafka

import "encoding/json"

// MustMarshal: payload event selalu tipe milik kita sendiri, gagal marshal
// berarti bug, bukan kondisi runtime.
func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
