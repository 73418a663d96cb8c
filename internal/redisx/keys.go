package redisx

import "time"

const (
	// Cache product by id: product:{id} -> JSON product lengkap dengan category
	KeyProduct = "product:%s"
)

// TTL pendek saja; products praktis read-only setelah seed, tapi cache tetap
// best-effort dan boleh hilang kapan pun.
var TTLProduct = 5 * time.Minute
