package service

import (
	"sync"
)

// keyedMutex serializes load-mutate-save cycles per store key so two
// concurrent mutations of one owner's cart cannot lose each other's update.
// Carts of different owners never contend.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
