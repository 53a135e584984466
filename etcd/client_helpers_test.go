package etcd

import (
	"context"
	"sync"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// mockWatcher registra la última clave observada y entrega las respuestas
// preparadas antes de cerrar el canal. El acceso va protegido porque los
// watch corren en goroutines propias.
type mockWatcher struct {
	mu        sync.Mutex
	lastKey   string
	responses []clientv3.WatchResponse
}

func (m *mockWatcher) Watch(ctx context.Context, key string, opts ...clientv3.OpOption) clientv3.WatchChan {
	m.mu.Lock()
	m.lastKey = key
	m.mu.Unlock()

	ch := make(chan clientv3.WatchResponse, len(m.responses))
	for _, r := range m.responses {
		ch <- r
	}
	close(ch)
	return ch
}

func (m *mockWatcher) Key() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastKey
}
