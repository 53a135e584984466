package etcd

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// WatchEvent representa un evento de cambio en ETCD
type WatchEvent struct {
	Key   string
	Value string
	Type  WatchEventType
}

// WatchEventType define los tipos de eventos de watch
type WatchEventType int

const (
	WatchEventPut WatchEventType = iota
	WatchEventDelete
)

// CacheClient define una interfaz para operaciones de caché con capacidades de lectura y watch
type CacheClient interface {
	// Get obtiene un valor de la caché por su clave
	Get(key string) (string, bool)
	// SetVar establece un valor en ETCD y actualiza la caché local
	SetVar(ctx context.Context, key, val string) error
	// Close libera los recursos utilizados por la caché
	Close() error
	// Reload fuerza una recarga de la caché desde etcd
	Reload() error
	// WatchKey observa cambios en una clave específica
	WatchKey(ctx context.Context, key string) (<-chan WatchEvent, error)
	// WatchPrefix observa cambios en todas las claves con un prefijo específico
	WatchPrefix(ctx context.Context, prefix string) (<-chan WatchEvent, error)
}

// Cache implementa CacheClient utilizando un store interno basado en atomic.Value
type Cache struct {
	cli     *Client
	store   atomic.Value // map[string]string con claves relativas al namespace
	closeCh chan struct{}
	// opciones
	periodicRefresh time.Duration
	backoffBase     time.Duration
	backoffMax      time.Duration
}

// NewCache carga las claves del namespace del cliente y se suscribe a cambios.
// Devuelve un cliente de caché que mantiene sincronizada una copia local de los datos
// y escucha actualizaciones en tiempo real.
func NewCache(cli *Client) (CacheClient, error) {
	c := &Cache{
		cli:             cli,
		closeCh:         make(chan struct{}),
		periodicRefresh: 15 * time.Second,
		backoffBase:     250 * time.Millisecond,
		backoffMax:      30 * time.Second,
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}

	go c.watchLoop()    // hot-reload con reintentos
	go c.periodicLoop() // refresh periódico de seguridad
	return c, nil
}

// Get obtiene un valor de la caché por su clave. Acepta claves relativas al
// namespace y también claves absolutas que incluyan el prefijo.
func (c *Cache) Get(key string) (string, bool) {
	m, _ := c.store.Load().(map[string]string)
	if val, ok := m[key]; ok {
		return val, true
	}

	ns := c.cli.NamespacePrefix()
	if strings.HasPrefix(key, ns) {
		if val, ok := m[strings.TrimPrefix(key, ns)]; ok {
			return val, true
		}
	}
	return "", false
}

// Reload fuerza una recarga de la caché desde etcd
func (c *Cache) Reload() error {
	return c.reload()
}

// Close libera los recursos utilizados por la caché
func (c *Cache) Close() error {
	close(c.closeCh)
	return nil
}

// reload carga los datos de etcd y actualiza la caché interna.
// El KV con namespace devuelve las claves ya relativas al prefijo.
func (c *Cache) reload() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.cli.timeout)
	defer cancel()

	resp, err := c.cli.kv.Get(ctx, "", clientv3.WithPrefix())
	if err != nil {
		return fmt.Errorf("error reloading cache from etcd: %w", err)
	}

	tmp := make(map[string]string, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		tmp[string(kv.Key)] = string(kv.Value)
	}

	c.store.Store(tmp)
	return nil
}

// watchLoop mantiene un watcher vivo con backoff exponencial ante cancelaciones.
func (c *Cache) watchLoop() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { <-c.closeCh; cancel() }()

	attempt := 0
	for {
		// Watch sobre el namespace completo; el watcher trabaja con claves absolutas
		wch := c.cli.watcher.Watch(ctx, c.cli.NamespacePrefix(), clientv3.WithPrefix())
		for w := range wch {
			if w.Canceled {
				break
			}
			if len(w.Events) > 0 {
				_ = c.reload()
				attempt = 0
			}
		}

		// Cierre solicitado
		select {
		case <-ctx.Done():
			return
		default:
		}

		// Backoff exponencial
		attempt++
		select {
		case <-time.After(c.backoffDuration(attempt)):
		case <-ctx.Done():
			return
		}
	}
}

func (c *Cache) periodicLoop() {
	if c.periodicRefresh <= 0 {
		return
	}
	t := time.NewTicker(c.periodicRefresh)
	defer t.Stop()
	for {
		select {
		case <-c.closeCh:
			return
		case <-t.C:
			_ = c.reload()
		}
	}
}

func (c *Cache) backoffDuration(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	exp := float64(c.backoffBase) * math.Pow(2, float64(attempt-1))
	d := time.Duration(exp)
	if d > c.backoffMax {
		d = c.backoffMax
	}
	return d
}

// WatchKey observa cambios en una clave específica
func (c *Cache) WatchKey(ctx context.Context, key string) (<-chan WatchEvent, error) {
	return c.watch(ctx, key, false)
}

// WatchPrefix observa cambios en todas las claves con un prefijo específico
func (c *Cache) WatchPrefix(ctx context.Context, prefix string) (<-chan WatchEvent, error) {
	return c.watch(ctx, prefix, true)
}

// watch implementa la lógica común de observación para claves y prefijos.
// Los eventos entregan la clave relativa al namespace, igual que Get y SetVar.
func (c *Cache) watch(ctx context.Context, target string, isPrefix bool) (<-chan WatchEvent, error) {
	eventCh := make(chan WatchEvent, 10) // buffer para evitar bloqueos

	go func() {
		defer close(eventCh)

		ns := c.cli.NamespacePrefix()
		attempt := 0
		for {
			watchCtx, cancel := context.WithCancel(ctx)

			var opts []clientv3.OpOption
			if isPrefix {
				opts = append(opts, clientv3.WithPrefix())
			}

			wch := c.cli.watcher.Watch(watchCtx, ns+target, opts...)

			for watchResp := range wch {
				if watchResp.Canceled {
					break
				}

				for _, event := range watchResp.Events {
					watchEvent := WatchEvent{
						Key:   strings.TrimPrefix(string(event.Kv.Key), ns),
						Value: string(event.Kv.Value),
					}

					switch event.Type {
					case clientv3.EventTypePut:
						watchEvent.Type = WatchEventPut
					case clientv3.EventTypeDelete:
						watchEvent.Type = WatchEventDelete
					}

					select {
					case eventCh <- watchEvent:
						attempt = 0
					case <-ctx.Done():
						cancel()
						return
					}
				}
			}

			cancel()

			// Verificar si el contexto padre fue cancelado
			select {
			case <-ctx.Done():
				return
			default:
			}

			// Backoff exponencial antes de reintentar
			attempt++
			timer := time.NewTimer(c.backoffDuration(attempt))

			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return
			}
		}
	}()

	return eventCh, nil
}

// SetVar establece un valor en ETCD y actualiza la caché local
func (c *Cache) SetVar(ctx context.Context, key, val string) error {
	if err := c.cli.SetVar(ctx, key, val); err != nil {
		return err
	}

	// Copia para no mutar el mapa publicado
	m, _ := c.store.Load().(map[string]string)
	next := make(map[string]string, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	next[key] = val
	c.store.Store(next)

	return nil
}
