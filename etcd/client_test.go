package etcd

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/mvccpb"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// fakeKV implementa la interfaz KV sobre un mapa en memoria.
// Con opciones (WithPrefix) devuelve el rango completo bajo la clave.
type fakeKV struct {
	data    map[string]string
	failAll bool
}

func (f *fakeKV) Get(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.GetResponse, error) {
	if f.failAll {
		return nil, errors.New("etcd unavailable")
	}
	if len(opts) > 0 {
		resp := &clientv3.GetResponse{}
		for k, v := range f.data {
			if strings.HasPrefix(k, key) {
				resp.Kvs = append(resp.Kvs, &mvccpb.KeyValue{Key: []byte(k), Value: []byte(v)})
			}
		}
		resp.Count = int64(len(resp.Kvs))
		return resp, nil
	}
	v, ok := f.data[key]
	if !ok {
		return &clientv3.GetResponse{}, nil
	}
	return &clientv3.GetResponse{
		Kvs:   []*mvccpb.KeyValue{{Key: []byte(key), Value: []byte(v)}},
		Count: 1,
	}, nil
}

func (f *fakeKV) Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error) {
	if f.failAll {
		return nil, errors.New("etcd unavailable")
	}
	f.data[key] = val
	return &clientv3.PutResponse{}, nil
}

func (f *fakeKV) Delete(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.DeleteResponse, error) {
	if f.failAll {
		return nil, errors.New("etcd unavailable")
	}
	if len(opts) > 0 {
		var deleted int64
		for k := range f.data {
			if strings.HasPrefix(k, key) {
				delete(f.data, k)
				deleted++
			}
		}
		return &clientv3.DeleteResponse{Deleted: deleted}, nil
	}
	if _, ok := f.data[key]; ok {
		delete(f.data, key)
		return &clientv3.DeleteResponse{Deleted: 1}, nil
	}
	return &clientv3.DeleteResponse{}, nil
}

// newTestClient construye un Client real respaldado por el fakeKV,
// sin conexión de red.
func newTestClient(data map[string]string) (*Client, *fakeKV) {
	kv := &fakeKV{data: data}
	cli := &Client{
		kv:      kv,
		app:     "gridmarket",
		env:     "testing",
		timeout: time.Second,
	}
	return cli, kv
}

func TestClient_GetVar_Success(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"endpoints/api_addr": "localhost:50051",
	})

	value, err := cli.GetVar(context.Background(), "endpoints/api_addr")

	assert.NoError(t, err, "No debería haber error al obtener la variable")
	assert.Equal(t, "localhost:50051", value, "El valor obtenido debería coincidir con el esperado")
}

func TestClient_GetVar_NotFound(t *testing.T) {
	cli, _ := newTestClient(map[string]string{})

	_, err := cli.GetVar(context.Background(), "nonexistent-key")

	assert.Error(t, err, "Debería haber error cuando la clave no existe")
	assert.Contains(t, err.Error(), "key not found", "El mensaje debería indicar que la clave no fue encontrada")
}

func TestClient_GetVar_Error(t *testing.T) {
	cli, kv := newTestClient(map[string]string{})
	kv.failAll = true

	_, err := cli.GetVar(context.Background(), "any-key")

	assert.Error(t, err, "Debería haber error cuando falla la operación")
	assert.Contains(t, err.Error(), "failed to get key", "El error debería envolver la causa")
}

func TestClient_GetVarWithDefault(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"api/key": "dev-key",
	})
	ctx := context.Background()

	value, err := cli.GetVarWithDefault(ctx, "api/key", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "dev-key", value, "Debería devolver el valor existente")

	value, err = cli.GetVarWithDefault(ctx, "api/missing", "fallback")
	assert.NoError(t, err, "El valor por defecto nunca produce error")
	assert.Equal(t, "fallback", value, "Debería devolver el valor por defecto")
}

func TestClient_GetVarInt(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"grpc/client_keepalive/time_s": "60",
		"grpc/bad":                     "abc",
	})
	ctx := context.Background()

	value, err := cli.GetVarInt(ctx, "grpc/client_keepalive/time_s")
	assert.NoError(t, err)
	assert.Equal(t, 60, value)

	_, err = cli.GetVarInt(ctx, "grpc/bad")
	assert.Error(t, err, "Un valor no numérico debería producir error")
}

func TestClient_GetVarUint64(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"watch/gridpool_id": "452",
		"watch/negative":    "-1",
	})
	ctx := context.Background()

	value, err := cli.GetVarUint64(ctx, "watch/gridpool_id")
	require.NoError(t, err)
	assert.Equal(t, uint64(452), value)

	_, err = cli.GetVarUint64(ctx, "watch/negative")
	assert.Error(t, err, "Un identificador negativo no es un uint64 válido")

	fallback, err := cli.GetVarUint64WithDefault(ctx, "watch/missing", 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), fallback)
}

func TestClient_GetVarBool(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"postgres/enabled": "true",
		"api/tls_enabled":  "false",
		"bad/bool":         "not-a-bool",
	})
	ctx := context.Background()

	on, err := cli.GetVarBool(ctx, "postgres/enabled")
	assert.NoError(t, err)
	assert.True(t, on)

	off, err := cli.GetVarBool(ctx, "api/tls_enabled")
	assert.NoError(t, err)
	assert.False(t, off)

	_, err = cli.GetVarBool(ctx, "bad/bool")
	assert.Error(t, err)

	def, err := cli.GetVarBoolWithDefault(ctx, "missing/bool", true)
	assert.NoError(t, err)
	assert.True(t, def, "Debería devolver el valor por defecto")
}

func TestClient_GetVarDuration(t *testing.T) {
	cli, _ := newTestClient(map[string]string{
		"reconnect/backoff_initial_ms": "500",
	})
	ctx := context.Background()

	d, err := cli.GetVarDuration(ctx, "reconnect/backoff_initial_ms")
	assert.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d, "La duración se interpreta en milisegundos")

	def, err := cli.GetVarDurationWithDefault(ctx, "reconnect/missing", 30*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, def)
}

func TestClient_SetVar_Success(t *testing.T) {
	cli, kv := newTestClient(map[string]string{})

	err := cli.SetVar(context.Background(), "watch/gridpool_id", "452")

	assert.NoError(t, err, "No debería haber error al establecer la variable")
	assert.Equal(t, "452", kv.data["watch/gridpool_id"], "El valor debería quedar persistido en etcd")
}

func TestClient_SetVar_Error(t *testing.T) {
	cli, kv := newTestClient(map[string]string{})
	kv.failAll = true

	err := cli.SetVar(context.Background(), "watch/gridpool_id", "452")

	assert.Error(t, err, "Debería haber error cuando falla la operación")
	assert.Contains(t, err.Error(), "failed to set key")
}

func TestClient_DeleteVar_Success(t *testing.T) {
	cli, kv := newTestClient(map[string]string{
		"api/key": "dev-key",
	})

	err := cli.DeleteVar(context.Background(), "api/key")

	assert.NoError(t, err, "No debería haber error al eliminar la variable")
	_, found := kv.data["api/key"]
	assert.False(t, found, "La clave no debería existir después de eliminarla")
}

func TestClient_DeleteVar_Error(t *testing.T) {
	cli, kv := newTestClient(map[string]string{})
	kv.failAll = true

	err := cli.DeleteVar(context.Background(), "api/key")

	assert.Error(t, err, "Debería haber error cuando falla la operación")
	assert.Contains(t, err.Error(), "failed to delete key")
}

func TestClient_NamespacePrefix(t *testing.T) {
	cli, _ := newTestClient(nil)
	assert.Equal(t, "/gridmarket/testing/", cli.NamespacePrefix())
}

func TestEndpointsFromEnv(t *testing.T) {
	t.Setenv(envEndpoints, " http://etcd-a:2379 , http://etcd-b:2379 ,, ")
	assert.Equal(t,
		[]string{"http://etcd-a:2379", "http://etcd-b:2379"},
		EndpointsFromEnv(),
		"Los endpoints se limpian de espacios y entradas vacías")

	t.Setenv(envEndpoints, "")
	assert.Nil(t, EndpointsFromEnv(), "Sin variable definida no hay endpoints")
}

// ExampleClient_GetVar muestra cómo usar el cliente para obtener una variable
func ExampleClient_GetVar() {
	// Crear un cliente con las opciones
	client, err := New(
		WithApp("gridmarket"),
		WithEnv("development"),
		WithTimeout(time.Second),
	)
	if err != nil {
		// Manejar el error
		return
	}
	defer client.Close()

	// Obtener una variable
	ctx := context.Background()
	value, err := client.GetVar(ctx, "endpoints/api_addr")
	if err != nil {
		// Manejar el error
		return
	}

	// Usar el valor
	_ = value
}

// ExampleClient_GetVarWithDefault muestra cómo usar valores por defecto
func ExampleClient_GetVarWithDefault() {
	// Crear un cliente con las opciones
	client, err := New(
		WithApp("gridmarket"),
		WithEnv("development"),
		WithTimeout(time.Second),
	)
	if err != nil {
		// Manejar el error
		return
	}
	defer client.Close()

	// Obtener variables con valores por defecto
	ctx := context.Background()

	// String con valor por defecto
	apiKey, _ := client.GetVarWithDefault(ctx, "api/key", "")

	// Identificador con valor por defecto
	gridpool, _ := client.GetVarUint64WithDefault(ctx, "watch/gridpool_id", 1)

	// Booleano con valor por defecto
	tlsOn, _ := client.GetVarBoolWithDefault(ctx, "api/tls_enabled", true)

	// Duración con valor por defecto
	backoff, _ := client.GetVarDurationWithDefault(ctx, "reconnect/backoff_initial_ms", 500*time.Millisecond)

	// Usar los valores
	_, _, _, _ = apiKey, gridpool, tlsOn, backoff
}
