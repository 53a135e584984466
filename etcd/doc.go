// Package etcd proporciona un cliente para recuperar variables de configuración
// desde ETCD bajo el namespace de la aplicación.
//
// Estructura de claves:
// El cliente sigue el patrón de ruta `/APP/ENV/VAR_KEY` donde:
//   - `APP`: Nombre de la aplicación (por defecto "gridmarket")
//   - `ENV`: Entorno (development, testing, production)
//   - `VAR_KEY`: Clave de la variable, p. ej. "endpoints/api_addr"
//
// Características principales:
//   - Cliente configurable mediante opciones funcionales (functional options pattern)
//   - Soporte para configuración mediante variables de entorno (ETCD_ENDPOINTS, ENV)
//   - Cliente por defecto y singleton para usos simples
//   - Caché con actualizaciones automáticas (hot-reload)
//   - Funciones de conveniencia para diferentes tipos de datos
//
// Componentes principales:
//
//   - Cliente principal: Funcionalidad básica para interactuar con etcd
//   - Caché: Mantiene una copia local de los datos con actualización automática
//
// Ejemplo básico de uso:
//
//	client, err := etcd.New(
//		etcd.WithApp("gridmarket"),
//		etcd.WithEnv("development"),
//		etcd.WithTimeout(5 * time.Second),
//	)
//	if err != nil {
//		log.Fatalf("Error creating etcd client: %v", err)
//	}
//	defer client.Close()
//
//	// Obtener variables usando diferentes métodos
//	addr, _ := client.GetVar(ctx, "endpoints/api_addr")
//	gridpool, _ := client.GetVarUint64(ctx, "watch/gridpool_id")
//	tlsOn, _ := client.GetVarBool(ctx, "api/tls_enabled")
//	backoff, _ := client.GetVarDuration(ctx, "reconnect/backoff_initial_ms")
//
//	// Con valores por defecto
//	timeout, _ := client.GetVarDurationWithDefault(ctx, "grpc/dial_timeout_ms", 5*time.Second)
package etcd
