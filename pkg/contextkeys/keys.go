package contextkeys

type contextKey string

const (
	// ActorKey guarda el nombre visible del usuario que ejecuta la acción,
	// resuelto por el proxy de autenticación. Para el core es un string opaco.
	ActorKey contextKey = "Actor"
)
