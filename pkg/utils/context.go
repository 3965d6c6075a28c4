package utils

import (
	"context"

	"bordados-backend/pkg/contextkeys"
	apperrors "bordados-backend/pkg/errors"
)

// GetActorFromCtx devuelve el nombre del usuario que ejecuta la acción.
// Lo deja en el contexto el middleware de identidad.
func GetActorFromCtx(ctx context.Context) (string, error) {
	actor, ok := ctx.Value(contextkeys.ActorKey).(string)
	if !ok || actor == "" {
		return "", apperrors.ErrActorNotFoundInContext
	}
	return actor, nil
}
