package controllers

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RequestDeduplicator rechaza repeticiones de una misma solicitud dentro de
// una ventana de tiempo. Lo usa el registro de pagos con la cabecera
// Idempotency-Key: un doble clic del cajero no genera dos abonos.
type RequestDeduplicator struct {
	locks sync.Map
	ttl   time.Duration
}

func NewRequestDeduplicator(ttl time.Duration) *RequestDeduplicator {
	return &RequestDeduplicator{ttl: ttl}
}

// TryAcquire devuelve false si la misma clave ya fue usada dentro de la
// ventana. Una clave vencida se puede reusar. Dos solicitudes simultáneas
// con la misma clave no pueden adquirir las dos: LoadOrStore decide una
// sola ganadora.
func (d *RequestDeduplicator) TryAcquire(orderID uint64, key string) bool {
	mapKey := fmt.Sprintf("%d_%s", orderID, key)
	now := time.Now()

	for {
		val, loaded := d.locks.LoadOrStore(mapKey, now.Add(d.ttl))
		if !loaded {
			return true
		}
		expiry := val.(time.Time)
		if now.Before(expiry) {
			return false
		}
		// Clave vencida: solo quien logra el swap la renueva.
		if d.locks.CompareAndSwap(mapKey, val, now.Add(d.ttl)) {
			return true
		}
	}
}

// Cleanup barre las claves vencidas. Pensado para correr en su goroutine.
func (d *RequestDeduplicator) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			d.locks.Range(func(key, value interface{}) bool {
				expiry := value.(time.Time)
				if now.After(expiry) {
					d.locks.Delete(key)
				}
				return true
			})
		}
	}
}
