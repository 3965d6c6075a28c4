package controllers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestDeduplicator_RechazaRepeticionDentroDeLaVentana(t *testing.T) {
	d := NewRequestDeduplicator(time.Minute)

	assert.True(t, d.TryAcquire(1, "abc"))
	assert.False(t, d.TryAcquire(1, "abc"))

	// Otra clave u otro pedido no se ven afectados.
	assert.True(t, d.TryAcquire(1, "xyz"))
	assert.True(t, d.TryAcquire(2, "abc"))
}

func TestRequestDeduplicator_ClaveVencidaSeReusa(t *testing.T) {
	d := NewRequestDeduplicator(10 * time.Millisecond)

	assert.True(t, d.TryAcquire(1, "abc"))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, d.TryAcquire(1, "abc"))
}

// Dos cajeros mandando la misma clave al mismo tiempo: adquiere uno solo.
func TestRequestDeduplicator_ConcurrenciaUnSoloGanador(t *testing.T) {
	d := NewRequestDeduplicator(time.Minute)

	var wg sync.WaitGroup
	var wins int64
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.TryAcquire(7, "misma-clave") {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)
}
