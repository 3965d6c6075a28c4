package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event es cualquier suceso del sistema que puede interesar a terceros.
type Event interface {
	Name() string
}

// Listener procesa un evento. Corre en su propia goroutine; no puede
// afectar la respuesta HTTP que ya salió.
type Listener func(ctx context.Context, event Event) error

const listenerTimeout = time.Minute

type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish entrega el evento a todos los suscriptores, cada uno en su
// goroutine con timeout propio. Los errores se loguean, no se propagan:
// la escritura que originó el evento ya está confirmada.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			ctxWithTimeout, cancel := context.WithTimeout(context.Background(), listenerTimeout)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("error en un suscriptor de eventos",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}
