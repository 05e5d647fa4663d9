package slotlock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// Locker serializa tentativas de reserva no mesmo slot via Redis (SET NX).
// É uma proteção adicional: a garantia final de unicidade continua sendo
// o índice parcial do banco. Com Redis ausente (client nil) o lock é no-op.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultTTL = 5 * time.Second

// script de release: só apaga a chave se o token ainda for nosso
const releaseScript = `
        if redis.call("get", KEYS[1]) == ARGV[1] then
            return redis.call("del", KEYS[1])
        end
        return 0
    `

func New(client *redis.Client) *Locker {
	return &Locker{
		client: client,
		ttl:    defaultTTL,
	}
}

func key(slot time.Time) string {
	return "slotlock:" + slot.UTC().Format(time.RFC3339)
}

// Acquire tenta travar o slot. Retorna a função de release e
// ErrBusiness("slot_taken") quando outra requisição já segura o lock.
func (l *Locker) Acquire(ctx context.Context, slot time.Time) (func(), error) {
	if l == nil || l.client == nil {
		return func() {}, nil
	}

	token := uuid.NewString()
	k := key(slot)

	ok, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
	if err != nil {
		// Redis fora do ar não derruba a reserva: o banco ainda protege
		return func() {}, nil
	}
	if !ok {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	release := func() {
		l.client.Eval(context.Background(), releaseScript, []string{k}, token)
	}

	return release, nil
}
