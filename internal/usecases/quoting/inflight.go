package quoting

import "sync"

// inflightGuard serializa mutações por cotação. Enquanto um PATCH ou DELETE
// de uma cotação estiver em voo, novas mutações da mesma cotação são
// rejeitadas em vez de enfileiradas.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{
		active: make(map[string]struct{}),
	}
}

// Acquire reserva a cotação para uma mutação. Retorna false se já houver
// outra em andamento.
func (g *inflightGuard) Acquire(quoteSysID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[quoteSysID]; busy {
		return false
	}

	g.active[quoteSysID] = struct{}{}
	return true
}

// Release libera a cotação para a próxima mutação.
func (g *inflightGuard) Release(quoteSysID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, quoteSysID)
}
