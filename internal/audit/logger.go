package audit

import (
	"encoding/json"
	"sync"
	"time"
)

// Entry é um registro da trilha de auditoria. Sem persistência: a trilha
// vive em memória e zera quando o processo reinicia, como todo o resto.
type Entry struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	BarberID  string    `json:"barber_id,omitempty"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const maxEntries = 1000

type Logger struct {
	mu      sync.Mutex
	nextID  int
	entries []Entry
}

func New() *Logger {
	return &Logger{}
}

func (l *Logger) Log(
	barberID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.entries = append(l.entries, Entry{
		ID:        l.nextID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		BarberID:  barberID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	})

	// anel simples: descarta os mais antigos
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
	return nil
}

// List devolve as entradas mais recentes primeiro.
func (l *Logger) List(limit int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}

	out := make([]Entry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
