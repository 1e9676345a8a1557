package content

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/output"
)

// I18nSlot is the slot name holding the localizer; no collection may use it.
const I18nSlot = "I18Next"

var _ output.ContentStore = (*Namespace)(nil)

// Namespace is the host's shared content registry ($cms). It is written
// during setup and read concurrently afterwards.
type Namespace struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
	localizer   output.Localizer
}

func NewNamespace() *Namespace {
	return &Namespace{collections: map[string][]map[string]any{}}
}

func validSlot(name string) error {
	if strings.TrimSpace(name) == "" || name == I18nSlot {
		return fmt.Errorf("%q: %w", name, domain.ErrReservedSlot)
	}
	return nil
}

func (n *Namespace) Set(collection string, items []map[string]any) error {
	if err := validSlot(collection); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.collections[collection] = items
	return nil
}

// Replace validates every slot name before touching the namespace, so a bad
// name leaves the previous contents in place.
func (n *Namespace) Replace(arrays entities.CollectionArrays, localizer output.Localizer) error {
	next := make(map[string][]map[string]any, len(arrays))
	for name, items := range arrays {
		if err := validSlot(name); err != nil {
			return err
		}
		next[name] = items
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.collections = next
	n.localizer = localizer
	return nil
}

func (n *Namespace) SetLocalizer(localizer output.Localizer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localizer = localizer
}

func (n *Namespace) Get(collection string) ([]map[string]any, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	items, ok := n.collections[collection]
	return items, ok
}

// Names returns the collection slot names, sorted.
func (n *Namespace) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.collections))
	for name := range n.collections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Localizer returns the installed localizer, nil before setup.
func (n *Namespace) Localizer() output.Localizer {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.localizer
}
