package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/pixil98/go-survival/internal/catalog"
)

// Entry is one inventory value: either a Stack or an Instance.
type Entry interface {
	isEntry()
}

// Stack is a quantity of an interchangeable item. Its inventory key is the
// item name.
type Stack struct {
	Count int
}

// Instance is a single unit of a unique item, keyed by its own identity.
type Instance struct {
	Name              string `json:"name"`
	Durability        int    `json:"durability"`
	CurrentDurability int    `json:"currentDurability"`
}

func (Stack) isEntry()     {}
func (*Instance) isEntry() {}

// NewInstance mints a fresh unit of def at full durability.
func NewInstance(def *catalog.Item) *Instance {
	return &Instance{
		Name:              def.Name,
		Durability:        def.Durability,
		CurrentDurability: def.Durability,
	}
}

// Inventory maps keys to entries. Stack keys are item names, instance keys
// are opaque ids.
type Inventory map[string]Entry

// Add puts qty units of def into the inventory. Unique items receive one
// fresh key per unit; the new keys are returned.
func (inv Inventory) Add(def *catalog.Item, qty int) []string {
	if qty <= 0 {
		return nil
	}

	if !def.Unique() {
		s, _ := inv[def.Name].(Stack)
		s.Count += qty
		inv[def.Name] = s
		return []string{def.Name}
	}

	keys := make([]string, 0, qty)
	for range qty {
		key := uuid.NewString()
		inv[key] = NewInstance(def)
		keys = append(keys, key)
	}
	return keys
}

// Put stores an existing instance under a fresh key.
func (inv Inventory) Put(inst *Instance) string {
	key := uuid.NewString()
	inv[key] = inst
	return key
}

// NameOf returns the item name stored under key, or "" when absent.
func (inv Inventory) NameOf(key string) string {
	switch e := inv[key].(type) {
	case Stack:
		return key
	case *Instance:
		return e.Name
	}
	return ""
}

// Quantity returns how many units are stored under key.
func (inv Inventory) Quantity(key string) int {
	switch e := inv[key].(type) {
	case Stack:
		return e.Count
	case *Instance:
		return 1
	}
	return 0
}

// Count returns the total units of the named item across stacks and
// instances.
func (inv Inventory) Count(name string) int {
	total := 0
	for key, e := range inv {
		switch e := e.(type) {
		case Stack:
			if key == name {
				total += e.Count
			}
		case *Instance:
			if e.Name == name {
				total++
			}
		}
	}
	return total
}

// Total returns the number of units held.
func (inv Inventory) Total() int {
	total := 0
	for key := range inv {
		total += inv.Quantity(key)
	}
	return total
}

// Remove takes qty units from the entry at key. Stacks are deleted when they
// reach zero; instances are always removed whole.
func (inv Inventory) Remove(key string, qty int) error {
	switch e := inv[key].(type) {
	case Stack:
		if qty <= 0 || e.Count < qty {
			return fmt.Errorf("cannot remove %d of %q, holding %d", qty, key, e.Count)
		}
		e.Count -= qty
		if e.Count == 0 {
			delete(inv, key)
		} else {
			inv[key] = e
		}
		return nil
	case *Instance:
		delete(inv, key)
		return nil
	}
	return fmt.Errorf("no item under key %q", key)
}

// Take removes an instance by key and returns it.
func (inv Inventory) Take(key string) (*Instance, bool) {
	inst, ok := inv[key].(*Instance)
	if !ok {
		return nil, false
	}
	delete(inv, key)
	return inst, true
}

// RemoveNamed removes qty units of the named item, draining the stack
// first and then instances in key order. Nothing is removed unless the
// inventory holds at least qty.
func (inv Inventory) RemoveNamed(name string, qty int) error {
	if inv.Count(name) < qty {
		return fmt.Errorf("not enough %s", name)
	}

	if s, ok := inv[name].(Stack); ok {
		n := min(s.Count, qty)
		if err := inv.Remove(name, n); err != nil {
			return err
		}
		qty -= n
	}

	for _, key := range inv.Keys() {
		if qty == 0 {
			break
		}
		if inst, ok := inv[key].(*Instance); ok && inst.Name == name {
			delete(inv, key)
			qty--
		}
	}
	return nil
}

// Keys returns the inventory keys in ascending order.
func (inv Inventory) Keys() []string {
	keys := make([]string, 0, len(inv))
	for k := range inv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON writes stacks as bare numbers and instances as objects.
func (inv Inventory) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(inv))
	for key, e := range inv {
		switch e := e.(type) {
		case Stack:
			out[key] = e.Count
		case *Instance:
			out[key] = e
		}
	}
	return json.Marshal(out)
}

func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Inventory, len(raw))
	for key, msg := range raw {
		var count int
		if err := json.Unmarshal(msg, &count); err == nil {
			out[key] = Stack{Count: count}
			continue
		}
		inst := &Instance{}
		if err := json.Unmarshal(msg, inst); err != nil {
			return fmt.Errorf("inventory entry %q: %w", key, err)
		}
		out[key] = inst
	}
	*inv = out
	return nil
}
