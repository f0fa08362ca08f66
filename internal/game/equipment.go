package game

import "github.com/pixil98/go-survival/internal/catalog"

// Equipment holds at most one instance per body slot.
type Equipment struct {
	Head   *Instance `json:"head"`
	Body   *Instance `json:"body"`
	Feet   *Instance `json:"feet"`
	Weapon *Instance `json:"weapon"`
	Shield *Instance `json:"shield"`
	Bag    *Instance `json:"bag"`
}

func (e *Equipment) slot(s catalog.Slot) **Instance {
	switch s {
	case catalog.SlotHead:
		return &e.Head
	case catalog.SlotBody:
		return &e.Body
	case catalog.SlotFeet:
		return &e.Feet
	case catalog.SlotWeapon:
		return &e.Weapon
	case catalog.SlotShield:
		return &e.Shield
	case catalog.SlotBag:
		return &e.Bag
	}
	return nil
}

func (e *Equipment) Get(s catalog.Slot) *Instance {
	if p := e.slot(s); p != nil {
		return *p
	}
	return nil
}

// Set places inst in slot s and returns the previous occupant.
func (e *Equipment) Set(s catalog.Slot, inst *Instance) *Instance {
	p := e.slot(s)
	if p == nil {
		return nil
	}
	prev := *p
	*p = inst
	return prev
}

// Equip moves the instance at key into its slot. Items without a slot are
// left alone. An occupied slot is emptied back into the inventory first.
func (p *Player) Equip(cat *catalog.Catalog, key string) error {
	inst, ok := p.Inventory[key].(*Instance)
	if !ok {
		if _, held := p.Inventory[key]; held {
			return nil
		}
		return Userf("You do not have that item.")
	}

	def := cat.Item(inst.Name)
	if def == nil || def.Slot == "" {
		return nil
	}

	delete(p.Inventory, key)
	if prev := p.Equipment.Set(def.Slot, inst); prev != nil {
		p.Inventory.Put(prev)
	}
	return nil
}

// Unequip returns the item in slot s to the inventory.
func (p *Player) Unequip(s catalog.Slot) error {
	if !s.Valid() {
		return Userf("Unknown slot %q.", s)
	}
	inst := p.Equipment.Set(s, nil)
	if inst == nil {
		return Userf("Nothing is equipped there.")
	}
	p.Inventory.Put(inst)
	return nil
}

// WeaponDamage returns the equipped weapon's damage or fallback when unarmed.
func (p *Player) WeaponDamage(cat *catalog.Catalog, fallback int) int {
	if w := p.Equipment.Weapon; w != nil {
		if def := cat.Item(w.Name); def != nil && def.Damage > 0 {
			return def.Damage
		}
	}
	return fallback
}

// Defense sums the defense of everything worn in the defensive slots.
func (p *Player) Defense(cat *catalog.Catalog) int {
	total := 0
	for _, s := range catalog.DefenseSlots {
		if inst := p.Equipment.Get(s); inst != nil {
			if def := cat.Item(inst.Name); def != nil {
				total += def.Defense
			}
		}
	}
	return total
}

// EquippedTool returns the definition of the item in the weapon slot.
func (p *Player) EquippedTool(cat *catalog.Catalog) *catalog.Item {
	if w := p.Equipment.Weapon; w != nil {
		return cat.Item(w.Name)
	}
	return nil
}
