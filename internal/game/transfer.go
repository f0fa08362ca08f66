package game

import (
	"github.com/pixil98/go-survival/internal/catalog"
)

// Owner names a place an item can be moved from or to.
type Owner string

const (
	OwnerInventory Owner = "player-inventory"
	OwnerEquipment Owner = "equipment"
	OwnerGround    Owner = "ground"
	OwnerBuilding  Owner = "building"
)

// Location is one end of a move. Slot is only read for equipment and
// BuildingID only for buildings, where it defaults to the first building
// on the player's tile.
type Location struct {
	Owner      Owner        `json:"owner"`
	Slot       catalog.Slot `json:"slot,omitempty"`
	BuildingID string       `json:"buildingId,omitempty"`
}

type MoveRequest struct {
	ItemKey  string   `json:"itemKey"`
	ItemName string   `json:"itemName"`
	Quantity int      `json:"quantity"`
	Source   Location `json:"source"`
	Target   Location `json:"target"`
}

// parcel is what is in flight between two locations.
type parcel struct {
	name  string
	count int
	inst  *Instance
}

// Drop moves one unit of the inventory entry at key onto the ground.
func (w *World) Drop(p *Player, key string) error {
	return w.MoveItem(p, MoveRequest{
		ItemKey:  key,
		Quantity: 1,
		Source:   Location{Owner: OwnerInventory},
		Target:   Location{Owner: OwnerGround},
	})
}

// Pickup moves one unit of the named ground item into the inventory.
func (w *World) Pickup(p *Player, name string) error {
	return w.MoveItem(p, MoveRequest{
		ItemName: name,
		Quantity: 1,
		Source:   Location{Owner: OwnerGround},
		Target:   Location{Owner: OwnerInventory},
	})
}

// MoveItem transfers items between the player's inventory, their equipment,
// the ground of their tile and a building's storage on that tile. Every
// check runs before anything moves.
func (w *World) MoveItem(p *Player, req MoveRequest) error {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Source.Owner == req.Target.Owner && req.Source.Owner != OwnerEquipment {
		return nil
	}

	tile := w.Tile(p.X, p.Y)
	if tile == nil {
		return Userf("You are nowhere.")
	}

	name, avail, err := w.peek(p, tile, req)
	if err != nil {
		return err
	}
	if avail < req.Quantity {
		return Userf("Not enough %s.", name)
	}

	def := w.Catalog.Item(name)
	if def == nil {
		return Userf("Unknown item %q.", name)
	}
	if err := w.accept(tile, req.Target, def, req.Quantity); err != nil {
		return err
	}

	pc := w.take(p, tile, req, name)
	w.put(p, tile, req.Target, def, pc)
	return nil
}

func (w *World) building(tile *Tile, loc Location) (*Building, error) {
	b := tile.Building()
	if loc.BuildingID != "" {
		b = tile.BuildingByID(loc.BuildingID)
	}
	if b == nil || !b.HasStorage() {
		return nil, Userf("There is no storage here.")
	}
	if b.Locked {
		return nil, Userf("The storage is locked.")
	}
	return b, nil
}

func (w *World) peek(p *Player, tile *Tile, req MoveRequest) (string, int, error) {
	switch req.Source.Owner {
	case OwnerInventory:
		name := p.Inventory.NameOf(req.ItemKey)
		if name == "" {
			return "", 0, Userf("You do not have that item.")
		}
		return name, p.Inventory.Quantity(req.ItemKey), nil
	case OwnerEquipment:
		inst := p.Equipment.Get(req.Source.Slot)
		if inst == nil {
			return "", 0, Userf("Nothing is equipped there.")
		}
		return inst.Name, 1, nil
	case OwnerGround:
		n := tile.GroundItems[req.ItemName]
		if n == 0 {
			return "", 0, Userf("There is no %s here.", req.ItemName)
		}
		return req.ItemName, n, nil
	case OwnerBuilding:
		b, err := w.building(tile, req.Source)
		if err != nil {
			return "", 0, err
		}
		name := b.Inventory.NameOf(req.ItemKey)
		if name == "" {
			return "", 0, Userf("That item is not stored here.")
		}
		return name, b.Inventory.Quantity(req.ItemKey), nil
	}
	return "", 0, Userf("Unknown source %q.", req.Source.Owner)
}

func (w *World) accept(tile *Tile, target Location, def *catalog.Item, qty int) error {
	switch target.Owner {
	case OwnerInventory, OwnerGround:
		return nil
	case OwnerEquipment:
		if def.Slot == "" {
			return Userf("%s cannot be equipped.", def.Name)
		}
		if target.Slot != "" && target.Slot != def.Slot {
			return Userf("%s does not fit the %s slot.", def.Name, target.Slot)
		}
		if qty != 1 {
			return Userf("Only one item can be equipped at a time.")
		}
		return nil
	case OwnerBuilding:
		b, err := w.building(tile, target)
		if err != nil {
			return err
		}
		if b.MaxInventory > 0 && b.Inventory.Total()+qty > b.MaxInventory {
			return Userf("The storage is full.")
		}
		return nil
	}
	return Userf("Unknown target %q.", target.Owner)
}

func (w *World) take(p *Player, tile *Tile, req MoveRequest, name string) parcel {
	fromInventory := func(inv Inventory) parcel {
		if inst, ok := inv.Take(req.ItemKey); ok {
			return parcel{name: name, count: 1, inst: inst}
		}
		_ = inv.Remove(req.ItemKey, req.Quantity)
		return parcel{name: name, count: req.Quantity}
	}

	switch req.Source.Owner {
	case OwnerInventory:
		return fromInventory(p.Inventory)
	case OwnerEquipment:
		inst := p.Equipment.Set(req.Source.Slot, nil)
		return parcel{name: name, count: 1, inst: inst}
	case OwnerGround:
		tile.GroundItems[name] -= req.Quantity
		if tile.GroundItems[name] <= 0 {
			delete(tile.GroundItems, name)
		}
		return parcel{name: name, count: req.Quantity}
	case OwnerBuilding:
		b, _ := w.building(tile, req.Source)
		return fromInventory(b.Inventory)
	}
	return parcel{}
}

func (w *World) put(p *Player, tile *Tile, target Location, def *catalog.Item, pc parcel) {
	toInventory := func(inv Inventory) {
		if pc.inst != nil {
			inv.Put(pc.inst)
			return
		}
		inv.Add(def, pc.count)
	}

	switch target.Owner {
	case OwnerInventory:
		toInventory(p.Inventory)
	case OwnerEquipment:
		inst := pc.inst
		if inst == nil {
			inst = NewInstance(def)
		}
		if prev := p.Equipment.Set(def.Slot, inst); prev != nil {
			p.Inventory.Put(prev)
		}
	case OwnerGround:
		tile.GroundItems[pc.name] += pc.count
	case OwnerBuilding:
		b, _ := w.building(tile, target)
		toInventory(b.Inventory)
	}
}
