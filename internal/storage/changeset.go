package storage

import "github.com/mcoot/players/internal/model"

// ChangeKind identifies a staged mutation
type ChangeKind int

const (
	ChangeAdd ChangeKind = iota
	ChangeUpdate
	ChangeRemove
)

// Change is one staged mutation. PrevSquadNumber holds the squad number the
// player had before the change, for backends that index it.
type Change struct {
	Kind            ChangeKind
	Player          model.Player
	PrevSquadNumber int
}

// Changeset records the mutations staged in a transaction, in order, and
// answers lookups against them so a transaction reads its own writes.
type Changeset struct {
	changes []Change
	// overlay holds the latest staged value per ID; nil means removed
	overlay map[model.PlayerID]*model.Player
	delta   int
}

// NewChangeset creates an empty changeset
func NewChangeset() *Changeset {
	return &Changeset{overlay: make(map[model.PlayerID]*model.Player)}
}

// Lookup reports the staged state of id. If staged is false the caller must
// fall back to committed state. A staged nil player means it was removed.
func (c *Changeset) Lookup(id model.PlayerID) (p *model.Player, staged bool) {
	p, staged = c.overlay[id]
	if p != nil {
		cp := *p
		return &cp, true
	}
	return nil, staged
}

// Add stages an insert
func (c *Changeset) Add(p *model.Player) {
	cp := *p
	c.overlay[cp.ID] = &cp
	c.changes = append(c.changes, Change{Kind: ChangeAdd, Player: cp})
	c.delta++
}

// Update stages a replacement of an existing player
func (c *Changeset) Update(prevSquadNumber int, p *model.Player) {
	cp := *p
	c.overlay[cp.ID] = &cp
	c.changes = append(c.changes, Change{Kind: ChangeUpdate, Player: cp, PrevSquadNumber: prevSquadNumber})
}

// Remove stages a removal of an existing player
func (c *Changeset) Remove(p *model.Player) {
	cp := *p
	c.overlay[cp.ID] = nil
	c.changes = append(c.changes, Change{Kind: ChangeRemove, Player: cp, PrevSquadNumber: cp.SquadNumber})
	c.delta--
}

// ApplyUpdate maps incoming onto existing and stages the result.
// existing is modified in place.
func (c *Changeset) ApplyUpdate(existing, incoming *model.Player) {
	prev := existing.SquadNumber
	existing.MapFrom(incoming)
	c.Update(prev, existing)
}

// Changes returns the staged mutations in the order they were made
func (c *Changeset) Changes() []Change {
	return c.changes
}

// Delta is the net change in player count
func (c *Changeset) Delta() int {
	return c.delta
}

// Empty reports whether nothing has been staged
func (c *Changeset) Empty() bool {
	return len(c.changes) == 0
}
