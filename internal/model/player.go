package model

// PlayerID uniquely identifies a player. It is chosen by whoever creates the
// player and never changes afterwards.
type PlayerID int

// Player represents a member of the squad
type Player struct {
	ID           PlayerID
	FirstName    string
	MiddleName   string
	LastName     string
	DateOfBirth  string // YYYY-MM-DD
	SquadNumber  int
	Position     string
	AbbrPosition string
	Team         string
	League       string
	Starting11   bool
}

// MapFrom overwrites every mutable field of p with the value from incoming.
// ID is never copied.
func (p *Player) MapFrom(incoming *Player) {
	p.FirstName = incoming.FirstName
	p.MiddleName = incoming.MiddleName
	p.LastName = incoming.LastName
	p.DateOfBirth = incoming.DateOfBirth
	p.SquadNumber = incoming.SquadNumber
	p.Position = incoming.Position
	p.AbbrPosition = incoming.AbbrPosition
	p.Team = incoming.Team
	p.League = incoming.League
	p.Starting11 = incoming.Starting11
}

// FullName joins the first, middle and last names
func (p *Player) FullName() string {
	name := p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	if p.LastName != "" {
		name += " " + p.LastName
	}
	return name
}
