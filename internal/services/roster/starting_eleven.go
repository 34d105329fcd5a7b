package roster

import "github.com/mcoot/players/internal/model"

// StartingEleven returns the lineup the store is seeded with.
// Each call returns a fresh slice.
func StartingEleven() []model.Player {
	return []model.Player{
		{
			ID: 1, FirstName: "Damián", MiddleName: "Emiliano", LastName: "Martínez",
			DateOfBirth: "1992-09-02", SquadNumber: 23, Position: "Goalkeeper", AbbrPosition: "GK",
			Team: "Aston Villa FC", League: "Premier League", Starting11: true,
		},
		{
			ID: 2, FirstName: "Nahuel", LastName: "Molina",
			DateOfBirth: "1998-04-06", SquadNumber: 26, Position: "Right-Back", AbbrPosition: "RB",
			Team: "Atlético Madrid", League: "La Liga", Starting11: true,
		},
		{
			ID: 3, FirstName: "Cristian", MiddleName: "Gabriel", LastName: "Romero",
			DateOfBirth: "1998-04-27", SquadNumber: 13, Position: "Centre-Back", AbbrPosition: "CB",
			Team: "Tottenham Hotspur", League: "Premier League", Starting11: true,
		},
		{
			ID: 4, FirstName: "Nicolás", MiddleName: "Hernán Gonzalo", LastName: "Otamendi",
			DateOfBirth: "1988-02-12", SquadNumber: 19, Position: "Centre-Back", AbbrPosition: "CB",
			Team: "SL Benfica", League: "Liga Portugal", Starting11: true,
		},
		{
			ID: 5, FirstName: "Nicolás", MiddleName: "Alejandro", LastName: "Tagliafico",
			DateOfBirth: "1992-08-31", SquadNumber: 3, Position: "Left-Back", AbbrPosition: "LB",
			Team: "Olympique Lyon", League: "Ligue 1", Starting11: true,
		},
		{
			ID: 6, FirstName: "Ángel", MiddleName: "Fabián", LastName: "Di María",
			DateOfBirth: "1988-02-14", SquadNumber: 11, Position: "Right Winger", AbbrPosition: "RW",
			Team: "SL Benfica", League: "Liga Portugal", Starting11: true,
		},
		{
			ID: 7, FirstName: "Rodrigo", MiddleName: "Javier", LastName: "de Paul",
			DateOfBirth: "1994-05-24", SquadNumber: 7, Position: "Central Midfield", AbbrPosition: "CM",
			Team: "Atlético Madrid", League: "La Liga", Starting11: true,
		},
		{
			ID: 8, FirstName: "Enzo", MiddleName: "Jeremías", LastName: "Fernández",
			DateOfBirth: "2001-01-17", SquadNumber: 24, Position: "Central Midfield", AbbrPosition: "CM",
			Team: "Chelsea FC", League: "Premier League", Starting11: true,
		},
		{
			ID: 9, FirstName: "Alexis", LastName: "Mac Allister",
			DateOfBirth: "1998-12-24", SquadNumber: 20, Position: "Central Midfield", AbbrPosition: "CM",
			Team: "Liverpool FC", League: "Premier League", Starting11: true,
		},
		{
			ID: 10, FirstName: "Lionel", MiddleName: "Andrés", LastName: "Messi",
			DateOfBirth: "1987-06-24", SquadNumber: 10, Position: "Right Winger", AbbrPosition: "RW",
			Team: "Inter Miami CF", League: "Major League Soccer", Starting11: true,
		},
		{
			ID: 11, FirstName: "Julián", LastName: "Álvarez",
			DateOfBirth: "2000-01-31", SquadNumber: 9, Position: "Centre-Forward", AbbrPosition: "CF",
			Team: "Manchester City", League: "Premier League", Starting11: true,
		},
	}
}
