package services

import (
	"sort"
	"sync"
	"time"

	"magicalc/internal/models"
)

// HouseInfo is the display catalog entry for one house.
type HouseInfo struct {
	Name   string
	Color  string
	Icon   string
	Points int
}

// houseCatalog carries each house's display data and its starting
// standings points.
var houseCatalog = map[models.House]HouseInfo{
	models.HouseGryffindor: {Name: "Gryffindor", Color: "#740001", Icon: "🦁", Points: 350},
	models.HouseSlytherin:  {Name: "Slytherin", Color: "#1a472a", Icon: "🐍", Points: 320},
	models.HouseRavenclaw:  {Name: "Ravenclaw", Color: "#0e1a40", Icon: "🦅", Points: 280},
	models.HouseHufflepuff: {Name: "Hufflepuff", Color: "#ecb939", Icon: "🦡", Points: 260},
}

// houseMessages holds the three flavor messages per house; the sorting
// ceremony picks one uniformly.
var houseMessages = map[models.House][3]string{
	models.HouseGryffindor: {
		"Gryffindor! Yes, that is where you will find true friends. Bravery runs strong in you!",
		"Gryffindor values courage and nobility. Your deeds speak for themselves!",
		"Aha, Gryffindor! Home of the boldest wizards!",
	},
	models.HouseSlytherin: {
		"Slytherin! You will achieve great things, yes... great things!",
		"Slytherin values ambition and cunning. You will feel right at home!",
		"Slytherin! The house where great leaders are born!",
	},
	models.HouseRavenclaw: {
		"Ravenclaw! Where wit and learning are prized. Your mind will be appreciated!",
		"In Ravenclaw you will find kindred spirits in the pursuit of knowledge!",
		"Ravenclaw! The house of the sharpest and most perceptive!",
	},
	models.HouseHufflepuff: {
		"Hufflepuff! Where loyalty and hard work are valued. You will be a wonderful friend!",
		"In Hufflepuff you will find true friendship and support!",
		"Hufflepuff! The most just and loyal house of all!",
	},
}

// tournamentEnd is the fixed end of the house tournament.
var tournamentEnd = time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)

// HouseStanding is one row of the tournament standings.
type HouseStanding struct {
	House  models.House
	Info   HouseInfo
	Points int
}

// Standings tracks the event-layer house points. Unlike accounts it is
// in-memory state of the running session, like the legacy standings were.
type Standings struct {
	mu     sync.Mutex
	points map[models.House]int
}

// NewStandings starts the standings from the catalog's seed points.
func NewStandings() *Standings {
	points := make(map[models.House]int, len(houseCatalog))
	for house, info := range houseCatalog {
		points[house] = info.Points
	}
	return &Standings{points: points}
}

// Add adjusts a house's points. Unknown houses are ignored.
func (s *Standings) Add(house models.House, points int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.points[house]; !ok {
		return false
	}
	s.points[house] += points
	return true
}

// Snapshot returns the standings ordered by points, highest first.
func (s *Standings) Snapshot() []HouseStanding {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]HouseStanding, 0, len(s.points))
	for _, house := range models.Houses {
		rows = append(rows, HouseStanding{House: house, Info: houseCatalog[house], Points: s.points[house]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
	return rows
}

// TournamentCountdown is the time remaining until the tournament ends,
// broken into display units. All zero once the tournament is over.
type TournamentCountdown struct {
	Days, Hours, Minutes, Seconds int
}

// CountdownAt computes the tournament countdown at the given instant.
func CountdownAt(now time.Time) TournamentCountdown {
	diff := tournamentEnd.Sub(now)
	if diff <= 0 {
		return TournamentCountdown{}
	}
	return TournamentCountdown{
		Days:    int(diff.Hours()) / 24,
		Hours:   int(diff.Hours()) % 24,
		Minutes: int(diff.Minutes()) % 60,
		Seconds: int(diff.Seconds()) % 60,
	}
}

// HouseCatalog returns the display entry for a house.
func HouseCatalog(house models.House) (HouseInfo, bool) {
	info, ok := houseCatalog[house]
	return info, ok
}
