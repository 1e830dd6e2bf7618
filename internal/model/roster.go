package model

// DefaultRoster returns the static player fixture: the roster-origin
// players plus the free agent pool, all starting as Cut with no
// exceptions applied. Callers receive a fresh copy on every call.
//
// Vet Min eligibility follows the under-5 Q-Pts rule; Bird Rights only
// exist on roster-origin players.
func DefaultRoster() []Player {
	players := make([]Player, len(rosterFixture))
	copy(players, rosterFixture)
	for i := range players {
		players[i].Status = StatusCut
	}
	return players
}

var rosterFixture = []Player{
	// Roster-origin players (2024-25 Knicks)
	{ID: 1, Name: "Jalen Brunson", Number: 11, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 25_000_000, QualityPoints: 18, IsStar: true, IsRosterOrigin: true, BirdEligible: true},
	{ID: 2, Name: "Karl-Anthony Towns", Number: 32, Position: "Center", Group: PositionGroupCenter,
		Salary: 49_200_000, QualityPoints: 17, IsStar: true, IsRosterOrigin: true},
	{ID: 3, Name: "Mikal Bridges", Number: 25, Position: "Small Forward", Group: PositionGroupForward,
		Salary: 23_300_000, QualityPoints: 15, IsStar: true, IsRosterOrigin: true},
	{ID: 4, Name: "OG Anunoby", Number: 8, Position: "Power Forward", Group: PositionGroupForward,
		Salary: 36_600_000, QualityPoints: 12, IsRosterOrigin: true},
	{ID: 5, Name: "Josh Hart", Number: 3, Position: "Shooting Guard", Group: PositionGroupGuard,
		Salary: 18_100_000, QualityPoints: 10, IsRosterOrigin: true, BirdEligible: true},
	{ID: 6, Name: "Mitchell Robinson", Number: 23, Position: "Center", Group: PositionGroupCenter,
		Salary: 14_300_000, QualityPoints: 8, IsRosterOrigin: true, BirdEligible: true},
	{ID: 7, Name: "Miles McBride", Number: 2, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 13_000_000, QualityPoints: 7, IsRosterOrigin: true, BirdEligible: true, MLEEligible: true},
	{ID: 8, Name: "Precious Achiuwa", Number: 5, Position: "Power Forward", Group: PositionGroupForward,
		Salary: 6_000_000, QualityPoints: 5, IsRosterOrigin: true, MLEEligible: true},
	{ID: 9, Name: "Cam Payne", Number: 1, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 3_100_000, QualityPoints: 4, IsRosterOrigin: true, VetMinEligible: true, MLEEligible: true},
	{ID: 10, Name: "Jericho Sims", Number: 20, Position: "Center", Group: PositionGroupCenter,
		Salary: 2_000_000, QualityPoints: 3, IsRosterOrigin: true, BirdEligible: true, VetMinEligible: true, MLEEligible: true},
	{ID: 11, Name: "Tyler Kolek", Number: 13, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 2_000_000, QualityPoints: 3, IsRosterOrigin: true, VetMinEligible: true, MLEEligible: true},
	{ID: 12, Name: "Pacome Dadiet", Number: 4, Position: "Small Forward", Group: PositionGroupForward,
		Salary: 3_100_000, QualityPoints: 3, IsRosterOrigin: true, VetMinEligible: true, MLEEligible: true},

	// Free agents
	{ID: 101, Name: "LeBron James", Number: 23, Position: "Small Forward", Group: PositionGroupForward,
		Salary: 50_000_000, QualityPoints: 18, IsStar: true, Marquee: true},
	{ID: 102, Name: "Stephen Curry", Number: 30, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 55_000_000, QualityPoints: 18, IsStar: true, Marquee: true},
	{ID: 103, Name: "Jimmy Butler", Number: 22, Position: "Small Forward", Group: PositionGroupForward,
		Salary: 48_000_000, QualityPoints: 16, IsStar: true},
	{ID: 104, Name: "Damian Lillard", Number: 0, Position: "Point Guard", Group: PositionGroupGuard,
		Salary: 45_000_000, QualityPoints: 15, IsStar: true},
	{ID: 105, Name: "Malik Monk", Number: 0, Position: "Shooting Guard", Group: PositionGroupGuard,
		Salary: 20_000_000, QualityPoints: 9, MLEEligible: true},
	{ID: 106, Name: "Brook Lopez", Number: 11, Position: "Center", Group: PositionGroupCenter,
		Salary: 23_000_000, QualityPoints: 9, MLEEligible: true},
	{ID: 107, Name: "Gary Trent Jr.", Number: 33, Position: "Shooting Guard", Group: PositionGroupGuard,
		Salary: 18_000_000, QualityPoints: 8, MLEEligible: true},
	{ID: 108, Name: "Taj Gibson", Number: 67, Position: "Power Forward", Group: PositionGroupForward,
		Salary: 2_500_000, QualityPoints: 2, VetMinEligible: true},
	{ID: 109, Name: "Garrison Mathews", Number: 25, Position: "Shooting Guard", Group: PositionGroupGuard,
		Salary: 2_200_000, QualityPoints: 2, VetMinEligible: true},
	{ID: 110, Name: "DeAndre Jordan", Number: 6, Position: "Center", Group: PositionGroupCenter,
		Salary: 2_000_000, QualityPoints: 2, VetMinEligible: true},
}
