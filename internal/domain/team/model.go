package team

import "fmt"

// ID enumerates Overwatch League franchises.
type ID string

const (
	BostonUprising       ID = "BOSTON_UPRISING"
	DallasFuel           ID = "DALLAS_FUEL"
	HoustonOutlaws       ID = "HOUSTON_OUTLAWS"
	LondonSpitfire       ID = "LONDON_SPITFIRE"
	LosAngelesGladiators ID = "LOS_ANGELES_GLADIATORS"
	LosAngelesValiant    ID = "LOS_ANGELES_VALIANT"
	FloridaMayhem        ID = "FLORIDA_MAYHEM"
	NewYorkExcelsior     ID = "NEW_YORK_EXCELSIOR"
	PhiladelphiaFusion   ID = "PHILADELPHIA_FUSION"
	SanFranciscoShock    ID = "SAN_FRANCISCO_SHOCK"
	SeoulDynasty         ID = "SEOUL_DYNASTY"
	ShanghaiDragons      ID = "SHANGHAI_DRAGONS"
)

// Team is a franchise with its display name.
type Team struct {
	ID   ID
	Name string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

var teams = []Team{
	{ID: BostonUprising, Name: "Boston Uprising"},
	{ID: DallasFuel, Name: "Dallas Fuel"},
	{ID: HoustonOutlaws, Name: "Houston Outlaws"},
	{ID: LondonSpitfire, Name: "London Spitfire"},
	{ID: LosAngelesGladiators, Name: "Los Angeles Gladiators"},
	{ID: LosAngelesValiant, Name: "Los Angeles Valiant"},
	{ID: FloridaMayhem, Name: "Florida Mayhem"},
	{ID: NewYorkExcelsior, Name: "New York Excelsior"},
	{ID: PhiladelphiaFusion, Name: "Philadelphia Fusion"},
	{ID: SanFranciscoShock, Name: "San Francisco Shock"},
	{ID: SeoulDynasty, Name: "Seoul Dynasty"},
	{ID: ShanghaiDragons, Name: "Shanghai Dragons"},
}

var teamsByID = indexTeams(teams)

func indexTeams(items []Team) map[ID]Team {
	out := make(map[ID]Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}

// All returns every franchise in league order.
func All() []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

func Get(id ID) (Team, bool) {
	t, ok := teamsByID[id]
	return t, ok
}

// DisplayName falls back to the raw identifier for unknown teams.
func (id ID) DisplayName() string {
	if t, ok := teamsByID[id]; ok {
		return t.Name
	}
	return string(id)
}
