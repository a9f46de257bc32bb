package tba

type eventItem struct {
	Key             string        `json:"key"`
	EventCode       string        `json:"event_code"`
	Name            string        `json:"name"`
	EventTypeString string        `json:"event_type_string"`
	City            string        `json:"city"`
	Country         string        `json:"country"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	District        *districtItem `json:"district"`
}

type districtItem struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"display_name"`
}

type matchItem struct {
	Key            string                  `json:"key"`
	CompLevel      string                  `json:"comp_level"`
	SetNumber      int                     `json:"set_number"`
	MatchNumber    int                     `json:"match_number"`
	Alliances      map[string]allianceSlot `json:"alliances"`
	Time           *int64                  `json:"time"`
	ActualTime     *int64                  `json:"actual_time"`
	PredictedTime  *int64                  `json:"predicted_time"`
	PostResultTime *int64                  `json:"post_result_time"`
	ScoreBreakdown map[string]any          `json:"score_breakdown"`
	Videos         []videoItem             `json:"videos"`
}

type allianceSlot struct {
	Score             *int     `json:"score"`
	TeamKeys          []string `json:"team_keys"`
	SurrogateTeamKeys []string `json:"surrogate_team_keys"`
	DQTeamKeys        []string `json:"dq_team_keys"`
}

type videoItem struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

type teamItem struct {
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname"`
	Name       string `json:"name"`
	City       string `json:"city"`
	StateProv  string `json:"state_prov"`
	Country    string `json:"country"`
	RookieYear int    `json:"rookie_year"`
	SchoolName string `json:"school_name"`
	Website    string `json:"website"`
}

type rankingsEnvelope struct {
	Rankings []rankingItem `json:"rankings"`
}

type rankingItem struct {
	TeamKey       string     `json:"team_key"`
	Rank          int        `json:"rank"`
	SortOrders    []float64  `json:"sort_orders"`
	Record        *wltRecord `json:"record"`
	QualAverage   *float64   `json:"qual_average"`
	DQ            int        `json:"dq"`
	MatchesPlayed int        `json:"matches_played"`
}

type wltRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

type allianceItem struct {
	Name   string       `json:"name"`
	Picks  []string     `json:"picks"`
	Backup *backupEntry `json:"backup"`
}

type backupEntry struct {
	In  string `json:"in"`
	Out string `json:"out"`
}
