package frcapi

type scheduleEnvelope struct {
	Schedule []scheduleItem `json:"Schedule"`
}

type scheduleItem struct {
	Field           string         `json:"field"`
	TournamentLevel string         `json:"tournamentLevel"`
	Description     string         `json:"description"`
	StartTime       string         `json:"startTime"`
	MatchNumber     int            `json:"matchNumber"`
	Teams           []scheduleTeam `json:"teams"`
}

type scheduleTeam struct {
	TeamNumber int    `json:"teamNumber"`
	Station    string `json:"station"`
	Surrogate  bool   `json:"surrogate"`
}

type matchesEnvelope struct {
	Matches []matchItem `json:"Matches"`
}

type matchItem struct {
	IsReplay        *bool       `json:"isReplay"`
	MatchVideoLink  *string     `json:"matchVideoLink"`
	Description     string      `json:"description"`
	MatchNumber     int         `json:"matchNumber"`
	ScoreRedFinal   *int        `json:"scoreRedFinal"`
	ScoreRedFoul    *int        `json:"scoreRedFoul"`
	ScoreRedAuto    *int        `json:"scoreRedAuto"`
	ScoreBlueFinal  *int        `json:"scoreBlueFinal"`
	ScoreBlueFoul   *int        `json:"scoreBlueFoul"`
	ScoreBlueAuto   *int        `json:"scoreBlueAuto"`
	AutoStartTime   string      `json:"autoStartTime"`
	ActualStartTime string      `json:"actualStartTime"`
	TournamentLevel string      `json:"tournamentLevel"`
	PostResultTime  string      `json:"postResultTime"`
	Teams           []matchTeam `json:"teams"`
}

type matchTeam struct {
	TeamNumber int    `json:"teamNumber"`
	Station    string `json:"station"`
	DQ         bool   `json:"dq"`
}

type scoresEnvelope struct {
	MatchScores []map[string]any `json:"MatchScores"`
}

type eventsEnvelope struct {
	Events []eventItem `json:"Events"`
}

type eventItem struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DistrictCode string `json:"districtCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
	DateStart    string `json:"dateStart"`
	DateEnd      string `json:"dateEnd"`
}

type districtsEnvelope struct {
	Districts []districtItem `json:"districts"`
}

type districtItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type teamsEnvelope struct {
	Teams          []teamItem `json:"teams"`
	TeamCountTotal int        `json:"teamCountTotal"`
	TeamCountPage  int        `json:"teamCountPage"`
	PageCurrent    int        `json:"pageCurrent"`
	PageTotal      int        `json:"pageTotal"`
}

type teamItem struct {
	TeamNumber   int    `json:"teamNumber"`
	NameFull     string `json:"nameFull"`
	NameShort    string `json:"nameShort"`
	City         string `json:"city"`
	StateProv    string `json:"stateProv"`
	Country      string `json:"country"`
	RookieYear   int    `json:"rookieYear"`
	RobotName    string `json:"robotName"`
	DistrictCode string `json:"districtCode"`
	SchoolName   string `json:"schoolName"`
	Website      string `json:"website"`
}

type avatarsEnvelope struct {
	Teams []avatarItem `json:"teams"`
}

type avatarItem struct {
	TeamNumber    int     `json:"teamNumber"`
	EncodedAvatar *string `json:"encodedAvatar"`
}

type awardsEnvelope struct {
	Awards []awardItem `json:"Awards"`
}

type awardItem struct {
	AwardID    int     `json:"awardId"`
	EventCode  string  `json:"eventCode"`
	Name       string  `json:"name"`
	Series     int     `json:"series"`
	TeamNumber int     `json:"teamNumber"`
	Person     *string `json:"person"`
}

type rankingsEnvelope struct {
	Rankings []rankingItem `json:"Rankings"`
}

type rankingItem struct {
	Rank          int     `json:"rank"`
	TeamNumber    int     `json:"teamNumber"`
	SortOrder1    float64 `json:"sortOrder1"`
	SortOrder2    float64 `json:"sortOrder2"`
	SortOrder3    float64 `json:"sortOrder3"`
	SortOrder4    float64 `json:"sortOrder4"`
	SortOrder5    float64 `json:"sortOrder5"`
	SortOrder6    float64 `json:"sortOrder6"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	QualAverage   float64 `json:"qualAverage"`
	DQ            int     `json:"dq"`
	MatchesPlayed int     `json:"matchesPlayed"`
}

type alliancesEnvelope struct {
	Alliances []allianceItem `json:"Alliances"`
}

type allianceItem struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Captain int    `json:"captain"`
	Round1  int    `json:"round1"`
	Round2  *int   `json:"round2"`
	Round3  *int   `json:"round3"`
	Backup  *int   `json:"backup"`
}
