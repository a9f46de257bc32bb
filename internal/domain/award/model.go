package award

// Award is one award a team received at an event.
type Award struct {
	AwardID    int    `json:"awardId"`
	TeamNumber int    `json:"teamNumber"`
	EventCode  string `json:"eventCode"`
	Name       string `json:"name"`
	Series     int    `json:"series"`
	Person     string `json:"person,omitempty"`
}
