package team

import (
	"fmt"
	"strconv"
	"strings"
)

// Team is one competing team snapshot for a season.
type Team struct {
	Number       int    `json:"teamNumber"`
	NameFull     string `json:"nameFull"`
	NameShort    string `json:"nameShort"`
	City         string `json:"city,omitempty"`
	StateProv    string `json:"stateProv,omitempty"`
	Country      string `json:"country,omitempty"`
	RookieYear   int    `json:"rookieYear,omitempty"`
	RobotName    string `json:"robotName,omitempty"`
	School       string `json:"schoolName,omitempty"`
	Website      string `json:"website,omitempty"`
	DistrictCode string `json:"districtCode,omitempty"`
}

func (t Team) Validate() error {
	if t.Number <= 0 {
		return fmt.Errorf("team number must be positive")
	}
	return nil
}

// Avatar is the base64 PNG a team uploaded for a season.
type Avatar struct {
	TeamNumber int    `json:"teamNumber"`
	Encoded    string `json:"encodedAvatar"`
}

// NumberFromKey extracts the team number from a program-prefixed key such
// as "frc254". Keys with a trailing letter ("frc254B") are rejected.
func NumberFromKey(key string) (int, bool) {
	key = strings.TrimSpace(key)
	digits := strings.TrimLeftFunc(key, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Key renders the alternate-provider identifier for number.
func Key(number int) string {
	return "frc" + strconv.Itoa(number)
}
