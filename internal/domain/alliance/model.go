package alliance

import "fmt"

// Selection is one playoff alliance as picked during alliance selection.
type Selection struct {
	Number  int    `json:"number"`
	Name    string `json:"name,omitempty"`
	Captain int    `json:"captain"`
	Round1  int    `json:"round1"`
	Round2  *int   `json:"round2,omitempty"`
	Round3  *int   `json:"round3,omitempty"`
	Backup  *int   `json:"backup,omitempty"`
}

func (s Selection) Validate() error {
	if s.Number <= 0 {
		return fmt.Errorf("alliance number must be positive")
	}
	if s.Captain <= 0 {
		return fmt.Errorf("alliance %d captain is required", s.Number)
	}
	if s.Round1 <= 0 {
		return fmt.Errorf("alliance %d first pick is required", s.Number)
	}
	return nil
}

// Teams lists captain first, then picks in order, then the backup.
func (s Selection) Teams() []int {
	out := []int{s.Captain, s.Round1}
	for _, pick := range []*int{s.Round2, s.Round3, s.Backup} {
		if pick != nil && *pick > 0 {
			out = append(out, *pick)
		}
	}
	return out
}
