package domain

import "time"

// ShopSettings is a singleton record: shop identity, LINE integration ids
// and the operator allow-list.
type ShopSettings struct {
	Name      string
	Subtitle  string
	Logo      string
	LineID    string
	LiffID    string
	// AdminUserIDs is the allow-list of LINE user ids permitted to operate
	// the administrative console
	AdminUserIDs []string
	UpdatedAt    time.Time
}

// IsAdmin reports whether the given LINE user id is on the allow-list
func (s *ShopSettings) IsAdmin(lineUserID string) bool {
	for _, id := range s.AdminUserIDs {
		if id == lineUserID {
			return true
		}
	}
	return false
}
