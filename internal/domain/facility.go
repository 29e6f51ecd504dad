package domain

// FacilityName is the closed set of site display names.
type FacilityName string

const (
	FacilityApoquindo       FacilityName = "Data Center Apoquindo"
	FacilitySanMartin       FacilityName = "Data Center San Martin"
	FacilityMCIndependencia FacilityName = "MC Independencia"
	FacilityMCChiloe        FacilityName = "MC Chiloé"
	FacilityMCLaFlorida     FacilityName = "MC La Florida"
	FacilityMCProvidencia   FacilityName = "MC Providencia"
	FacilityMCManuelMontt   FacilityName = "MC Manuel Montt"
	FacilityMCPedroValdivia FacilityName = "MC Pedro de Valdivia"
)

// SecurityLevel orders room security requirements from low to critical.
type SecurityLevel string

const (
	SecurityLevelLow      SecurityLevel = "bajo"
	SecurityLevelMedium   SecurityLevel = "medio"
	SecurityLevelHigh     SecurityLevel = "alto"
	SecurityLevelCritical SecurityLevel = "critico"
)

var securityLevelRank = map[SecurityLevel]int{
	SecurityLevelLow:      0,
	SecurityLevelMedium:   1,
	SecurityLevelHigh:     2,
	SecurityLevelCritical: 3,
}

// AtLeast reports whether the level meets or exceeds the given minimum.
func (l SecurityLevel) AtLeast(min SecurityLevel) bool {
	return securityLevelRank[l] >= securityLevelRank[min]
}

// Facility is a named site hosting rooms. Reference data: seeded on first run
// and not mutated by the normal application flow.
type Facility struct {
	ID          string       `json:"id"`
	Name        FacilityName `json:"name"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Phone       string       `json:"phone"`
	Responsible string       `json:"responsible"`
	Active      bool         `json:"active"`
	Rooms       []Room       `json:"rooms"`
}

// Room belongs to exactly one facility.
type Room struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	FacilityID          string        `json:"facility_id"`
	MaxCapacity         int           `json:"max_capacity"`
	SecurityLevel       SecurityLevel `json:"security_level"`
	RequiresSpecialAuth bool          `json:"requires_special_auth"`
	Active              bool          `json:"active"`
	CriticalEquipment   []string      `json:"critical_equipment,omitempty"`
}
