package registry

import (
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// seedFacilities returns the fixed facility reference data installed on first
// run.
func seedFacilities() []domain.Facility {
	return []domain.Facility{
		{
			ID:          "1",
			Name:        domain.FacilityApoquindo,
			Address:     "Av. Apoquindo 4501, Las Condes",
			City:        "Santiago",
			Phone:       "+56 2 2345 6789",
			Responsible: "Carlos Mendoza",
			Active:      true,
			Rooms: []domain.Room{
				{
					ID:                  "1-1",
					Name:                "Sala Principal",
					FacilityID:          "1",
					MaxCapacity:         50,
					SecurityLevel:       domain.SecurityLevelCritical,
					RequiresSpecialAuth: true,
					Active:              true,
					CriticalEquipment:   []string{"Servidores Core", "Storage Principal", "Switches Backbone"},
				},
				{
					ID:                  "1-2",
					Name:                "Sala UPS",
					FacilityID:          "1",
					MaxCapacity:         10,
					SecurityLevel:       domain.SecurityLevelHigh,
					RequiresSpecialAuth: true,
					Active:              true,
				},
				{
					ID:                  "1-3",
					Name:                "Sala Climatización",
					FacilityID:          "1",
					MaxCapacity:         5,
					SecurityLevel:       domain.SecurityLevelMedium,
					RequiresSpecialAuth: false,
					Active:              true,
				},
			},
		},
		{
			ID:          "2",
			Name:        domain.FacilitySanMartin,
			Address:     "San Martín 123, Providencia",
			City:        "Santiago",
			Phone:       "+56 2 2345 6790",
			Responsible: "Ana Rodriguez",
			Active:      true,
			Rooms: []domain.Room{
				{
					ID:                  "2-1",
					Name:                "Sala A",
					FacilityID:          "2",
					MaxCapacity:         30,
					SecurityLevel:       domain.SecurityLevelHigh,
					RequiresSpecialAuth: true,
					Active:              true,
				},
				{
					ID:                  "2-2",
					Name:                "Sala B",
					FacilityID:          "2",
					MaxCapacity:         20,
					SecurityLevel:       domain.SecurityLevelMedium,
					RequiresSpecialAuth: false,
					Active:              true,
				},
			},
		},
		{
			ID:          "3",
			Name:        domain.FacilityMCIndependencia,
			Address:     "Av. Independencia 456",
			City:        "Santiago",
			Phone:       "+56 2 2345 6791",
			Responsible: "Luis Vargas",
			Active:      true,
			Rooms: []domain.Room{
				{
					ID:                  "3-1",
					Name:                "Sala Equipos",
					FacilityID:          "3",
					MaxCapacity:         15,
					SecurityLevel:       domain.SecurityLevelMedium,
					RequiresSpecialAuth: false,
					Active:              true,
				},
			},
		},
	}
}

// seedUsers returns the fixed operator accounts installed on first run.
func seedUsers(now time.Time) []domain.User {
	return []domain.User{
		{
			ID:                 "1",
			Username:           "admin",
			GivenName:          "Administrador",
			FamilyName:         "Sistema",
			Email:              "admin@datacenter.com",
			Role:               domain.RoleAdmin,
			AssignedFacilities: []string{"1", "2", "3"},
			Active:             true,
			CreatedAt:          now,
		},
		{
			ID:                 "2",
			Username:           "seguridad",
			GivenName:          "Personal",
			FamilyName:         "Seguridad",
			Email:              "seguridad@datacenter.com",
			Role:               domain.RoleSecurity,
			AssignedFacilities: []string{"1", "2"},
			Active:             true,
			CreatedAt:          now,
		},
	}
}
