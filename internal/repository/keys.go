package repository

// Fixed blob-store keys, one per collection. Each key holds the whole
// collection serialized as a JSON array.
const (
	entriesKey    = "datacenter_registros"
	facilitiesKey = "datacenter_locations"
	usersKey      = "datacenter_usuarios"
)
