package enum

// VehicleType classifies a vehicle as 2-wheeler or 4-wheeler
type VehicleType string

const (
	VehicleType2W VehicleType = "2W"
	VehicleType4W VehicleType = "4W"
)

// IsValid reports whether the value is a known vehicle type
func (v VehicleType) IsValid() bool {
	return v == VehicleType2W || v == VehicleType4W
}
