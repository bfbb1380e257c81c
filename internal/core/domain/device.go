package domain

import "time"

// DeviceType is the kind of equipment a device record represents.
type DeviceType string

const (
	DeviceRouter        DeviceType = "router"
	DeviceFirewall      DeviceType = "firewall"
	DeviceSwitch        DeviceType = "switch"
	DeviceUTM           DeviceType = "utm"
	DeviceStudentDevice DeviceType = "student_device"
	DeviceServer        DeviceType = "server"
)

var deviceTypes = []string{
	string(DeviceRouter),
	string(DeviceFirewall),
	string(DeviceSwitch),
	string(DeviceUTM),
	string(DeviceStudentDevice),
	string(DeviceServer),
}

func (t DeviceType) Valid() bool { return contains(deviceTypes, string(t)) }

// DeviceStatusActive is the default status of a new device.
const DeviceStatusActive = "active"

// Position is the device's place on the topology canvas.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Device represents a piece of network equipment in the campus inventory
type Device struct {
	ID          string     `json:"id" bson:"id"`
	Name        string     `json:"name" bson:"name"`
	DeviceType  DeviceType `json:"device_type" bson:"device_type"`
	IPAddress   string     `json:"ip_address" bson:"ip_address"` // single address or CIDR
	Location    string     `json:"location" bson:"location"`
	Description string     `json:"description" bson:"description"`
	Status      string     `json:"status" bson:"status"`
	Position    Position   `json:"position" bson:"position"`
	Connections []string   `json:"connections" bson:"connections"` // neighbor labels, not checked
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// DeviceRequest is the payload for both creating and replacing a device.
type DeviceRequest struct {
	Name        *string    `json:"name" binding:"required" example:"Core Switch"`
	DeviceType  DeviceType `json:"device_type" binding:"required" example:"switch"`
	IPAddress   *string    `json:"ip_address" binding:"required" example:"192.168.1.20"`
	Location    *string    `json:"location" binding:"required" example:"Network Core"`
	Description *string    `json:"description" binding:"required" example:"Main campus network switch"`
	Status      string     `json:"status" example:"active"`
	Position    *Position  `json:"position"`
	Connections []string   `json:"connections"`
}

func (r DeviceRequest) Validate() error {
	switch {
	case r.Name == nil:
		return requiredError("name")
	case r.DeviceType == "":
		return requiredError("device_type")
	case r.IPAddress == nil:
		return requiredError("ip_address")
	case r.Location == nil:
		return requiredError("location")
	case r.Description == nil:
		return requiredError("description")
	}
	if !r.DeviceType.Valid() {
		return enumError("device_type", string(r.DeviceType), deviceTypes)
	}
	return nil
}

// NewDevice applies payload defaults. Identifier and creation time are left to the caller.
func (r DeviceRequest) NewDevice() Device {
	d := Device{
		Name:        deref(r.Name),
		DeviceType:  r.DeviceType,
		IPAddress:   deref(r.IPAddress),
		Location:    deref(r.Location),
		Description: deref(r.Description),
		Status:      r.Status,
		Connections: nonNil(r.Connections),
	}
	if d.Status == "" {
		d.Status = DeviceStatusActive
	}
	if r.Position != nil {
		d.Position = *r.Position
	}
	return d
}

// Replacement returns every mutable field of the device, defaults applied.
// A device update always overwrites all of them.
func (r DeviceRequest) Replacement() map[string]any {
	d := r.NewDevice()
	return map[string]any{
		"name":        d.Name,
		"device_type": d.DeviceType,
		"ip_address":  d.IPAddress,
		"location":    d.Location,
		"description": d.Description,
		"status":      d.Status,
		"position":    d.Position,
		"connections": d.Connections,
	}
}
