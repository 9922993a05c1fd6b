package domain

// Sensor is the reference metadata row for one meter, read-only from this
// service's perspective.
type Sensor struct {
	SensorID    string `json:"sensor_id"`
	Type        string `json:"sensor_type"`
	Site        string `json:"site"`
	Protocol    string `json:"protocol"`
	Description string `json:"description"`
	ClusterID   string `json:"cluster_id"`
}
