package weather

// Unit is the temperature unit a snapshot is expressed in.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// Snapshot is the last successfully fetched weather result shown by the widget.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	// Location is the place name resolved by the API, which may differ from the query.
	Location string `json:"location"`
	Unit     Unit   `json:"unit"`
}
