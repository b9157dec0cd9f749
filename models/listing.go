package models

// ListingRow holds one unprocessed row of the listings file.
// Empty strings mark missing cells.
type ListingRow struct {
	ID        string
	Latitude  string
	Longitude string
	RoomType  string
	Price     string
}

// Room types with a dedicated marker color. Anything else is "other".
const (
	RoomTypeEntireHome  = "Entire home/apt"
	RoomTypePrivateRoom = "Private room"
)

// MarkerColor is the circle color used for a listing on the map.
type MarkerColor string

const (
	ColorRed    MarkerColor = "red"
	ColorGreen  MarkerColor = "green"
	ColorYellow MarkerColor = "yellow"
)

// Marker is a single point on the listings map.
// Popup is the original price text, formatting included.
type Marker struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Color     MarkerColor `json:"color"`
	Radius    float64     `json:"radius"`
	Popup     string      `json:"popup"`
}

// MarkerSet is everything the map page needs.
type MarkerSet struct {
	CenterLat float64  `json:"center_lat"`
	CenterLng float64  `json:"center_lng"`
	Zoom      int      `json:"zoom"`
	Markers   []Marker `json:"markers"`
	Skipped   int      `json:"skipped"`
}
