package domain

// Building is one campus building record.
//
// There is no enforced foreign key between buildings and power readings;
// readings reference buildings only through the zero-padded code embedded
// in their source_name.
type Building struct {
	BID              string  `json:"b_id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	Zipcode          string  `json:"zipcode"`
	Phone            string  `json:"phone_num"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ShapeCoordinates string  `json:"shape_coordinates"`
	ImageURL         string  `json:"image_url"`
	WebsiteURL       string  `json:"website_url"`
}
