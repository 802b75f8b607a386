package domain

var (
	MessageSuccessGetBusinessInfo   = "business information retrieved successfully"
	MessageSuccessGetBusinessHours  = "business hours retrieved successfully"
	MessageSuccessGetBusinessStatus = "business status retrieved successfully"
)

type (
	// BusinessHours is one weekday entry of the weekly schedule. Open and
	// Close are "HH:MM" local times. Schedules that cross midnight
	// (close before open) are not supported.
	BusinessHours struct {
		Day      string `json:"day"`
		Open     string `json:"open,omitempty"`
		Close    string `json:"close,omitempty"`
		IsClosed bool   `json:"is_closed,omitempty"`
	}

	BusinessSocial struct {
		Facebook    string `json:"facebook,omitempty"`
		Tripadvisor string `json:"tripadvisor,omitempty"`
	}

	BusinessInfoResponse struct {
		Name          string          `json:"name"`
		Address       string          `json:"address"`
		Phone         string          `json:"phone"`
		Email         string          `json:"email"`
		HygieneRating int             `json:"hygiene_rating"`
		GoogleMapsURL string          `json:"google_maps_url,omitempty"`
		Social        BusinessSocial  `json:"social"`
		Hours         []BusinessHours `json:"hours"`
	}

	BusinessStatusResponse struct {
		IsOpen bool   `json:"is_open"`
		Day    string `json:"day"`
		Time   string `json:"time"`
	}
)
