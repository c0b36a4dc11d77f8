package model

// College represents a single institution in the catalog.
type College struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Location         Location    `json:"location"`
	Ranking          int         `json:"ranking"` // lower is better
	Fees             FeeRange    `json:"fees"`
	Courses          []string    `json:"courses"`
	Facilities       []string    `json:"facilities"`
	ImageURL         string      `json:"imageUrl"`
	Description      string      `json:"description"`
	Website          string      `json:"website"`
	ContactInfo      ContactInfo `json:"contactInfo"`
	Reviews          []Review    `json:"reviews,omitempty"`
	AdmissionProcess string      `json:"admissionProcess,omitempty"`
	EstablishedYear  int         `json:"establishedYear,omitempty"`
}

// Location is the city/state pair a college is matched against.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// FeeRange is the annual fee band in rupees.
type FeeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ContactInfo holds the public contact details of a college.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Review is a single user review attached to a college.
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	User    string `json:"user"`
}

// CollegePatch is a shallow top-level patch for a College. A nil field leaves
// the stored value untouched; a non-nil field replaces it wholesale. Nested
// objects (location, fees, contactInfo) are never deep-merged.
type CollegePatch struct {
	Name             *string      `json:"name"`
	Location         *Location    `json:"location"`
	Ranking          *int         `json:"ranking"`
	Fees             *FeeRange    `json:"fees"`
	Courses          *[]string    `json:"courses"`
	Facilities       *[]string    `json:"facilities"`
	ImageURL         *string      `json:"imageUrl"`
	Description      *string      `json:"description"`
	Website          *string      `json:"website"`
	ContactInfo      *ContactInfo `json:"contactInfo"`
	Reviews          *[]Review    `json:"reviews"`
	AdmissionProcess *string      `json:"admissionProcess"`
	EstablishedYear  *int         `json:"establishedYear"`
}

// Apply merges the patch into c, field by field at the top level only.
func (p CollegePatch) Apply(c *College) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Ranking != nil {
		c.Ranking = *p.Ranking
	}
	if p.Fees != nil {
		c.Fees = *p.Fees
	}
	if p.Courses != nil {
		c.Courses = append([]string(nil), (*p.Courses)...)
	}
	if p.Facilities != nil {
		c.Facilities = append([]string(nil), (*p.Facilities)...)
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.ContactInfo != nil {
		c.ContactInfo = *p.ContactInfo
	}
	if p.Reviews != nil {
		c.Reviews = append([]Review(nil), (*p.Reviews)...)
	}
	if p.AdmissionProcess != nil {
		c.AdmissionProcess = *p.AdmissionProcess
	}
	if p.EstablishedYear != nil {
		c.EstablishedYear = *p.EstablishedYear
	}
}
