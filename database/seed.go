package database

import "github.com/s-204-cmd/Scholars-spotlight-india/model"

// SeedColleges returns the fixed default catalog used when no collection has
// been persisted yet. The ids "1".."5" are stable and referenced by the demo
// flows, so keep them as-is.
func SeedColleges() []model.College {
	return []model.College{
		{
			ID:   "1",
			Name: "Indian Institute of Technology Mumbai",
			Location: model.Location{
				City:  "Mumbai",
				State: "Maharashtra",
			},
			Ranking:    1,
			Fees:       model.FeeRange{Min: 200000, Max: 300000},
			Courses:    []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering"},
			Facilities: []string{"Library", "Sports Complex", "Laboratories", "Hostels"},
			ImageURL:   "https://images.unsplash.com/photo-1562774053-701939374585?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1486&q=80",
			Description: "IIT Mumbai is one of the premier engineering institutions in India, " +
				"known for its excellence in technical education and research.",
			Website: "https://www.iitb.ac.in",
			ContactInfo: model.ContactInfo{
				Phone:   "+91-22-25722545",
				Email:   "info@iitb.ac.in",
				Address: "IIT Bombay, Powai, Mumbai, Maharashtra 400076",
			},
			EstablishedYear: 1958,
		},
		{
			ID:   "2",
			Name: "Delhi University",
			Location: model.Location{
				City:  "Delhi",
				State: "Delhi",
			},
			Ranking:    2,
			Fees:       model.FeeRange{Min: 10000, Max: 50000},
			Courses:    []string{"Arts", "Science", "Commerce"},
			Facilities: []string{"Library", "Auditorium", "Sports Ground", "Cafeteria"},
			ImageURL:   "https://images.unsplash.com/photo-1492538368677-f6e0afe31dcc?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1470&q=80",
			Description: "Delhi University is a premier university in India, established in 1922. " +
				"It offers various undergraduate and postgraduate programs.",
			Website: "http://www.du.ac.in",
			ContactInfo: model.ContactInfo{
				Phone:   "+91-11-27667853",
				Email:   "info@du.ac.in",
				Address: "University of Delhi, Delhi 110007",
			},
			EstablishedYear: 1922,
		},
		{
			ID:   "3",
			Name: "St. Xavier's College",
			Location: model.Location{
				City:  "Mumbai",
				State: "Maharashtra",
			},
			Ranking:    5,
			Fees:       model.FeeRange{Min: 30000, Max: 80000},
			Courses:    []string{"Arts", "Science", "Mass Media"},
			Facilities: []string{"Library", "Auditorium", "Gymnasium", "Computer Labs"},
			ImageURL:   "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1470&q=80",
			Description: "St. Xavier's College is one of the oldest colleges in Mumbai, " +
				"offering a wide range of undergraduate and postgraduate programs.",
			Website: "https://xaviers.edu",
			ContactInfo: model.ContactInfo{
				Phone:   "+91-22-22620661",
				Email:   "info@xaviers.edu",
				Address: "5, Mahapalika Marg, Mumbai, Maharashtra 400001",
			},
			EstablishedYear: 1869,
		},
		{
			ID:   "4",
			Name: "National Institute of Technology Surathkal",
			Location: model.Location{
				City:  "Mangalore",
				State: "Karnataka",
			},
			Ranking:    10,
			Fees:       model.FeeRange{Min: 100000, Max: 150000},
			Courses:    []string{"Computer Science", "Electronics", "Civil Engineering"},
			Facilities: []string{"Library", "Sports Complex", "Hostels", "Research Centers"},
			ImageURL:   "https://images.unsplash.com/photo-1592303406503-53c0c8238029?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1415&q=80",
			Description: "NIT Surathkal is one of the top technical institutes in India, " +
				"offering technical education in various disciplines.",
			Website: "https://www.nitk.ac.in",
			ContactInfo: model.ContactInfo{
				Phone:   "+91-824-2474000",
				Email:   "info@nitk.ac.in",
				Address: "NH 66, Surathkal, Mangalore, Karnataka 575025",
			},
			EstablishedYear: 1960,
		},
		{
			ID:   "5",
			Name: "Lady Shri Ram College",
			Location: model.Location{
				City:  "Delhi",
				State: "Delhi",
			},
			Ranking:    8,
			Fees:       model.FeeRange{Min: 20000, Max: 60000},
			Courses:    []string{"Arts", "Commerce", "Social Sciences"},
			Facilities: []string{"Library", "Auditorium", "Sports Ground", "Labs"},
			ImageURL:   "https://images.unsplash.com/photo-1498243691581-b145c3f54a5a?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1470&q=80",
			Description: "Lady Shri Ram College is a premier women's college offering undergraduate " +
				"programs in humanities, social sciences, and commerce.",
			Website: "https://lsr.edu.in",
			ContactInfo: model.ContactInfo{
				Phone:   "+91-11-26434459",
				Email:   "info@lsr.edu.in",
				Address: "Lajpat Nagar IV, New Delhi, Delhi 110024",
			},
			EstablishedYear: 1956,
		},
	}
}

// DemoAccount pairs a fixed password with the user record it resolves to.
// This is mock authentication for the demo: plaintext by contract.
type DemoAccount struct {
	Password string
	User     model.User
}

// DemoAccounts returns the fixed credential table used by login.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{
			Password: "admin123",
			User: model.User{
				ID:             "admin1",
				Name:           "Admin User",
				Email:          "admin@example.com",
				Role:           model.RoleAdmin,
				ProfilePicture: "https://ui-avatars.com/api/?name=Admin+User&background=0C2340&color=fff",
			},
		},
		{
			Password: "user123",
			User: model.User{
				ID:                  "user1",
				Name:                "Priya Sharma",
				Email:               "priya@example.com",
				Role:                model.RoleUser,
				ProfilePicture:      "https://ui-avatars.com/api/?name=Priya+Sharma&background=8E793E&color=fff",
				AcademicBackground:  "Science",
				Percentage:          85,
				Stream:              "Engineering",
				Age:                 18,
				Gender:              "Female",
				ShortlistedColleges: []string{},
			},
		},
	}
}
