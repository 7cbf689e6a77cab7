package records

import (
	"fmt"
	"math/rand"
)

// Vocabulary pools for generated technology fixtures.
var (
	genreOptions = []string{"AI", "Biotech", "IoT", "Cybersecurity", "Cloud Computing"}

	innovatorsList = []string{
		"Alice Johnson",
		"Bob Smith",
		"Charlie Davis",
		"David Lee",
		"Emma Brown",
		"Frank Wilson",
		"Grace Adams",
		"Hannah White",
	}

	overviews = []string{
		"This technology is designed to revolutionize the industry with its innovative approach and robust performance.",
		"An industry-leading solution that combines state-of-the-art algorithms with intuitive design.",
		"Engineered for excellence, this technology offers unparalleled efficiency and precision in its domain.",
		"A breakthrough in its field, delivering both scalability and reliability.",
		"A cutting-edge innovation that sets new standards for performance and usability.",
	}

	detailedDescriptions = []string{
		"In this technology, advanced data analytics, machine learning models, and a user-centric design come together to solve complex problems.",
		"This comprehensive platform provides deep insights by integrating sophisticated algorithms with real-time data processing.",
		"Standing at the forefront of modern innovation, this technology leverages the latest advancements in automation and artificial intelligence.",
		"Developed with a keen eye on sustainability and operational excellence, this solution delivers a blend of innovative features and proven performance.",
		"By combining cutting-edge research with practical implementation, this product bridges the gap between theoretical potential and real-world application.",
	}

	advantagesList = []string{
		"Enhanced performance and speed",
		"Cost-effective scalability",
		"Intuitive user interface",
		"Robust security measures",
		"Flexible integration",
		"Real-time data processing",
	}

	applicationsList = []string{
		"Healthcare analytics",
		"Financial risk assessment",
		"Manufacturing optimization",
		"Smart city infrastructure",
		"Retail customer insights",
		"Educational technology enhancements",
	}

	useCasesList = []string{
		"Predictive maintenance in industrial setups",
		"Automated fraud detection in finance",
		"Personalized marketing campaigns",
		"Real-time monitoring in smart homes",
		"Optimized supply chain management",
	}

	relatedLinksList = []Record{
		{"title": "Official Documentation", "url": "https://example.com/docs"},
		{"title": "Product Demo", "url": "https://example.com/demo"},
		{"title": "Case Study", "url": "https://example.com/case-study"},
		{"title": "Whitepaper", "url": "https://example.com/whitepaper"},
	}

	technicalSpecs = []string{
		"Version: 1.0; Release Date: 2023-01-01; Compatibility: Cross-platform",
		"Version: 2.0; Release Date: 2023-06-15; Compatibility: Windows, macOS, Linux",
		"Version: 3.1; Release Date: 2024-02-20; Compatibility: Web, Mobile",
	}
)

const (
	seedTechnologyCount = 1000
	docketBase          = 26179
)

// GenerateTechnologies produces the technology seed dataset: deterministic
// structure, randomized content drawn from r. The shape is stable across runs;
// byte-for-byte reproducibility requires a seeded source.
func GenerateTechnologies(r *rand.Rand) []Record {
	out := make([]Record, 0, seedTechnologyCount)
	for i := 0; i < seedTechnologyCount; i++ {
		out = append(out, Record{
			"id":                      fmt.Sprintf("%d", i),
			"name":                    fmt.Sprintf("Technology %d", i+1),
			"description":             fmt.Sprintf("A brief summary for Technology %d.", i+1),
			"overview":                overviews[i%len(overviews)],
			"detailedDescription":     detailedDescriptions[i%len(detailedDescriptions)],
			"genre":                   genreOptions[i%len(genreOptions)],
			"docket":                  fmt.Sprintf("Technology / %dJ", docketBase+i),
			"innovators":              joinInnovators(r),
			"advantages":              sampleStrings(r, advantagesList, 3),
			"applications":            sampleStrings(r, applicationsList, 3),
			"useCases":                sampleStrings(r, useCasesList, 2),
			"relatedLinks":            sampleLinks(r, relatedLinksList, 2),
			"technicalSpecifications": technicalSpecs[i%len(technicalSpecs)],
			"trl":                     r.Intn(9) + 1,
		})
	}
	return out
}

// GenerateEvents produces the fixed ten-event seed dataset.
func GenerateEvents() []Record {
	return []Record{
		{
			"id":               "1",
			"eventTitle":       "AI Summit",
			"fieldCategory":    "Artificial Intelligence",
			"briefDescription": "Exploring the latest AI trends and breakthroughs.",
			"knowMoreLink":     "https://example.com/ai-summit",
			"venue":            "Tech Park, Hall A",
			"eventDate":        "03/02/2025",
			"startTime":        "11:10 AM",
			"endTime":          "12:10 PM",
		},
		{
			"id":               "2",
			"eventTitle":       "Blockchain Expo",
			"fieldCategory":    "Blockchain",
			"briefDescription": "Showcasing innovative blockchain solutions.",
			"knowMoreLink":     "https://example.com/blockchain-expo",
			"venue":            "Downtown Convention Center",
			"eventDate":        "04/10/2025",
			"startTime":        "10:00 AM",
			"endTime":          "12:00 PM",
		},
		{
			"id":               "3",
			"eventTitle":       "Web Dev Conference",
			"fieldCategory":    "Web Development",
			"briefDescription": "Latest trends in front-end and back-end web tech.",
			"knowMoreLink":     "https://example.com/webdev-conference",
			"venue":            "Main Auditorium, City Hall",
			"eventDate":        "05/05/2025",
			"startTime":        "09:00 AM",
			"endTime":          "10:30 AM",
		},
		{
			"id":               "4",
			"eventTitle":       "IoT Innovations",
			"fieldCategory":    "IoT",
			"briefDescription": "Connecting everything, everywhere.",
			"knowMoreLink":     "https://example.com/iot-innovations",
			"venue":            "Tech Hub Arena",
			"eventDate":        "06/11/2025",
			"startTime":        "01:00 PM",
			"endTime":          "02:30 PM",
		},
		{
			"id":               "5",
			"eventTitle":       "Data Science Workshop",
			"fieldCategory":    "Data Science",
			"briefDescription": "Hands-on sessions with real-world datasets.",
			"knowMoreLink":     "https://example.com/data-science-workshop",
			"venue":            "Innovation Lab",
			"eventDate":        "07/15/2025",
			"startTime":        "10:00 AM",
			"endTime":          "11:45 AM",
		},
		{
			"id":               "6",
			"eventTitle":       "Cybersecurity Forum",
			"fieldCategory":    "Cybersecurity",
			"briefDescription": "Latest tactics to combat cyber threats.",
			"knowMoreLink":     "https://example.com/cybersecurity-forum",
			"venue":            "Security HQ",
			"eventDate":        "08/20/2025",
			"startTime":        "09:30 AM",
			"endTime":          "11:00 AM",
		},
		{
			"id":               "7",
			"eventTitle":       "Machine Learning Meetup",
			"fieldCategory":    "Machine Learning",
			"briefDescription": "Showcasing advanced ML algorithms.",
			"knowMoreLink":     "https://example.com/ml-meetup",
			"venue":            "Techies Co-working Space",
			"eventDate":        "09/01/2025",
			"startTime":        "02:00 PM",
			"endTime":          "04:00 PM",
		},
		{
			"id":               "8",
			"eventTitle":       "Robotics Expo",
			"fieldCategory":    "Robotics",
			"briefDescription": "Robots of the future, today.",
			"knowMoreLink":     "https://example.com/robotics-expo",
			"venue":            "Robotics Lab, Hall 1",
			"eventDate":        "10/10/2025",
			"startTime":        "10:00 AM",
			"endTime":          "12:00 PM",
		},
		{
			"id":               "9",
			"eventTitle":       "DevOps Connect",
			"fieldCategory":    "DevOps",
			"briefDescription": "Bridging development and operations seamlessly.",
			"knowMoreLink":     "https://example.com/devops-connect",
			"venue":            "Dev Center",
			"eventDate":        "11/11/2025",
			"startTime":        "03:00 PM",
			"endTime":          "05:00 PM",
		},
		{
			"id":               "10",
			"eventTitle":       "Mobile Dev Hackathon",
			"fieldCategory":    "Mobile Development",
			"briefDescription": "Rapid app development challenge.",
			"knowMoreLink":     "https://example.com/mobile-dev-hack",
			"venue":            "Hackathon Arena",
			"eventDate":        "12/05/2025",
			"startTime":        "08:00 AM",
			"endTime":          "08:00 PM",
		},
	}
}

// joinInnovators picks 1-3 names (repeats allowed) joined with " / ".
func joinInnovators(r *rand.Rand) string {
	count := r.Intn(3) + 1
	joined := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			joined += " / "
		}
		joined += innovatorsList[r.Intn(len(innovatorsList))]
	}
	return joined
}

// sampleStrings picks count distinct elements in random order.
func sampleStrings(r *rand.Rand, pool []string, count int) []string {
	out := make([]string, 0, count)
	for _, idx := range r.Perm(len(pool))[:count] {
		out = append(out, pool[idx])
	}
	return out
}

func sampleLinks(r *rand.Rand, pool []Record, count int) []Record {
	out := make([]Record, 0, count)
	for _, idx := range r.Perm(len(pool))[:count] {
		out = append(out, pool[idx])
	}
	return out
}
