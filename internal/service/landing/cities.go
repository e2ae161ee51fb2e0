package landing

import "github.com/Temutjin2k/wtl-cabs/internal/domain/models"

const (
	wtlPhone   = "+91 91120 85055"
	wtlPhone2  = "+91 91300 30054"
	wtlWebsite = "https://www.worldtriplink.com"
)

func defaultCities() map[string]models.CityPage {
	gondia := gondiaPage()
	return map[string]models.CityPage{
		gondia.Slug: gondia,
	}
}

func gondiaPage() models.CityPage {
	return models.CityPage{
		Slug:      "Cab-Service-Gondia",
		City:      "Gondia",
		HeroImage: "/images/gondia.jpg",
		Headline:  "Gondia Cab Booking",
		Title:     "Best Cab Services in Gondia",
		Intro: "When you need reliable and affordable cab services in Gondia, Worldtriplink (WTL) is here to offer you an unbeatable experience. " +
			"Whether you're looking for a Pune to Gondia cab service, exploring local city-to-city tour packages, or need transportation for business or leisure, " +
			"WTL is the go-to provider for all your travel needs.",
		Highlights: []models.Card{
			{Title: "Pune to Gondia", Body: "Reliable and comfortable cab services from Pune to Gondia with experienced drivers."},
			{Title: "City Tours", Body: "Explore Gondia with our local city-to-city tour packages and sightseeing services."},
			{Title: "Business Travel", Body: "Professional transportation services for business and corporate travel needs."},
		},
		Features: []models.Card{
			{
				Title: "Reliable Services",
				Body: "Reliability is at the heart of our services. Our fleet of well-maintained vehicles and experienced drivers ensure that your trips, " +
					"whether it's a Pune to Gondia cab service or any other destination, are timely and dependable.",
			},
			{
				Title: "Affordable Pricing",
				Body: "We offer competitive pricing for our cab services in Gondia. From Pune to Gondia and Gondia to Pune, our rates are transparent, " +
					"with no hidden charges.",
			},
		},
		RouteCards: []models.Card{
			{
				Title: "Pune to Gondia Cab Service",
				Body: "Traveling from Pune to Gondia can often be time-consuming, but with WTL's Pune to Gondia cab service, you can enjoy a comfortable " +
					"and hassle-free ride. Our service ensures punctuality, 24/7 availability, and customized travel packages.",
			},
			{
				Title: "Gondia to Pune Cab Services",
				Body: "Once you've completed your visit to Gondia, Gondia to Pune cab services from WTL ensure a smooth return journey. " +
					"Our fleet of well-maintained vehicles and professional drivers make your journey comfortable and safe.",
			},
		},
		Routes: []models.RouteFare{
			{Route: "Pune to Gondia", DistanceKm: 330, CabType: "Sedan (Compact)", PriceINR: 6500},
			{Route: "Pune to Gondia", DistanceKm: 330, CabType: "SUV (Luxury)", PriceINR: 9000},
			{Route: "Gondia to Pune", DistanceKm: 330, CabType: "Sedan (Compact)", PriceINR: 6500},
			{Route: "Gondia to Pune", DistanceKm: 330, CabType: "SUV (Luxury)", PriceINR: 9000},
		},
		PricingNote: "Note: Prices are indicative and may vary depending on availability, time of year, and demand.",
		About: "Worldtriplink (WTL) was established in 2016 in Pune with a mission to offer reliable and convenient travel services across India. " +
			"Since our inception, we have grown to become a leading provider of outstation cab services, employee transportation, " +
			"daily pick-up & drop services, and hotel & flight bookings.",
		Counters: []models.CounterSpec{
			{Target: 30, Label: "Personal Cabs operating across India", Color: "blue"},
			{Target: 500, Label: "Registered Cabs in our fleet", Color: "green"},
			{Target: 100, Label: "Cities Covered with reliable services", Color: "purple"},
			{Target: 50, Label: "Corporate Clients served", Color: "orange"},
		},
		FAQs: []models.FAQ{
			{
				Question: "How do I book a cab from Pune to Gondia?",
				Answer: "Booking a Pune to Gondia cab service is simple! You can book online through our website, or you can give us a call to speak " +
					"with our customer support team. Our booking process is quick and easy.",
			},
			{
				Question: "What types of cabs are available for the Pune to Gondia route?",
				Answer:   "We offer a wide variety of cabs for your journey, including compact sedans and luxury SUVs. Choose the vehicle that best suits your needs.",
			},
			{
				Question: "How much does a cab service from Gondia to Pune cost?",
				Answer:   "Our Gondia to Pune cab service starts at INR 6,500 for a standard sedan. Pricing may vary based on the vehicle type and time of booking.",
			},
			{
				Question: "Are your drivers trained and experienced?",
				Answer:   "Yes, all our drivers are professionally trained, licensed, and knowledgeable about the routes to ensure a safe and comfortable journey.",
			},
			{
				Question: "Do you offer local city-to-city tour packages in Gondia?",
				Answer: "Yes, we offer customized local city-to-city tour packages in Gondia. Let us know your preferences, and we will arrange " +
					"the perfect itinerary for you.",
			},
			{
				Question: "Do you offer hotel and flight services as well?",
				Answer: "Yes, alongside outstation cab services, we also offer hotel and flight booking services, providing you with a complete " +
					"travel solution.",
			},
		},
		ContactNote: "Experience the best cab service in Gondia with our professional and reliable transportation solutions.",
		Phones:      []string{wtlPhone, wtlPhone2},
		Website:     wtlWebsite,
	}
}
