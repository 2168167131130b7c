package main

import (
	"github.com/lib/pq"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func destinations() []domain.Destination {
	return []domain.Destination{
		{
			Name:        "Davao City",
			Slug:        "davao-city",
			Region:      "Davao",
			Description: ptr("The Gateway to Mindanao, known for its eco-tourism and vibrant culture. Home to beautiful fruit plantations and friendly locals."),
			Latitude:    ptr(7.0731),
			Longitude:   ptr(125.6127),
			ImageURL:    ptr("https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"),
			Attractions: pq.StringArray{"Kadayawan Festival", "Pearl Farm Beach Resort", "Mount Apo", "Eden Nature Park", "Samal Island"},
			BestMonths:  pq.StringArray{"December", "January", "February", "March"},
		},
		{
			Name:        "Cagayan de Oro",
			Slug:        "cagayan-de-oro",
			Region:      "Misamis Oriental",
			Description: ptr("Adventure capital of the Philippines with world-class white water rafting and vibrant nightlife."),
			Latitude:    ptr(8.4866),
			Longitude:   ptr(124.6451),
			ImageURL:    ptr("https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800"),
			Attractions: pq.StringArray{"White Water Rafting", "Camiguin Island", "Bukidnon Highlands", "Museo de Oro", "Pulang Lupa Falls"},
			BestMonths:  pq.StringArray{"March", "April", "May"},
		},
		{
			Name:        "Zamboanga City",
			Slug:        "zamboanga-city",
			Region:      "Zamboanga Peninsula",
			Description: ptr("Pearl of Mindanao, famous for its colorful stilt houses and rich Chavacano heritage."),
			Latitude:    ptr(6.9271),
			Longitude:   ptr(122.0724),
			ImageURL:    ptr("https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=800"),
			Attractions: pq.StringArray{"Great Mosque", "Fort Pilar", "Hermosa Festival", "Boisao Island", "Talikud Island"},
			BestMonths:  pq.StringArray{"January", "February", "March"},
		},
		{
			Name:        "Marawi City",
			Slug:        "marawi-city",
			Region:      "Lanao del Sur",
			Description: ptr("The Islamic City of the Philippines, rich in Muslim heritage, mosques, and Islamic architecture."),
			Latitude:    ptr(8.0),
			Longitude:   ptr(124.2833),
			ImageURL:    ptr("https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"),
			Attractions: pq.StringArray{"Marawi City Mosque", "Lake Lanao", "Amai Pakpak Museum", "Aseania Resort", "Pala-o Falls"},
			BestMonths:  pq.StringArray{"December", "January", "February"},
		},
		{
			Name:        "General Santos City",
			Slug:        "general-santos-city",
			Region:      "South Cotabato",
			Description: ptr("Tuna capital of the Philippines with pristine beaches and excellent seafood markets."),
			Latitude:    ptr(6.1184),
			Longitude:   ptr(125.1925),
			ImageURL:    ptr("https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=800"),
			Attractions: pq.StringArray{"Fish Port", "Sarangani Bay", "Kawa Kawa Beach", "Magsaysay Park", "Tambler Falls"},
			BestMonths:  pq.StringArray{"March", "April", "May", "June"},
		},
		{
			Name:        "Cotabato City",
			Slug:        "cotabato-city",
			Region:      "Maguindanao del Norte",
			Description: ptr("Historic city where the Rio Grande de Mindanao flows, known for cotton trading and rich history."),
			Latitude:    ptr(6.2222),
			Longitude:   ptr(124.2383),
			ImageURL:    ptr("https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"),
			Attractions: pq.StringArray{"Cotabato Cathedral", "Rio Grande de Mindanao", "Sultan Kudarat Mosque", "Nuestra Señora del Pilar Parish Church", "Nia Waterfall"},
			BestMonths:  pq.StringArray{"February", "March", "April"},
		},
		{
			Name:        "Butuan City",
			Slug:        "butuan-city",
			Region:      "Agusan del Norte",
			Description: ptr("Gateway to the Caraga Region and home to the Balangiga Bells Museum."),
			Latitude:    ptr(8.9667),
			Longitude:   ptr(125.5333),
			ImageURL:    ptr("https://images.unsplash.com/photo-1520814627789-26adf92efd8f?w=800"),
			Attractions: pq.StringArray{"Balangiga Bells Museum", "Butuan Barter Festival", "Agusan Marsh Wildlife Sanctuary", "Masao Falls", "Ambuyog Falls"},
			BestMonths:  pq.StringArray{"November", "December", "January"},
		},
		{
			Name:        "Iligan City",
			Slug:        "iligan-city",
			Region:      "Lanao del Norte",
			Description: ptr("City of Majestic Waterfalls with numerous cascading falls and industrial heritage."),
			Latitude:    ptr(8.2256),
			Longitude:   ptr(124.2156),
			ImageURL:    ptr("https://images.unsplash.com/photo-1432405972618-c60b0b51c1e7?w=800"),
			Attractions: pq.StringArray{"Maria Cristina Falls", "Tinago Falls", "Alagad Falls", "Camp Aguinaldo Beach", "Cogon Mines"},
			BestMonths:  pq.StringArray{"June", "July", "August"},
		},
	}
}
