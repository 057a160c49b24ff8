package directory

var worldCities = []string{
	// United States
	"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX", "Phoenix, AZ",
	"Philadelphia, PA", "San Antonio, TX", "San Diego, CA", "Dallas, TX", "San Jose, CA",
	"Austin, TX", "Jacksonville, FL", "Fort Worth, TX", "Columbus, OH", "San Francisco, CA",
	"Charlotte, NC", "Indianapolis, IN", "Seattle, WA", "Denver, CO", "Washington, DC",
	"Boston, MA", "Nashville, TN", "Detroit, MI", "Portland, OR", "Las Vegas, NV",
	"Miami, FL", "Atlanta, GA", "Minneapolis, MN", "New Orleans, LA", "Salt Lake City, UT",
	"Sacramento, CA", "Kansas City, MO", "Pittsburgh, PA", "Honolulu, HI", "Anchorage, AK",
	"Santa Fe, NM", "Santa Barbara, CA", "Baltimore, MD", "Milwaukee, WI", "Albuquerque, NM",
	// United Kingdom and Ireland
	"London, UK", "Manchester, UK", "Birmingham, UK", "Leeds, UK", "Glasgow, UK",
	"Edinburgh, UK", "Liverpool, UK", "Bristol, UK", "Cardiff, UK", "Belfast, UK",
	"Dublin, IE", "Cork, IE",
	// France
	"Paris, France", "Marseille, France", "Lyon, France", "Toulouse, France", "Nice, France",
	"Nantes, France", "Strasbourg, France", "Bordeaux, France", "Lille, France",
	// Japan
	"Tokyo, JP", "Osaka, JP", "Yokohama, JP", "Nagoya, JP", "Sapporo, JP",
	"Kyoto, JP", "Fukuoka, JP", "Kobe, JP", "Hiroshima, JP", "Sendai, JP",
	// Germany
	"Berlin, DE", "Hamburg, DE", "Munich, DE", "Cologne, DE", "Frankfurt, DE",
	"Stuttgart, DE", "Düsseldorf, DE", "Leipzig, DE", "Dresden, DE", "Hanover, DE",
	// Australia and New Zealand
	"Sydney, AU", "Melbourne, AU", "Brisbane, AU", "Perth, AU", "Adelaide, AU",
	"Canberra, AU", "Hobart, AU", "Darwin, AU", "Auckland, NZ", "Wellington, NZ",
	"Christchurch, NZ", "Queenstown, NZ",
	// Canada
	"Toronto, CA", "Montreal, CA", "Vancouver, CA", "Calgary, CA", "Ottawa, CA",
	"Edmonton, CA", "Winnipeg, CA", "Quebec City, CA", "Halifax, CA", "Victoria, CA",
	// China
	"Beijing, CN", "Shanghai, CN", "Guangzhou, CN", "Shenzhen, CN", "Chengdu, CN",
	"Hangzhou, CN", "Wuhan, CN", "Xi'an, CN", "Hong Kong, HK", "Taipei, TW",
	// India
	"Mumbai, IN", "Delhi, IN", "Bangalore, IN", "Hyderabad, IN", "Chennai, IN",
	"Kolkata, IN", "Pune, IN", "Jaipur, IN", "Ahmedabad, IN",
	// Russia
	"Moscow, RU", "Saint Petersburg, RU", "Novosibirsk, RU", "Yekaterinburg, RU", "Kazan, RU",
	// Latin America
	"São Paulo, BR", "Rio de Janeiro, BR", "Brasília, BR", "Salvador, BR", "Fortaleza, BR",
	"Belo Horizonte, BR", "Curitiba, BR", "Recife, BR", "Porto Alegre, BR", "Florianópolis, BR",
	"Mexico City, MX", "Guadalajara, MX", "Monterrey, MX", "Cancún, MX", "Puebla, MX",
	"Buenos Aires, AR", "Córdoba, AR", "Santiago, CL", "Lima, PE", "Bogotá, CO",
	"Medellín, CO", "Quito, EC", "Montevideo, UY", "Caracas, VE", "Havana, CU",
	"San Juan, PR", "Panama City, PA", "San José, CR",
	// Africa
	"Cairo, EG", "Alexandria, EG", "Lagos, NG", "Abuja, NG", "Johannesburg, ZA",
	"Cape Town, ZA", "Durban, ZA", "Nairobi, KE", "Casablanca, MA", "Marrakesh, MA",
	"Accra, GH", "Addis Ababa, ET", "Dakar, SN", "Tunis, TN",
	// Middle East
	"Dubai, AE", "Abu Dhabi, AE", "Doha, QA", "Riyadh, SA", "Jeddah, SA",
	"Tel Aviv, IL", "Jerusalem, IL", "Amman, JO", "Beirut, LB", "Muscat, OM",
	// Asia
	"Singapore, SG", "Seoul, KR", "Busan, KR", "Bangkok, TH", "Chiang Mai, TH",
	"Istanbul, TR", "Ankara, TR", "Jakarta, ID", "Bali, ID", "Kuala Lumpur, MY",
	"Hanoi, VN", "Ho Chi Minh City, VN", "Manila, PH", "Cebu, PH", "Karachi, PK",
	"Lahore, PK", "Dhaka, BD", "Kathmandu, NP", "Colombo, LK", "Tashkent, UZ",
	// Southern and Western Europe
	"Madrid, ES", "Barcelona, ES", "Valencia, ES", "Seville, ES", "Bilbao, ES",
	"Málaga, ES", "Rome, IT", "Milan, IT", "Naples, IT", "Turin, IT",
	"Florence, IT", "Venice, IT", "Bologna, IT", "Palermo, IT", "Lisbon, PT",
	"Porto, PT", "Athens, GR", "Thessaloniki, GR", "Valletta, MT",
	// Benelux and Alpine
	"Amsterdam, NL", "Rotterdam, NL", "The Hague, NL", "Utrecht, NL", "Brussels, BE",
	"Antwerp, BE", "Luxembourg, LU", "Vienna, AT", "Salzburg, AT", "Innsbruck, AT",
	"Zurich, CH", "Geneva, CH", "Basel, CH", "Bern, CH",
	// Nordics
	"Stockholm, SE", "Gothenburg, SE", "Oslo, NO", "Bergen, NO", "Copenhagen, DK",
	"Aarhus, DK", "Helsinki, FI", "Reykjavik, IS",
	// Central and Eastern Europe
	"Warsaw, PL", "Kraków, PL", "Gdańsk, PL", "Prague, CZ", "Brno, CZ",
	"Budapest, HU", "Bucharest, RO", "Sofia, BG", "Belgrade, RS", "Zagreb, HR",
	"Ljubljana, SI", "Bratislava, SK", "Vilnius, LT", "Riga, LV", "Tallinn, EE",
	"Kyiv, UA",
}
