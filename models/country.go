package models

// Country - страна с фиксированным списком городов для формы поиска
type Country struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Flag     string   `json:"flag"`
	Currency string   `json:"currency"`
	Cities   []string `json:"cities"`
}

// Countries - статический справочник стран (не меняется в рантайме)
var Countries = []Country{
	{
		Code:     "IN",
		Name:     "India",
		Flag:     "🇮🇳",
		Currency: "₹",
		Cities:   []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Jaipur"},
	},
	{
		Code:     "TH",
		Name:     "Thailand",
		Flag:     "🇹🇭",
		Currency: "฿",
		Cities:   []string{"Bangkok", "Chiang Mai", "Phuket", "Pattaya", "Krabi"},
	},
	{
		Code:     "VN",
		Name:     "Vietnam",
		Flag:     "🇻🇳",
		Currency: "$",
		Cities:   []string{"Hanoi", "Ho Chi Minh City", "Da Nang", "Hoi An", "Nha Trang"},
	},
}

// FindCountry возвращает страну по коду, nil если код неизвестен
func FindCountry(code string) *Country {
	for i := range Countries {
		if Countries[i].Code == code {
			return &Countries[i]
		}
	}
	return nil
}

// HasCity проверяет, что город входит в справочник страны
func (c *Country) HasCity(city string) bool {
	for _, v := range c.Cities {
		if v == city {
			return true
		}
	}
	return false
}

// PopularRoute - популярный маршрут для главной страницы
type PopularRoute struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Country     string `json:"country"`
}

// DefaultPopularRoutes - запасной список, пока cron не собрал статистику
var DefaultPopularRoutes = []PopularRoute{
	{Source: "Delhi", Destination: "Mumbai", Country: "IN"},
	{Source: "Bangalore", Destination: "Chennai", Country: "IN"},
	{Source: "Pune", Destination: "Hyderabad", Country: "IN"},
	{Source: "Hyderabad", Destination: "Bangalore", Country: "IN"},
}
