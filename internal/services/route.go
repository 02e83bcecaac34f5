package services

import (
	"math"
	"sort"

	"coffee-app/internal/models"
)

const earthRadiusKm = 6371

// Distance — расстояние по дуге большого круга (Haversine), в километрах.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// OptimizeByProximity сортирует визиты по возрастанию расстояния
// от опорной точки до клиента. Сортировка устойчивая, вход не меняется.
func OptimizeByProximity(visits []models.Visit, ref models.GeoPoint) []models.Visit {
	ordered := make([]models.Visit, len(visits))
	copy(ordered, visits)

	sort.SliceStable(ordered, func(i, j int) bool {
		di := Distance(ref.Latitude, ref.Longitude, ordered[i].Client.Location.Latitude, ordered[i].Client.Location.Longitude)
		dj := Distance(ref.Latitude, ref.Longitude, ordered[j].Client.Location.Latitude, ordered[j].Client.Location.Longitude)
		return di < dj
	})
	return ordered
}
