package geo

import "math"

// EarthRadiusKm — радиус Земли в километрах для формулы гаверсинусов
const EarthRadiusKm = 6371

// DistanceKm вычисляет расстояние большого круга между двумя координатами
// (в градусах) по формуле гаверсинусов. Результат в километрах.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
