package geo

import "math"

// 地球平均半径（公里）
const earthRadiusKM = 6371.0

// DistanceKM 计算两个坐标间的球面距离（公里），保留 2 位小数
func DistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lng2 - lng1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(earthRadiusKM * c)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Round1 保留 1 位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 保留 2 位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidCoordinates 校验坐标是否在合法范围内
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
