package entity

// Province, City and District are read-only reference data sourced from the
// national location registry. All three levels are registry-backed; the API
// never mutates them.

type Province struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type City struct {
	ID         int64  `db:"id"`
	ProvinceID int64  `db:"province_id"`
	Name       string `db:"name"`
}

type District struct {
	ID     int64  `db:"id"`
	CityID int64  `db:"city_id"`
	Name   string `db:"name"`
}
