package response

import (
	"warehouse-api/internal/data/entity"
)

type ProvinceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CityResponse struct {
	ID         int64  `json:"id"`
	ProvinceID int64  `json:"province_id"`
	Name       string `json:"name"`
}

type DistrictResponse struct {
	ID     int64  `json:"id"`
	CityID int64  `json:"city_id"`
	Name   string `json:"name"`
}

func ProvincesToResponse(provinces []*entity.Province) []ProvinceResponse {
	rows := make([]ProvinceResponse, len(provinces))
	for i, province := range provinces {
		rows[i] = ProvinceResponse{ID: province.ID, Name: province.Name}
	}
	return rows
}

func CitiesToResponse(cities []*entity.City) []CityResponse {
	rows := make([]CityResponse, len(cities))
	for i, city := range cities {
		rows[i] = CityResponse{ID: city.ID, ProvinceID: city.ProvinceID, Name: city.Name}
	}
	return rows
}

func DistrictsToResponse(districts []*entity.District) []DistrictResponse {
	rows := make([]DistrictResponse, len(districts))
	for i, district := range districts {
		rows[i] = DistrictResponse{ID: district.ID, CityID: district.CityID, Name: district.Name}
	}
	return rows
}
