// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package places

// Kakao category group codes used by the app.
const (
	CategoryRestaurant = "FD6"
	CategoryCafe       = "CE7"
)

// Sort orders accepted by the search endpoints.
const (
	SortAccuracy = "accuracy"
	SortDistance = "distance"
)

// CategoryQuery searches venues of one category group around a point.
type CategoryQuery struct {
	Code   string  `validate:"required,oneof=FD6 CE7"`
	Lat    float64 `validate:"latitude"`
	Lng    float64 `validate:"longitude"`
	Radius int     `validate:"omitempty,min=1,max=20000"`
	Page   int     `validate:"omitempty,min=1,max=45"`
	Size   int     `validate:"omitempty,min=1,max=15"`
	Sort   string  `validate:"omitempty,oneof=accuracy distance"`
}

// KeywordQuery searches venues by free text, optionally around a point.
// The center is used only when HasCenter is set.
type KeywordQuery struct {
	Query        string  `validate:"required,max=100"`
	CategoryCode string  `validate:"omitempty,oneof=FD6 CE7"`
	HasCenter    bool    `validate:"-"`
	Lat          float64 `validate:"latitude"`
	Lng          float64 `validate:"longitude"`
	Radius       int     `validate:"omitempty,min=1,max=20000"`
	Page         int     `validate:"omitempty,min=1,max=45"`
	Size         int     `validate:"omitempty,min=1,max=15"`
	Sort         string  `validate:"omitempty,oneof=accuracy distance"`
}

// Place is one venue with numeric coordinates.
type Place struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	CategoryName      string `json:"categoryName,omitempty"`
	CategoryGroupCode string `json:"categoryGroupCode,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	RoadAddress       string `json:"roadAddress,omitempty"`
	URL               string `json:"url,omitempty"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// Distance from the search center in meters; nil when no center was given.
	Distance *int `json:"distance,omitempty"`
}

// SearchResult is one page of venues.
type SearchResult struct {
	Places        []Place `json:"places"`
	TotalCount    int     `json:"totalCount"`
	PageableCount int     `json:"pageableCount"`
	IsEnd         bool    `json:"isEnd"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is the reverse-geocoded form of a point.
type Address struct {
	AddressName     string `json:"addressName"`
	RoadAddressName string `json:"roadAddressName,omitempty"`
	Region1         string `json:"region1,omitempty"`
	Region2         string `json:"region2,omitempty"`
	Region3         string `json:"region3,omitempty"`
}

// Wire forms. Kakao sends numbers as strings.

type meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

type placeDocument struct {
	ID                string `json:"id"`
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	CategoryGroupCode string `json:"category_group_code"`
	Phone             string `json:"phone"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	PlaceURL          string `json:"place_url"`
	X                 string `json:"x"`
	Y                 string `json:"y"`
	Distance          string `json:"distance"`
}

type placeResponse struct {
	Meta      meta            `json:"meta"`
	Documents []placeDocument `json:"documents"`
}

type addressDocument struct {
	AddressName string `json:"address_name"`
	X           string `json:"x"`
	Y           string `json:"y"`
}

type addressResponse struct {
	Meta      meta              `json:"meta"`
	Documents []addressDocument `json:"documents"`
}

type regionAddress struct {
	AddressName string `json:"address_name"`
	Region1     string `json:"region_1depth_name"`
	Region2     string `json:"region_2depth_name"`
	Region3     string `json:"region_3depth_name"`
}

type coordDocument struct {
	Address     *regionAddress `json:"address"`
	RoadAddress *regionAddress `json:"road_address"`
}

type coordResponse struct {
	Meta      meta            `json:"meta"`
	Documents []coordDocument `json:"documents"`
}
