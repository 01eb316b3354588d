package response

import "club-booking/internal/usecase/queries"

type BookingCreatedResponse struct {
	Detail    string `json:"detail"`
	BookingID int64  `json:"booking_id"`
}

type FreeSlotsResponse struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Hours    []int  `json:"hours"`
}

func FromFreeSlotsView(v *queries.FreeSlotsView) (*FreeSlotsResponse, error) {
	var res FreeSlotsResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	if res.Hours == nil {
		res.Hours = []int{}
	}
	return &res, nil
}

type PoolAvailabilityResponse struct {
	Date              string `json:"date"`
	BedUnitsFree      int    `json:"bed_units_free"`
	UmbrellaUnitsFree int    `json:"umbrella_units_free"`
	InSeason          bool   `json:"in_season"`
}

func FromPoolAvailabilityView(v *queries.PoolAvailabilityView) (*PoolAvailabilityResponse, error) {
	var res PoolAvailabilityResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type FieldBookingResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Hour     int    `json:"hour"`
	Category string `json:"category"`
}

type PoolBookingResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Beds      int    `json:"beds"`
	Umbrellas int    `json:"umbrellas"`
}

type MemberBookingsResponse struct {
	MemberID string                  `json:"member_id"`
	Fields   []*FieldBookingResponse `json:"fields"`
	Pool     []*PoolBookingResponse  `json:"pool"`
}

func FromMemberBookingsView(v *queries.MemberBookingsView) (*MemberBookingsResponse, error) {
	res := MemberBookingsResponse{
		MemberID: v.MemberID,
		Fields:   make([]*FieldBookingResponse, 0, len(v.Fields)),
		Pool:     make([]*PoolBookingResponse, 0, len(v.Pool)),
	}
	if err := copyInto(&res.Fields, v.Fields); err != nil {
		return nil, err
	}
	if err := copyInto(&res.Pool, v.Pool); err != nil {
		return nil, err
	}
	return &res, nil
}
