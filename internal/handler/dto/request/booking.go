package request

import "club-booking/internal/usecase/commands"

// Hour and category ranges are left to the ledger so that an out-of-range
// hour is reported as an invalid slot rather than a malformed request.
type FieldBookingRequest struct {
	ID       string `json:"id" binding:"required,membercode"`
	Date     string `json:"date" binding:"required,isodate"`
	Hour     int    `json:"hour" binding:"required"`
	Category string `json:"category" binding:"required"`
}

func (r *FieldBookingRequest) ToCommand() commands.FieldBookingRequest {
	return commands.FieldBookingRequest{
		MemberID: r.ID,
		Date:     r.Date,
		Hour:     r.Hour,
		Category: r.Category,
	}
}

type PoolBookingRequest struct {
	ID        string `json:"id" binding:"required,membercode"`
	Date      string `json:"date" binding:"required,isodate"`
	Beds      int    `json:"beds" binding:"min=0"`
	Umbrellas int    `json:"umbrellas" binding:"min=0"`
}

func (r *PoolBookingRequest) ToCommand() commands.PoolBookingRequest {
	return commands.PoolBookingRequest{
		MemberID:  r.ID,
		Date:      r.Date,
		Beds:      r.Beds,
		Umbrellas: r.Umbrellas,
	}
}

type PoolCancelRequest struct {
	ID        string `json:"id" binding:"required,membercode"`
	Date      string `json:"date" binding:"required,isodate"`
	Beds      *int   `json:"beds" binding:"omitempty,min=0,max=80"`
	Umbrellas *int   `json:"umbrellas" binding:"omitempty,min=0,max=20"`
}

func (r *PoolCancelRequest) ToCommand() commands.PoolCancelRequest {
	return commands.PoolCancelRequest{
		MemberID:  r.ID,
		Date:      r.Date,
		Beds:      r.Beds,
		Umbrellas: r.Umbrellas,
	}
}
