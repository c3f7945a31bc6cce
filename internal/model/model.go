package model

import (
	"time"
)

type BookingStatus string

const (
	StatusPendingApproval BookingStatus = "pending_approval"
	StatusScheduled       BookingStatus = "scheduled"
	StatusBorrowed        BookingStatus = "borrowed"
	StatusReturned        BookingStatus = "returned"
	StatusOverdue         BookingStatus = "overdue"
	StatusLost            BookingStatus = "lost"
	StatusCancelled       BookingStatus = "cancelled"
	StatusRejected        BookingStatus = "rejected"
)

// Terminal reports whether no further transition may leave the status.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusReturned, StatusCancelled, StatusRejected, StatusLost:
		return true
	}
	return false
}

type ReturnCondition string

const (
	ConditionGood        ReturnCondition = "good"
	ConditionMinorDamage ReturnCondition = "minor_damage"
	ConditionMajorDamage ReturnCondition = "major_damage"
)

type Category struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	CategoryCode string    `json:"categoryCode" db:"category_code"`
	Description  *string   `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Item struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SKU          *string   `json:"sku,omitempty" db:"sku"`
	Description  *string   `json:"description,omitempty" db:"description"`
	CategoryID   int64     `json:"categoryId" db:"category_id"`
	CurrentStock int       `json:"currentStock" db:"current_stock"`
	Price        *float64  `json:"price,omitempty" db:"price"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Booking holds a quantity of one item over a half-open window [BorrowedDate, DueDate).
// Until activation BorrowedDate is the requested start; activation overwrites it
// with the actual instant the loan began.
type Booking struct {
	ID                int64            `json:"-" db:"id"`
	BookingUid        string           `json:"bookingUid" db:"booking_uid"`
	ItemID            int64            `json:"itemId" db:"item_id"`
	Username          string           `json:"username" db:"username"`
	Quantity          int              `json:"quantity" db:"quantity"`
	BorrowedDate      time.Time        `json:"borrowedDate" db:"borrowed_date"`
	DueDate           time.Time        `json:"dueDate" db:"due_date"`
	Status            BookingStatus    `json:"status" db:"status"`
	ReturnedDate      *time.Time       `json:"returnedDate,omitempty" db:"returned_date"`
	ConditionOnReturn *ReturnCondition `json:"conditionOnReturn,omitempty" db:"condition_on_return"`
	ReturnProcessor   *string          `json:"returnProcessor,omitempty" db:"return_processor"`
	ReturnNotes       *string          `json:"returnNotes,omitempty" db:"return_notes"`
	BorrowingNotes    *string          `json:"borrowingNotes,omitempty" db:"borrowing_notes"`
	CreatedAt         time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time        `json:"updatedAt" db:"updated_at"`
}

type CreateBookingRequest struct {
	ItemID         int64     `json:"itemId" validate:"required,gt=0"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	Quantity       int       `json:"quantity" validate:"required,gt=0"`
	BorrowingNotes string    `json:"borrowingNotes"`
	Username       string    `json:"-" validate:"required"`
}

type ReturnBookingRequest struct {
	Condition   ReturnCondition `json:"conditionOnReturn" validate:"required,oneof=good minor_damage major_damage"`
	ReturnNotes string          `json:"returnNotes"`
}

type BookingFilter struct {
	Statuses []BookingStatus
	ItemID   int64
	Username string
	Page     int
	Size     int
}

type CreateItemRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description"`
	CategoryID   int64    `json:"categoryId" validate:"required,gt=0"`
	InitialStock int      `json:"initialStock" validate:"gte=0"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
}

type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description"`
	CategoryID  *int64   `json:"categoryId" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

type AvailabilityResponse struct {
	ItemID    int64     `json:"itemId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Quantity  int       `json:"quantity"`
	Available bool      `json:"available"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListItems struct {
	Paging `json:",inline"`
	Items  []Item `json:"items"`
}

type ListBookings struct {
	Paging `json:",inline"`
	Items  []Booking `json:"items"`
}

// BookingEvent is published to kafka after a committed lifecycle transition.
type BookingEvent struct {
	BookingUid string        `json:"bookingUid"`
	ItemID     int64         `json:"itemId"`
	Username   string        `json:"username"`
	Quantity   int           `json:"quantity"`
	Status     BookingStatus `json:"status"`
	OccurredAt time.Time     `json:"occurredAt"`
}
