package handlers

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// BookingResponse общая HTTP модель бронирования
type BookingResponse struct {
	ID               int64   `json:"id"`
	CustomerID       int64   `json:"customerId"`
	CustomerName     string  `json:"customerName,omitempty"`
	PackageID        int64   `json:"packageId"`
	PackageName      string  `json:"packageName,omitempty"`
	AssignedTeamID   *int64  `json:"assignedTeamId,omitempty"`
	AssignedTeamName *string `json:"assignedTeamName,omitempty"`
	StartAt          string  `json:"startAt"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	SessionStatus    string  `json:"sessionStatus"`
	Location         *string `json:"location,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// FromDomainBooking конвертирует доменную модель бронирования в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		CustomerName:     b.CustomerName,
		PackageID:        b.PackageID,
		PackageName:      b.PackageName,
		AssignedTeamID:   b.AssignedTeamID,
		AssignedTeamName: b.AssignedTeamName,
		StartAt:          b.StartAt.Format(time.RFC3339),
		DurationMinutes:  b.DurationMinutes,
		Status:           string(b.Status),
		SessionStatus:    string(b.SessionStatus),
		Location:         b.Location,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// PackageResponse HTTP модель пакета съемки
type PackageResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Visible         bool    `json:"visible"`
}

// FromDomainPackage конвертирует доменную модель пакета в HTTP модель
func FromDomainPackage(p *domain.Package) *PackageResponse {
	return &PackageResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		DurationMinutes: p.DurationMinutes,
		Price:           p.Price,
		Visible:         p.Visible,
	}
}

// FromDomainPackages конвертирует список пакетов
func FromDomainPackages(packages []*domain.Package) []*PackageResponse {
	result := make([]*PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, FromDomainPackage(p))
	}
	return result
}

// UserResponse HTTP модель пользователя
type UserResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Role   string  `json:"role"`
	Active bool    `json:"active"`
}

// FromDomainUser конвертирует доменную модель пользователя в HTTP модель
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   string(u.Role),
		Active: u.Active,
	}
}

// DayBlockResponse HTTP модель блокировки дня
type DayBlockResponse struct {
	ID      int64   `json:"id"`
	Day     string  `json:"day"`
	FullDay bool    `json:"fullDay"`
	StartAt *string `json:"startAt,omitempty"`
	EndAt   *string `json:"endAt,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

// FromDomainDayBlock конвертирует доменную модель блокировки в HTTP модель
func FromDomainDayBlock(b *domain.DayBlock) *DayBlockResponse {
	resp := &DayBlockResponse{
		ID:      b.ID,
		Day:     b.Day.Format(domain.DateFormat),
		FullDay: b.FullDay,
		Reason:  b.Reason,
	}
	if b.StartAt != nil {
		s := b.StartAt.Format(time.RFC3339)
		resp.StartAt = &s
	}
	if b.EndAt != nil {
		e := b.EndAt.Format(time.RFC3339)
		resp.EndAt = &e
	}
	return resp
}

// CapacityOverrideResponse HTTP модель переопределения вместимости
type CapacityOverrideResponse struct {
	Day      string  `json:"day"`
	Capacity int     `json:"capacity"`
	Reason   *string `json:"reason,omitempty"`
}

// FromDomainCapacityOverride конвертирует переопределение в HTTP модель
func FromDomainCapacityOverride(o *domain.CapacityOverride) *CapacityOverrideResponse {
	return &CapacityOverrideResponse{
		Day:      o.Day.Format(domain.DateFormat),
		Capacity: o.Capacity,
		Reason:   o.Reason,
	}
}

// TeamUnavailableResponse HTTP модель недоступности сотрудника
type TeamUnavailableResponse struct {
	ID           int64   `json:"id"`
	TeamUserID   int64   `json:"teamUserId"`
	TeamUserName string  `json:"teamUserName,omitempty"`
	StartAt      string  `json:"startAt"`
	EndAt        string  `json:"endAt"`
	Reason       *string `json:"reason,omitempty"`
}

// FromDomainTeamUnavailable конвертирует запись о недоступности в HTTP модель
func FromDomainTeamUnavailable(e *domain.TeamUnavailable) *TeamUnavailableResponse {
	return &TeamUnavailableResponse{
		ID:           e.ID,
		TeamUserID:   e.TeamUserID,
		TeamUserName: e.TeamUserName,
		StartAt:      e.StartAt.Format(time.RFC3339),
		EndAt:        e.EndAt.Format(time.RFC3339),
		Reason:       e.Reason,
	}
}

// AttachmentResponse HTTP модель вложения
type AttachmentResponse struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"bookingId"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	UploadedAt string `json:"uploadedAt"`
}

// FromDomainAttachment конвертирует вложение в HTTP модель
func FromDomainAttachment(a *domain.Attachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:         a.ID,
		BookingID:  a.BookingID,
		Type:       string(a.Type),
		Name:       a.Name,
		UploadedAt: a.UploadedAt.Format(time.RFC3339),
	}
}
