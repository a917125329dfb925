package domain

import "time"

// BookingStatus represents the review status of a booking
type BookingStatus string

const (
	StatusPendingReview BookingStatus = "PENDING_REVIEW"
	StatusAssigned      BookingStatus = "ASSIGNED"
	StatusConfirmed     BookingStatus = "CONFIRMED"
	StatusRejected      BookingStatus = "REJECTED"
)

// bookingTransitions допустимые переходы статусов бронирования
// CONFIRMED → CONFIRMED разрешен: повторное подтверждение перепроверяет вместимость
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPendingReview: {StatusAssigned, StatusConfirmed, StatusRejected},
	StatusAssigned:      {StatusPendingReview, StatusConfirmed, StatusRejected},
	StatusConfirmed:     {StatusConfirmed, StatusRejected},
	StatusRejected:      {},
}

// Valid returns true if the status is a known booking status
func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo returns true if the transition to next is allowed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionStatus represents the shooting-session progress of a booking
type SessionStatus string

const (
	SessionBooked         SessionStatus = "BOOKED"
	SessionInProgress     SessionStatus = "IN_PROGRESS"
	SessionWaitingResults SessionStatus = "WAITING_RESULTS"
	SessionCompleted      SessionStatus = "COMPLETED"
)

// sessionOrder линейный порядок статусов сессии
var sessionOrder = map[SessionStatus]int{
	SessionBooked:         0,
	SessionInProgress:     1,
	SessionWaitingResults: 2,
	SessionCompleted:      3,
}

// Valid returns true if the status is a known session status
func (s SessionStatus) Valid() bool {
	_, ok := sessionOrder[s]
	return ok
}

// CanTransitionTo returns true if the transition to next is allowed
// Сессия движется только вперед по линейному порядку, откаты запрещены
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	cur, ok := sessionOrder[s]
	if !ok {
		return false
	}
	n, ok := sessionOrder[next]
	if !ok {
		return false
	}
	return n > cur
}

// Booking represents a photo-session booking in the system
type Booking struct {
	ID              int64
	CustomerID      int64
	PackageID       int64
	AssignedTeamID  *int64
	StartAt         time.Time
	DurationMinutes int
	Status          BookingStatus
	SessionStatus   SessionStatus
	Location        *string
	Notes           *string

	// Хэш пароля доступа к результатам съемки (bcrypt), nil пока результаты не готовы
	ResultsPasswordHash *string

	// Read-only данные из JOIN для списков и календаря
	PackageName      string
	CustomerName     string
	CustomerEmail    string
	AssignedTeamName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the computed end of the booking interval
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsConfirmed returns true if the booking consumes capacity
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsLongSession returns true if the booking renders as an all-day calendar bar
func (b *Booking) IsLongSession() bool {
	return b.DurationMinutes >= AllDaySessionMinutes
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CustomerID     *int64         // Только бронирования этого клиента
	AssignedTeamID *int64         // Только бронирования, назначенные этому сотруднику
	From           *time.Time     // Начало периода по start_at (включительно)
	To             *time.Time     // Конец периода по start_at (включительно)
	Status         *BookingStatus // Фильтр по статусу
}
