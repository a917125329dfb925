package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 1440 // сутки
	MaxNotesLength     = 500
	MaxReasonLength    = 500

	// AllDaySessionMinutes длительность, начиная с которой бронирование
	// отображается в календаре как событие на весь день (8 часов)
	AllDaySessionMinutes = 480

	// BootstrapCapacity вместимость по умолчанию, когда в студии еще нет
	// ни одного активного сотрудника: первый админ должен иметь возможность
	// принимать заявки до найма команды
	BootstrapCapacity = 1
)
