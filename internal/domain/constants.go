package domain

// Slot generation
const (
	// SlotStepMinutes is the fixed spacing between offered slot start times.
	// It is independent of service duration: the duration only bounds the
	// last bookable start, it does not change the spacing.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNoteLength             = 500
	MaxOrderItems             = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Store collection names. These are the keys the reactive hub publishes
// under and the websocket endpoint accepts.
const (
	CollectionBookings   = "bookings"
	CollectionOrders     = "orders"
	CollectionServices   = "services"
	CollectionStaff      = "staff"
	CollectionProducts   = "products"
	CollectionPromotions = "promotions"
	CollectionSettings   = "settings"
	CollectionGallery    = "gallery"
)
