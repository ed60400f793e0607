package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

// Mongo collections
const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

// Redis key prefixes
const (
	RedisKeySession         = "session:"
	RedisKeyWeeklySchedule  = "schedule:weekly:"
	RedisKeyAppointmentLock = "lock:appointment:"
)

// Appointment slot settings
const (
	SlotDurationMinutesDefault = 30
	SlotDurationMinutesMin     = 15
	SlotDurationMinutesMax     = 120

	// SlotKeyLayout identifies one slot bucket per doctor. It backs the
	// partial unique index that rejects concurrent double-bookings.
	SlotKeyLayout = "2006-01-02T15:04"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// User roles
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
	RoleLabTech      = "lab_technician"
	RolePatient      = "patient"
)
