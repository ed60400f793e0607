package config

type InternalConfig struct {
	App        App
	JWT        JWT
	Scheduling Scheduling
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

type JWT struct {
	Secret string
}

type Scheduling struct {
	// StorageTimeoutInSeconds bounds every mongo call made by the booking
	// and slot-listing flows.
	StorageTimeoutInSeconds int
	// BookingLockTTLInSeconds is the redis lock expiry for one booking attempt.
	BookingLockTTLInSeconds int
	// ScheduleCacheTTLInSeconds is the redis TTL for cached weekly schedules.
	ScheduleCacheTTLInSeconds int
	// NotificationQueue is the durable rabbitmq queue notifications go to.
	NotificationQueue string
	// NotificationPublishPerSecond caps the sink's publish rate.
	NotificationPublishPerSecond int
}
