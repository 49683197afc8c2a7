package config

import "github.com/kelseyhightower/envconfig"

// App holds the typed environment configuration. Database connection
// settings are resolved separately in db.go because they support several
// legacy variable layouts.
type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	JWTSecret    string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:""`

	// independent: adults and children checked against separate room limits.
	// combined: adults+children checked against the room's total capacity.
	CapacityPolicy string `envconfig:"CAPACITY_POLICY" default:"independent"`
	// tristate: bookings carry new/accepted/rejected and only non-rejected
	// ones conflict. statusless: every booking row counts as occupancy.
	StatusModel string `envconfig:"STATUS_MODEL" default:"tristate"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:""`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFromName string `envconfig:"SMTP_FROM_NAME" default:"Mingo Hotel Kayunga"`

	HotelName string `envconfig:"HOTEL_NAME" default:"Mingo Hotel Kayunga"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
