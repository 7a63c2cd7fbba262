package cmd

import (
	"fmt"
	"net/url"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is a comma separated list. Empty means events and
	// notifications only go to the log.
	KafkaBrokers            string
	KafkaOrderEventsTopic   string
	KafkaNotificationsTopic string

	JWTSecret    string
	ReminderCron string
}

// DSN is the PostgreSQL connection URL built from the DB settings.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}
