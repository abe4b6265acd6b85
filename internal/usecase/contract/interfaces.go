package contract

// IAppLogger is the application-wide structured logger surface. Usecases
// log internal failures with detail here; clients only ever see the
// generic error classes.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes runtime configuration to usecases without
// binding them to the env-loading mechanics.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiryMinutes() int
}

// IValidator covers the field validations that are not expressible as
// gin binding tags.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
