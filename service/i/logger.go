package i

// Logger is the leveled, component scoped logger shared by every package.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
