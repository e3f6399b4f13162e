package storage

// ReportSink is the interface any report destination must satisfy.
type ReportSink interface {
	Write(report string) error
	Close() error
}
